package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	auth "cargotrail/contexts/identity-access/auth-service"
	catalog "cargotrail/contexts/logistics/catalog-service"
	catalogentities "cargotrail/contexts/logistics/catalog-service/domain/entities"
	catalogerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
	catalogports "cargotrail/contexts/logistics/catalog-service/ports"
	cataloghttp "cargotrail/contexts/logistics/catalog-service/transport/http"
	shipping "cargotrail/contexts/logistics/shipping-service"
)

func createSupplier(t *testing.T, server *Server, name string) cataloghttp.SupplierResponse {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/suppliers", "", cataloghttp.SupplierRequest{
		Name:  name,
		Email: "contact@example.com",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create supplier failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp cataloghttp.SupplierResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode supplier response: %v", err)
	}
	return resp
}

func TestSupplierDeleteRequiresToken(t *testing.T) {
	server := newTestServer()
	supplier := createSupplier(t, server, "Global Electronics Inc")

	rr := doJSON(t, server, http.MethodDelete, "/api/suppliers/"+itoa(supplier.ID), "", nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSupplierDeleteRejectsGarbageToken(t *testing.T) {
	server := newTestServer()
	supplier := createSupplier(t, server, "Global Electronics Inc")

	rr := doJSON(t, server, http.MethodDelete, "/api/suppliers/"+itoa(supplier.ID), "not-a-jwt", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSupplierDeleteForbiddenForDriverRole(t *testing.T) {
	server := newTestServer()
	supplier := createSupplier(t, server, "Global Electronics Inc")
	token := loginToken(t, server, "driver", "driver123")

	rr := doJSON(t, server, http.MethodDelete, "/api/suppliers/"+itoa(supplier.ID), token, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for driver role, got %d body=%s", rr.Code, rr.Body.String())
	}

	// The row must survive the rejected delete.
	rr = doJSON(t, server, http.MethodGet, "/api/suppliers/"+itoa(supplier.ID), "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("supplier vanished after rejected delete: %d", rr.Code)
	}
}

func TestSupplierDeleteAllowedForManagerAndAdmin(t *testing.T) {
	server := newTestServer()

	for _, user := range []struct{ name, password string }{
		{"manager", "manager123"},
		{"admin", "admin123"},
	} {
		supplier := createSupplier(t, server, "Supplier for "+user.name)
		token := loginToken(t, server, user.name, user.password)

		rr := doJSON(t, server, http.MethodDelete, "/api/suppliers/"+itoa(supplier.ID), token, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s delete failed: %d body=%s", user.name, rr.Code, rr.Body.String())
		}
	}
}

func TestWarehouseDeleteBlockedByCustomerOverHTTP(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin", "admin123")

	rr := doJSON(t, server, http.MethodPost, "/api/warehouses", "", cataloghttp.WarehouseRequest{Name: "Central Hub", City: "Chicago"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create warehouse failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var warehouse cataloghttp.WarehouseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &warehouse); err != nil {
		t.Fatalf("decode warehouse: %v", err)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/customers", "", cataloghttp.CustomerRequest{
		Name:        "Acme Corporation",
		WarehouseID: &warehouse.ID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create customer failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var customer cataloghttp.CustomerResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/warehouses/"+itoa(warehouse.ID), token, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for in-use warehouse, got %d body=%s", rr.Code, rr.Body.String())
	}

	// Remove the referrer, then the delete goes through.
	rr = doJSON(t, server, http.MethodDelete, "/api/customers/"+itoa(customer.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete customer failed: %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodDelete, "/api/warehouses/"+itoa(warehouse.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete warehouse failed: %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCustomerUpdateIsFullReplaceOverHTTP(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/customers", "", cataloghttp.CustomerRequest{
		Name:  "Acme Corporation",
		Email: "purchasing@acmecorp.com",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create customer failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var customer cataloghttp.CustomerResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	rr = doJSON(t, server, http.MethodPut, "/api/customers/"+itoa(customer.ID), "", cataloghttp.CustomerRequest{
		Name: "Acme Corporation",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update customer failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var updated cataloghttp.CustomerResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated customer: %v", err)
	}
	if updated.Email != "" {
		t.Fatalf("omitted email retained: %q", updated.Email)
	}
}

func TestSupplierValidationFailureIs400(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/suppliers", "", cataloghttp.SupplierRequest{Name: "   "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSupplierGetMissingIs404(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/suppliers/9999", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSupplierNonNumericIDIs400(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/suppliers/abc", "", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

// unavailableCatalogRepo fails supplier listing the way the postgres adapter
// does when the store deadline expires. The embedded interface panics if any
// other method is reached.
type unavailableCatalogRepo struct {
	catalogports.Repository
}

func (unavailableCatalogRepo) ListSuppliers(context.Context) ([]catalogentities.Supplier, error) {
	return nil, catalogerrors.ErrStoreUnavailable
}

func TestSupplierListStoreOutageReturns503(t *testing.T) {
	authModule := auth.NewInMemoryModule(nil)
	catalogModule := catalog.NewModule(catalog.Dependencies{
		Repository: unavailableCatalogRepo{},
	})
	shippingModule := shipping.NewInMemoryModule(catalogModule.Refs, nil)
	server := New(authModule, catalogModule, shippingModule, nil, ":0")

	rr := doJSON(t, server, http.MethodGet, "/api/suppliers", "", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for store outage, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != "store_unavailable" {
		t.Fatalf("expected store_unavailable code, got %q", body.Code)
	}
}
