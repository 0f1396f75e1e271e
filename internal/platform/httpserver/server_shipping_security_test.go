package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	auth "cargotrail/contexts/identity-access/auth-service"
	catalog "cargotrail/contexts/logistics/catalog-service"
	cataloghttp "cargotrail/contexts/logistics/catalog-service/transport/http"
	shipping "cargotrail/contexts/logistics/shipping-service"
	shippingentities "cargotrail/contexts/logistics/shipping-service/domain/entities"
	shippingerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
	shippingports "cargotrail/contexts/logistics/shipping-service/ports"
	shippinghttp "cargotrail/contexts/logistics/shipping-service/transport/http"
)

func createVehicle(t *testing.T, server *Server, plate string) shippinghttp.VehicleResponse {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/vehicles", "", shippinghttp.VehicleRequest{
		LicensePlate: plate,
		Model:        "Volvo FH16",
		Capacity:     decimal.NewFromInt(2500),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create vehicle failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp shippinghttp.VehicleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode vehicle: %v", err)
	}
	return resp
}

func createShipment(t *testing.T, server *Server, req shippinghttp.ShipmentRequest) shippinghttp.ShipmentResponse {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/shipments", "", req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create shipment failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp shippinghttp.ShipmentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode shipment: %v", err)
	}
	return resp
}

func TestShipmentCreateDefaultsToPendingOverHTTP(t *testing.T) {
	server := newTestServer()

	shipment := createShipment(t, server, shippinghttp.ShipmentRequest{
		Quantity:     10,
		ShipmentDate: "2025-03-01",
	})
	if shipment.Status != "pending" {
		t.Fatalf("expected pending status, got %q", shipment.Status)
	}
	if shipment.ShipmentDate != "2025-03-01" {
		t.Fatalf("expected plain date echo, got %q", shipment.ShipmentDate)
	}
}

func TestShipmentAcceptsRFC3339Date(t *testing.T) {
	server := newTestServer()

	shipment := createShipment(t, server, shippinghttp.ShipmentRequest{
		Quantity:     10,
		ShipmentDate: "2025-03-01T08:30:00Z",
	})
	if shipment.ShipmentDate != "2025-03-01" {
		t.Fatalf("expected normalized date, got %q", shipment.ShipmentDate)
	}
}

func TestShipmentRejectsBadDateAndStatus(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/shipments", "", shippinghttp.ShipmentRequest{
		Quantity:     10,
		ShipmentDate: "yesterday",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/shipments", "", shippinghttp.ShipmentRequest{
		Quantity:     10,
		ShipmentDate: "2025-03-01",
		Status:       "teleported",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestShipmentRejectsNonPositiveQuantityOverHTTP(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/shipments", "", shippinghttp.ShipmentRequest{
		Quantity:     0,
		ShipmentDate: "2025-03-01",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVehicleDeleteGuardedAndBlockedWhileReferenced(t *testing.T) {
	server := newTestServer()
	vehicle := createVehicle(t, server, "TRK-1001")
	shipment := createShipment(t, server, shippinghttp.ShipmentRequest{
		Quantity:     3,
		ShipmentDate: "2025-03-01",
		VehicleID:    &vehicle.ID,
	})

	// No token at all.
	rr := doJSON(t, server, http.MethodDelete, "/api/vehicles/"+itoa(vehicle.ID), "", nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d body=%s", rr.Code, rr.Body.String())
	}

	token := loginToken(t, server, "manager", "manager123")

	// Referenced by a shipment.
	rr = doJSON(t, server, http.MethodDelete, "/api/vehicles/"+itoa(vehicle.ID), token, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for in-use vehicle, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/shipments/"+itoa(shipment.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete shipment failed: %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodDelete, "/api/vehicles/"+itoa(vehicle.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete vehicle failed: %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestItemDeleteBlockedByShipmentAcrossModules(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin", "admin123")

	rr := doJSON(t, server, http.MethodPost, "/api/items", "", cataloghttp.ItemRequest{
		Name:   "Wireless Router",
		Weight: decimal.NewFromFloat(1.25),
		Price:  decimal.NewFromFloat(99.90),
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create item failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var item cataloghttp.ItemResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}

	shipment := createShipment(t, server, shippinghttp.ShipmentRequest{
		Quantity:     5,
		ShipmentDate: "2025-03-01",
		ItemID:       &item.ID,
	})

	rr = doJSON(t, server, http.MethodDelete, "/api/items/"+itoa(item.ID), token, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for in-use item, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/shipments/"+itoa(shipment.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete shipment failed: %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodDelete, "/api/items/"+itoa(item.ID), token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete item after referrer removal failed: %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestShipmentRejectsDanglingItemRefOverHTTP(t *testing.T) {
	server := newTestServer()

	missing := uint(9999)
	rr := doJSON(t, server, http.MethodPost, "/api/shipments", "", shippinghttp.ShipmentRequest{
		Quantity:     5,
		ShipmentDate: "2025-03-01",
		ItemID:       &missing,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for dangling item ref, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVehicleDuplicatePlateIs400(t *testing.T) {
	server := newTestServer()
	createVehicle(t, server, "TRK-1001")

	rr := doJSON(t, server, http.MethodPost, "/api/vehicles", "", shippinghttp.VehicleRequest{
		LicensePlate: "TRK-1001",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate plate, got %d body=%s", rr.Code, rr.Body.String())
	}
}

// unavailableShippingRepo fails vehicle listing the way the postgres adapter
// does when the store deadline expires. The embedded interface panics if any
// other method is reached.
type unavailableShippingRepo struct {
	shippingports.Repository
}

func (unavailableShippingRepo) ListVehicles(context.Context) ([]shippingentities.Vehicle, error) {
	return nil, shippingerrors.ErrStoreUnavailable
}

func TestVehicleListStoreOutageReturns503(t *testing.T) {
	authModule := auth.NewInMemoryModule(nil)
	catalogModule := catalog.NewInMemoryModule(nil)
	shippingModule := shipping.NewModule(shipping.Dependencies{
		Repository: unavailableShippingRepo{},
		Catalog:    catalogModule.Refs,
	})
	server := New(authModule, catalogModule, shippingModule, nil, ":0")

	rr := doJSON(t, server, http.MethodGet, "/api/vehicles", "", nil)
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
