package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"cargotrail/contexts/logistics/catalog-service/adapters/memory"
	"cargotrail/contexts/logistics/catalog-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{Repo: store}, store
}

func uintPtr(v uint) *uint { return &v }

func TestSupplierCreateListRoundTrip(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateSupplier(context.Background(), entities.Supplier{
		Name:    "Global Electronics Inc",
		Phone:   "555-0101",
		Email:   "contact@globalelectronics.com",
		Address: "123 Tech Street",
	})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	listed, err := service.ListSuppliers(context.Background())
	if err != nil {
		t.Fatalf("list suppliers failed: %v", err)
	}
	if len(listed) != 1 || listed[0] != created {
		t.Fatalf("round trip mismatch: %+v vs %+v", listed, created)
	}
}

func TestSupplierNameRequired(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.CreateSupplier(context.Background(), entities.Supplier{Name: "   "}); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCustomerRejectsMissingWarehouseRef(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateCustomer(context.Background(), entities.Customer{
		Name:        "Acme Corporation",
		WarehouseID: uintPtr(99),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for dangling warehouse ref, got %v", err)
	}
}

func TestCustomerOptionalWarehouseRefMayBeAbsent(t *testing.T) {
	service, _ := newTestService()

	customer, err := service.CreateCustomer(context.Background(), entities.Customer{Name: "Acme Corporation"})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if customer.WarehouseID != nil {
		t.Fatalf("expected nil warehouse ref, got %v", *customer.WarehouseID)
	}
}

func TestUpdateIsFullReplace(t *testing.T) {
	service, _ := newTestService()

	warehouse, err := service.CreateWarehouse(context.Background(), entities.Warehouse{Name: "Central Hub", City: "Chicago"})
	if err != nil {
		t.Fatalf("create warehouse failed: %v", err)
	}
	customer, err := service.CreateCustomer(context.Background(), entities.Customer{
		Name:        "Acme Corporation",
		Email:       "purchasing@acmecorp.com",
		WarehouseID: &warehouse.ID,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	// Resend with email and warehouse ref omitted: both must be nulled, not
	// retained.
	updated, err := service.UpdateCustomer(context.Background(), customer.ID, entities.Customer{Name: "Acme Corporation"})
	if err != nil {
		t.Fatalf("update customer failed: %v", err)
	}
	if updated.Email != "" {
		t.Fatalf("omitted email retained: %q", updated.Email)
	}
	if updated.WarehouseID != nil {
		t.Fatalf("omitted warehouse ref retained: %v", *updated.WarehouseID)
	}

	fetched, err := service.GetCustomer(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("get customer failed: %v", err)
	}
	if fetched != updated {
		t.Fatalf("persisted row differs from update result: %+v vs %+v", fetched, updated)
	}
}

func TestUpdateMissingRowReturnsNotFound(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.UpdateSupplier(context.Background(), 42, entities.Supplier{Name: "Ghost"}); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWarehouseDeleteBlockedWhileReferenced(t *testing.T) {
	service, _ := newTestService()

	warehouse, err := service.CreateWarehouse(context.Background(), entities.Warehouse{Name: "Central Hub"})
	if err != nil {
		t.Fatalf("create warehouse failed: %v", err)
	}
	customer, err := service.CreateCustomer(context.Background(), entities.Customer{
		Name:        "Acme Corporation",
		WarehouseID: &warehouse.ID,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	if err := service.DeleteWarehouse(context.Background(), warehouse.ID); !errors.Is(err, domainerrors.ErrInUse) {
		t.Fatalf("expected in-use rejection, got %v", err)
	}

	// Both rows must be unchanged after the rejected delete.
	if _, err := service.GetWarehouse(context.Background(), warehouse.ID); err != nil {
		t.Fatalf("warehouse vanished after rejected delete: %v", err)
	}
	if _, err := service.GetCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("customer vanished after rejected delete: %v", err)
	}

	if err := service.DeleteCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("delete customer failed: %v", err)
	}
	if err := service.DeleteWarehouse(context.Background(), warehouse.ID); err != nil {
		t.Fatalf("delete warehouse after referrer removal failed: %v", err)
	}
}

func TestSupplierDeleteBlockedByItem(t *testing.T) {
	service, _ := newTestService()

	supplier, err := service.CreateSupplier(context.Background(), entities.Supplier{Name: "Tech Components Supply"})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if _, err := service.CreateItem(context.Background(), entities.Item{
		Name:       "Router",
		Weight:     decimal.NewFromFloat(1.25),
		Price:      decimal.NewFromFloat(99.90),
		SupplierID: &supplier.ID,
	}); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	if err := service.DeleteSupplier(context.Background(), supplier.ID); !errors.Is(err, domainerrors.ErrInUse) {
		t.Fatalf("expected in-use rejection, got %v", err)
	}
}

func TestDeleteIsIdempotentSafe(t *testing.T) {
	service, _ := newTestService()

	supplier, err := service.CreateSupplier(context.Background(), entities.Supplier{Name: "Premium Foods Ltd"})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if err := service.DeleteSupplier(context.Background(), supplier.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := service.DeleteSupplier(context.Background(), supplier.ID); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestItemRejectsNegativePrice(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateItem(context.Background(), entities.Item{
		Name:  "Router",
		Price: decimal.NewFromFloat(-1),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
