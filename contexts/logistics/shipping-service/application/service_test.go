package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cargotrail/contexts/logistics/shipping-service/adapters/memory"
	"cargotrail/contexts/logistics/shipping-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
)

// fakeCatalog stands in for the catalog module's reference checker.
type fakeCatalog struct {
	items     map[uint]bool
	customers map[uint]bool
}

func (f fakeCatalog) ItemExists(_ context.Context, id uint) (bool, error) {
	return f.items[id], nil
}

func (f fakeCatalog) CustomerExists(_ context.Context, id uint) (bool, error) {
	return f.customers[id], nil
}

func newTestService(strict bool) (Service, *memory.Store) {
	store := memory.NewStore()
	catalog := fakeCatalog{
		items:     map[uint]bool{1: true},
		customers: map[uint]bool{1: true},
	}
	return Service{Repo: store, Catalog: catalog, StrictTransitions: strict}, store
}

func uintPtr(v uint) *uint { return &v }

func testDate() time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestVehiclePlateRequired(t *testing.T) {
	service, _ := newTestService(false)

	if _, err := service.CreateVehicle(context.Background(), entities.Vehicle{Model: "Volvo FH16"}); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVehiclePlateUnique(t *testing.T) {
	service, _ := newTestService(false)

	if _, err := service.CreateVehicle(context.Background(), entities.Vehicle{
		LicensePlate: "TRK-1001",
		Model:        "Volvo FH16",
		Capacity:     decimal.NewFromInt(2500),
	}); err != nil {
		t.Fatalf("create vehicle failed: %v", err)
	}
	if _, err := service.CreateVehicle(context.Background(), entities.Vehicle{LicensePlate: "TRK-1001"}); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected unique violation as validation error, got %v", err)
	}
}

func TestDriverRejectsMissingVehicleRef(t *testing.T) {
	service, _ := newTestService(false)

	_, err := service.CreateDriver(context.Background(), entities.Driver{
		Name:      "John Smith",
		VehicleID: uintPtr(77),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for dangling vehicle ref, got %v", err)
	}
}

func TestShipmentDefaultsToPending(t *testing.T) {
	service, _ := newTestService(false)

	shipment, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if shipment.Status != entities.StatusPending {
		t.Fatalf("expected default pending status, got %q", shipment.Status)
	}
}

func TestShipmentRejectsUnknownStatus(t *testing.T) {
	service, _ := newTestService(false)

	_, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		Status:       "teleported",
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestShipmentQuantityMustBePositive(t *testing.T) {
	service, _ := newTestService(false)

	for _, quantity := range []int{0, -5} {
		_, err := service.CreateShipment(context.Background(), entities.Shipment{
			Quantity:     quantity,
			ShipmentDate: testDate(),
		})
		if !errors.Is(err, domainerrors.ErrValidation) {
			t.Fatalf("quantity %d: expected validation error, got %v", quantity, err)
		}
	}
}

func TestShipmentDateRequired(t *testing.T) {
	service, _ := newTestService(false)

	if _, err := service.CreateShipment(context.Background(), entities.Shipment{Quantity: 10}); !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestShipmentRejectsUnknownItemAndCustomer(t *testing.T) {
	service, _ := newTestService(false)

	_, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		ItemID:       uintPtr(99),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for dangling item ref, got %v", err)
	}

	_, err = service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		CustomerID:   uintPtr(99),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for dangling customer ref, got %v", err)
	}
}

func TestShipmentUpdateIsFullReplace(t *testing.T) {
	service, _ := newTestService(false)

	created, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		ItemID:       uintPtr(1),
		CustomerID:   uintPtr(1),
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	// Resend with the refs omitted: they must be nulled, not retained.
	updated, err := service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
		Quantity:     5,
		ShipmentDate: testDate(),
		Status:       entities.StatusPending,
	})
	if err != nil {
		t.Fatalf("update shipment failed: %v", err)
	}
	if updated.ItemID != nil || updated.CustomerID != nil {
		t.Fatalf("omitted refs retained: %+v", updated)
	}
	if updated.Quantity != 5 {
		t.Fatalf("quantity not replaced: %d", updated.Quantity)
	}
}

func TestShipmentUpdateRequiresStatus(t *testing.T) {
	service, _ := newTestService(false)

	created, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		Status:       entities.StatusDelivered,
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	_, err = service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected validation error for missing status, got %v", err)
	}

	current, err := service.GetShipment(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get shipment failed: %v", err)
	}
	if current.Status != entities.StatusDelivered {
		t.Fatalf("delivered shipment was reset to %q", current.Status)
	}
}

func TestStrictTransitionsEnforced(t *testing.T) {
	service, _ := newTestService(true)

	created, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	// pending cannot jump straight to delivered.
	_, err = service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		Status:       entities.StatusDelivered,
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected transition rejection, got %v", err)
	}

	for _, status := range []entities.ShipmentStatus{entities.StatusInTransit, entities.StatusDelivered} {
		if _, err := service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
			Quantity:     10,
			ShipmentDate: testDate(),
			Status:       status,
		}); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}

	// delivered is terminal.
	_, err = service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		Status:       entities.StatusCancelled,
	})
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Fatalf("expected terminal rejection, got %v", err)
	}
}

func TestLooseTransitionsAllowAnyValidStatus(t *testing.T) {
	service, _ := newTestService(false)

	created, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	if _, err := service.UpdateShipment(context.Background(), created.ID, entities.Shipment{
		Quantity:     10,
		ShipmentDate: testDate(),
		Status:       entities.StatusDelivered,
	}); err != nil {
		t.Fatalf("loose mode should accept any valid status, got %v", err)
	}
}

func TestVehicleDeleteBlockedWhileReferenced(t *testing.T) {
	service, _ := newTestService(false)

	vehicle, err := service.CreateVehicle(context.Background(), entities.Vehicle{LicensePlate: "TRK-1001"})
	if err != nil {
		t.Fatalf("create vehicle failed: %v", err)
	}
	driver, err := service.CreateDriver(context.Background(), entities.Driver{
		Name:      "John Smith",
		VehicleID: &vehicle.ID,
	})
	if err != nil {
		t.Fatalf("create driver failed: %v", err)
	}

	if err := service.DeleteVehicle(context.Background(), vehicle.ID); !errors.Is(err, domainerrors.ErrInUse) {
		t.Fatalf("expected in-use rejection, got %v", err)
	}

	if err := service.DeleteDriver(context.Background(), driver.ID); err != nil {
		t.Fatalf("delete driver failed: %v", err)
	}
	if err := service.DeleteVehicle(context.Background(), vehicle.ID); err != nil {
		t.Fatalf("delete vehicle after referrer removal failed: %v", err)
	}
}

func TestDriverDeleteBlockedByShipment(t *testing.T) {
	service, _ := newTestService(false)

	driver, err := service.CreateDriver(context.Background(), entities.Driver{Name: "Maria Garcia"})
	if err != nil {
		t.Fatalf("create driver failed: %v", err)
	}
	if _, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     3,
		ShipmentDate: testDate(),
		DriverID:     &driver.ID,
	}); err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	if err := service.DeleteDriver(context.Background(), driver.ID); !errors.Is(err, domainerrors.ErrInUse) {
		t.Fatalf("expected in-use rejection, got %v", err)
	}
}

func TestShipmentDeleteIsUnconditional(t *testing.T) {
	service, _ := newTestService(false)

	created, err := service.CreateShipment(context.Background(), entities.Shipment{
		Quantity:     3,
		ShipmentDate: testDate(),
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if err := service.DeleteShipment(context.Background(), created.ID); err != nil {
		t.Fatalf("delete shipment failed: %v", err)
	}
	if err := service.DeleteShipment(context.Background(), created.ID); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}
