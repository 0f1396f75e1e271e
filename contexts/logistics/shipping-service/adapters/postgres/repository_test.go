package postgresadapter

import (
	"context"
	"errors"
	"testing"

	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
)

func TestForeignKeysCoverReferenceColumns(t *testing.T) {
	want := map[string]string{
		"driver.vehicle_id":    "vehicle",
		"shipment.item_id":     "item",
		"shipment.vehicle_id":  "vehicle",
		"shipment.driver_id":   "driver",
		"shipment.customer_id": "customer",
	}

	names := map[string]bool{}
	for _, fk := range ForeignKeys() {
		key := fk.Table + "." + fk.Column
		ref, ok := want[key]
		if !ok {
			t.Fatalf("unexpected foreign key on %s", key)
		}
		if fk.RefTable != ref {
			t.Fatalf("%s references %s, want %s", key, fk.RefTable, ref)
		}
		if names[fk.Name] {
			t.Fatalf("duplicate constraint name %s", fk.Name)
		}
		names[fk.Name] = true
		delete(want, key)
	}
	if len(want) != 0 {
		t.Fatalf("reference columns without a foreign key: %v", want)
	}
}

func TestStoreErrMapsContextExpiry(t *testing.T) {
	r := NewRepository(nil, nil)

	if err := r.storeErr(context.DeadlineExceeded); !errors.Is(err, domainerrors.ErrStoreUnavailable) {
		t.Fatalf("deadline not mapped to store unavailable: %v", err)
	}
	if err := r.storeErr(context.Canceled); !errors.Is(err, domainerrors.ErrStoreUnavailable) {
		t.Fatalf("cancel not mapped to store unavailable: %v", err)
	}

	unexpected := errors.New("connection reset")
	if err := r.storeErr(unexpected); !errors.Is(err, unexpected) {
		t.Fatalf("unexpected error rewritten: %v", err)
	}
}
