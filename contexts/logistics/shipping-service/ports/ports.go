package ports

import (
	"context"
	"time"

	"cargotrail/contexts/logistics/shipping-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (entities.Vehicle, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle entities.Vehicle) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error
}

type DriverRepository interface {
	CreateDriver(ctx context.Context, driver entities.Driver) (entities.Driver, error)
	ListDrivers(ctx context.Context) ([]entities.Driver, error)
	GetDriver(ctx context.Context, id uint) (entities.Driver, error)
	UpdateDriver(ctx context.Context, driver entities.Driver) (entities.Driver, error)
	DeleteDriver(ctx context.Context, id uint) error
}

type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error)
	ListShipments(ctx context.Context) ([]entities.Shipment, error)
	GetShipment(ctx context.Context, id uint) (entities.Shipment, error)
	UpdateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error)
	DeleteShipment(ctx context.Context, id uint) error
}

type RefChecker interface {
	VehicleExists(ctx context.Context, id uint) (bool, error)
	DriverExists(ctx context.Context, id uint) (bool, error)
}

type Repository interface {
	VehicleRepository
	DriverRepository
	ShipmentRepository
	RefChecker
}

// CatalogRefs resolves cross-module shipment references. Implemented by the
// catalog module's repository.
type CatalogRefs interface {
	ItemExists(ctx context.Context, id uint) (bool, error)
	CustomerExists(ctx context.Context, id uint) (bool, error)
}
