package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cargotrail/contexts/logistics/shipping-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
	domainservices "cargotrail/contexts/logistics/shipping-service/domain/services"
	"cargotrail/contexts/logistics/shipping-service/ports"
)

// Service implements the fleet and shipment entity store. Shipment status is
// validated against the closed enum; StrictTransitions additionally enforces
// forward-only lifecycle moves on update.
type Service struct {
	Repo              ports.Repository
	Catalog           ports.CatalogRefs
	Logger            *slog.Logger
	StoreTimeout      time.Duration
	StrictTransitions bool
}

// Vehicles

func (s Service) CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (entities.Vehicle, error) {
	vehicle.ID = 0
	if err := validateVehicle(&vehicle); err != nil {
		return entities.Vehicle{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.CreateVehicle(opCtx, vehicle)
}

func (s Service) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListVehicles(opCtx)
}

func (s Service) GetVehicle(ctx context.Context, id uint) (entities.Vehicle, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetVehicle(opCtx, id)
}

func (s Service) UpdateVehicle(ctx context.Context, id uint, vehicle entities.Vehicle) (entities.Vehicle, error) {
	vehicle.ID = id
	if err := validateVehicle(&vehicle); err != nil {
		return entities.Vehicle{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.UpdateVehicle(opCtx, vehicle)
}

func (s Service) DeleteVehicle(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteVehicle(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("vehicle", id)
	return nil
}

func validateVehicle(vehicle *entities.Vehicle) error {
	vehicle.LicensePlate = strings.TrimSpace(vehicle.LicensePlate)
	if vehicle.LicensePlate == "" {
		return fmt.Errorf("%w: vehicle license plate is required", domainerrors.ErrValidation)
	}
	if vehicle.Capacity.IsNegative() {
		return fmt.Errorf("%w: vehicle capacity cannot be negative", domainerrors.ErrValidation)
	}
	return nil
}

// Drivers

func (s Service) CreateDriver(ctx context.Context, driver entities.Driver) (entities.Driver, error) {
	driver.ID = 0
	if err := validateDriver(&driver); err != nil {
		return entities.Driver{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkVehicleRef(opCtx, driver.VehicleID); err != nil {
		return entities.Driver{}, err
	}
	return s.Repo.CreateDriver(opCtx, driver)
}

func (s Service) ListDrivers(ctx context.Context) ([]entities.Driver, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListDrivers(opCtx)
}

func (s Service) GetDriver(ctx context.Context, id uint) (entities.Driver, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetDriver(opCtx, id)
}

func (s Service) UpdateDriver(ctx context.Context, id uint, driver entities.Driver) (entities.Driver, error) {
	driver.ID = id
	if err := validateDriver(&driver); err != nil {
		return entities.Driver{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkVehicleRef(opCtx, driver.VehicleID); err != nil {
		return entities.Driver{}, err
	}
	return s.Repo.UpdateDriver(opCtx, driver)
}

func (s Service) DeleteDriver(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteDriver(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("driver", id)
	return nil
}

func validateDriver(driver *entities.Driver) error {
	driver.Name = strings.TrimSpace(driver.Name)
	if driver.Name == "" {
		return fmt.Errorf("%w: driver name is required", domainerrors.ErrValidation)
	}
	return nil
}

// Shipments

func (s Service) CreateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	shipment.ID = 0
	if shipment.Status == "" {
		shipment.Status = entities.StatusPending
	}
	if err := validateShipment(shipment); err != nil {
		return entities.Shipment{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkShipmentRefs(opCtx, shipment); err != nil {
		return entities.Shipment{}, err
	}
	return s.Repo.CreateShipment(opCtx, shipment)
}

func (s Service) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListShipments(opCtx)
}

func (s Service) GetShipment(ctx context.Context, id uint) (entities.Shipment, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetShipment(opCtx, id)
}

// UpdateShipment replaces the stored row in full. The pending default applies
// on create only: an update without a status is rejected, otherwise a resend
// that omits the field would silently reset a delivered shipment.
func (s Service) UpdateShipment(ctx context.Context, id uint, shipment entities.Shipment) (entities.Shipment, error) {
	shipment.ID = id
	if shipment.Status == "" {
		return entities.Shipment{}, fmt.Errorf("%w: shipment status is required", domainerrors.ErrValidation)
	}
	if err := validateShipment(shipment); err != nil {
		return entities.Shipment{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if s.StrictTransitions {
		current, err := s.Repo.GetShipment(opCtx, id)
		if err != nil {
			return entities.Shipment{}, err
		}
		if !domainservices.CanTransition(current.Status, shipment.Status) {
			return entities.Shipment{}, fmt.Errorf("%w: cannot move shipment from %s to %s",
				domainerrors.ErrValidation, current.Status, shipment.Status)
		}
	}
	if err := s.checkShipmentRefs(opCtx, shipment); err != nil {
		return entities.Shipment{}, err
	}
	return s.Repo.UpdateShipment(opCtx, shipment)
}

func (s Service) DeleteShipment(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteShipment(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("shipment", id)
	return nil
}

func validateShipment(shipment entities.Shipment) error {
	if shipment.Quantity <= 0 {
		return fmt.Errorf("%w: shipment quantity must be a positive integer", domainerrors.ErrValidation)
	}
	if shipment.ShipmentDate.IsZero() {
		return fmt.Errorf("%w: shipment date is required", domainerrors.ErrValidation)
	}
	if !domainservices.IsValidStatus(shipment.Status) {
		return fmt.Errorf("%w: status must be one of pending, in_transit, delivered, cancelled",
			domainerrors.ErrValidation)
	}
	return nil
}

func (s Service) checkVehicleRef(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.Repo.VehicleExists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: vehicle %d does not exist", domainerrors.ErrValidation, *id)
	}
	return nil
}

func (s Service) checkShipmentRefs(ctx context.Context, shipment entities.Shipment) error {
	if err := s.checkVehicleRef(ctx, shipment.VehicleID); err != nil {
		return err
	}
	if shipment.DriverID != nil {
		ok, err := s.Repo.DriverExists(ctx, *shipment.DriverID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: driver %d does not exist", domainerrors.ErrValidation, *shipment.DriverID)
		}
	}
	if shipment.ItemID != nil {
		ok, err := s.Catalog.ItemExists(ctx, *shipment.ItemID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: item %d does not exist", domainerrors.ErrValidation, *shipment.ItemID)
		}
	}
	if shipment.CustomerID != nil {
		ok, err := s.Catalog.CustomerExists(ctx, *shipment.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: customer %d does not exist", domainerrors.ErrValidation, *shipment.CustomerID)
		}
	}
	return nil
}

func (s Service) logDeleted(entity string, id uint) {
	ResolveLogger(s.Logger).Info("shipping record deleted",
		"event", "shipping_record_deleted",
		"module", "logistics/shipping-service",
		"layer", "application",
		"entity", entity,
		"id", id,
	)
}

func (s Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
