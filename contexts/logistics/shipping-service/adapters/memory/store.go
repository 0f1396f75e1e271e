package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cargotrail/contexts/logistics/shipping-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
)

// Store is an in-memory fleet and shipment store for tests and local
// development. It mirrors the relational schema's behavior: unique plates and
// licenses, in-use errors for referenced rows, full-replace updates.
type Store struct {
	mu sync.RWMutex

	vehiclesByID  map[uint]entities.Vehicle
	driversByID   map[uint]entities.Driver
	shipmentsByID map[uint]entities.Shipment
	nextID        uint
}

func NewStore() *Store {
	return &Store{
		vehiclesByID:  make(map[uint]entities.Vehicle),
		driversByID:   make(map[uint]entities.Driver),
		shipmentsByID: make(map[uint]entities.Shipment),
		nextID:        1,
	}
}

// Vehicles

func (s *Store) CreateVehicle(_ context.Context, vehicle entities.Vehicle) (entities.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.plateTaken(vehicle.LicensePlate, 0); err != nil {
		return entities.Vehicle{}, err
	}
	vehicle.ID = s.nextID
	s.nextID++
	s.vehiclesByID[vehicle.ID] = vehicle
	return vehicle, nil
}

func (s *Store) ListVehicles(_ context.Context) ([]entities.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Vehicle, 0, len(s.vehiclesByID))
	for _, vehicle := range s.vehiclesByID {
		items = append(items, vehicle)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetVehicle(_ context.Context, id uint) (entities.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, ok := s.vehiclesByID[id]
	if !ok {
		return entities.Vehicle{}, domainerrors.ErrNotFound
	}
	return vehicle, nil
}

func (s *Store) UpdateVehicle(_ context.Context, vehicle entities.Vehicle) (entities.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehiclesByID[vehicle.ID]; !ok {
		return entities.Vehicle{}, domainerrors.ErrNotFound
	}
	if err := s.plateTaken(vehicle.LicensePlate, vehicle.ID); err != nil {
		return entities.Vehicle{}, err
	}
	s.vehiclesByID[vehicle.ID] = vehicle
	return vehicle, nil
}

func (s *Store) DeleteVehicle(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehiclesByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	for _, driver := range s.driversByID {
		if driver.VehicleID != nil && *driver.VehicleID == id {
			return vehicleInUse()
		}
	}
	for _, shipment := range s.shipmentsByID {
		if shipment.VehicleID != nil && *shipment.VehicleID == id {
			return vehicleInUse()
		}
	}
	delete(s.vehiclesByID, id)
	return nil
}

func (s *Store) plateTaken(plate string, selfID uint) error {
	for _, other := range s.vehiclesByID {
		if other.ID != selfID && other.LicensePlate == plate {
			return fmt.Errorf("%w: vehicle violates unique constraint license_plate", domainerrors.ErrValidation)
		}
	}
	return nil
}

func vehicleInUse() error {
	return fmt.Errorf("%w: cannot delete: this vehicle is referenced by other records (e.g., drivers or shipments)",
		domainerrors.ErrInUse)
}

// Drivers

func (s *Store) CreateDriver(_ context.Context, driver entities.Driver) (entities.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.licenseTaken(driver.License, 0); err != nil {
		return entities.Driver{}, err
	}
	driver.ID = s.nextID
	s.nextID++
	s.driversByID[driver.ID] = driver
	return driver, nil
}

func (s *Store) ListDrivers(_ context.Context) ([]entities.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Driver, 0, len(s.driversByID))
	for _, driver := range s.driversByID {
		items = append(items, driver)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetDriver(_ context.Context, id uint) (entities.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	driver, ok := s.driversByID[id]
	if !ok {
		return entities.Driver{}, domainerrors.ErrNotFound
	}
	return driver, nil
}

func (s *Store) UpdateDriver(_ context.Context, driver entities.Driver) (entities.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.driversByID[driver.ID]; !ok {
		return entities.Driver{}, domainerrors.ErrNotFound
	}
	if err := s.licenseTaken(driver.License, driver.ID); err != nil {
		return entities.Driver{}, err
	}
	s.driversByID[driver.ID] = driver
	return driver, nil
}

func (s *Store) DeleteDriver(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.driversByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	for _, shipment := range s.shipmentsByID {
		if shipment.DriverID != nil && *shipment.DriverID == id {
			return fmt.Errorf("%w: cannot delete: this driver is referenced by other records (e.g., shipments)",
				domainerrors.ErrInUse)
		}
	}
	delete(s.driversByID, id)
	return nil
}

func (s *Store) licenseTaken(license string, selfID uint) error {
	if license == "" {
		return nil
	}
	for _, other := range s.driversByID {
		if other.ID != selfID && other.License == license {
			return fmt.Errorf("%w: driver violates unique constraint license", domainerrors.ErrValidation)
		}
	}
	return nil
}

// Shipments

func (s *Store) CreateShipment(_ context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment.ID = s.nextID
	s.nextID++
	s.shipmentsByID[shipment.ID] = shipment
	return shipment, nil
}

func (s *Store) ListShipments(_ context.Context) ([]entities.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Shipment, 0, len(s.shipmentsByID))
	for _, shipment := range s.shipmentsByID {
		items = append(items, shipment)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetShipment(_ context.Context, id uint) (entities.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shipment, ok := s.shipmentsByID[id]
	if !ok {
		return entities.Shipment{}, domainerrors.ErrNotFound
	}
	return shipment, nil
}

func (s *Store) UpdateShipment(_ context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shipmentsByID[shipment.ID]; !ok {
		return entities.Shipment{}, domainerrors.ErrNotFound
	}
	s.shipmentsByID[shipment.ID] = shipment
	return shipment, nil
}

func (s *Store) DeleteShipment(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shipmentsByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.shipmentsByID, id)
	return nil
}

// Existence checks

func (s *Store) VehicleExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vehiclesByID[id]
	return ok, nil
}

func (s *Store) DriverExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.driversByID[id]
	return ok, nil
}

// Referrer lookups for the catalog store's delete checks.

func (s *Store) ItemReferenced(id uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, shipment := range s.shipmentsByID {
		if shipment.ItemID != nil && *shipment.ItemID == id {
			return true
		}
	}
	return false
}

func (s *Store) CustomerReferenced(id uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, shipment := range s.shipmentsByID {
		if shipment.CustomerID != nil && *shipment.CustomerID == id {
			return true
		}
	}
	return false
}
