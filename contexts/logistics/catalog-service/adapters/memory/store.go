package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cargotrail/contexts/logistics/catalog-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
)

// Store is an in-memory catalog store for tests and local development. It
// mirrors the relational schema's behavior: deletes of referenced rows fail
// with the in-use error, updates are full replaces.
type Store struct {
	mu sync.RWMutex

	suppliersByID  map[uint]entities.Supplier
	warehousesByID map[uint]entities.Warehouse
	customersByID  map[uint]entities.Customer
	itemsByID      map[uint]entities.Item
	nextID         uint

	// Cross-module referrer checks, bound by runtime wiring. In Postgres the
	// shipment foreign keys cover this; here the shipping store answers.
	itemReferenced     func(id uint) bool
	customerReferenced func(id uint) bool
}

func NewStore() *Store {
	return &Store{
		suppliersByID:  make(map[uint]entities.Supplier),
		warehousesByID: make(map[uint]entities.Warehouse),
		customersByID:  make(map[uint]entities.Customer),
		itemsByID:      make(map[uint]entities.Item),
		nextID:         1,
	}
}

// BindShipmentIndex wires the shipping store's referrer lookups so item and
// customer deletes observe shipment references.
func (s *Store) BindShipmentIndex(itemReferenced, customerReferenced func(id uint) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemReferenced = itemReferenced
	s.customerReferenced = customerReferenced
}

// Suppliers

func (s *Store) CreateSupplier(_ context.Context, supplier entities.Supplier) (entities.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier.ID = s.nextID
	s.nextID++
	s.suppliersByID[supplier.ID] = supplier
	return supplier, nil
}

func (s *Store) ListSuppliers(_ context.Context) ([]entities.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Supplier, 0, len(s.suppliersByID))
	for _, supplier := range s.suppliersByID {
		items = append(items, supplier)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetSupplier(_ context.Context, id uint) (entities.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplier, ok := s.suppliersByID[id]
	if !ok {
		return entities.Supplier{}, domainerrors.ErrNotFound
	}
	return supplier, nil
}

func (s *Store) UpdateSupplier(_ context.Context, supplier entities.Supplier) (entities.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliersByID[supplier.ID]; !ok {
		return entities.Supplier{}, domainerrors.ErrNotFound
	}
	s.suppliersByID[supplier.ID] = supplier
	return supplier, nil
}

func (s *Store) DeleteSupplier(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliersByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	for _, item := range s.itemsByID {
		if item.SupplierID != nil && *item.SupplierID == id {
			return fmt.Errorf("%w: cannot delete: this supplier is referenced by other records (e.g., items)",
				domainerrors.ErrInUse)
		}
	}
	delete(s.suppliersByID, id)
	return nil
}

// Warehouses

func (s *Store) CreateWarehouse(_ context.Context, warehouse entities.Warehouse) (entities.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	warehouse.ID = s.nextID
	s.nextID++
	s.warehousesByID[warehouse.ID] = warehouse
	return warehouse, nil
}

func (s *Store) ListWarehouses(_ context.Context) ([]entities.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Warehouse, 0, len(s.warehousesByID))
	for _, warehouse := range s.warehousesByID {
		items = append(items, warehouse)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetWarehouse(_ context.Context, id uint) (entities.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	warehouse, ok := s.warehousesByID[id]
	if !ok {
		return entities.Warehouse{}, domainerrors.ErrNotFound
	}
	return warehouse, nil
}

func (s *Store) UpdateWarehouse(_ context.Context, warehouse entities.Warehouse) (entities.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.warehousesByID[warehouse.ID]; !ok {
		return entities.Warehouse{}, domainerrors.ErrNotFound
	}
	s.warehousesByID[warehouse.ID] = warehouse
	return warehouse, nil
}

func (s *Store) DeleteWarehouse(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.warehousesByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	for _, customer := range s.customersByID {
		if customer.WarehouseID != nil && *customer.WarehouseID == id {
			return warehouseInUse()
		}
	}
	for _, item := range s.itemsByID {
		if item.WarehouseID != nil && *item.WarehouseID == id {
			return warehouseInUse()
		}
	}
	delete(s.warehousesByID, id)
	return nil
}

func warehouseInUse() error {
	return fmt.Errorf("%w: cannot delete: this warehouse is referenced by other records (e.g., customers or items)",
		domainerrors.ErrInUse)
}

// Customers

func (s *Store) CreateCustomer(_ context.Context, customer entities.Customer) (entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer.ID = s.nextID
	s.nextID++
	s.customersByID[customer.ID] = customer
	return customer, nil
}

func (s *Store) ListCustomers(_ context.Context) ([]entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Customer, 0, len(s.customersByID))
	for _, customer := range s.customersByID {
		items = append(items, customer)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetCustomer(_ context.Context, id uint) (entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customersByID[id]
	if !ok {
		return entities.Customer{}, domainerrors.ErrNotFound
	}
	return customer, nil
}

func (s *Store) UpdateCustomer(_ context.Context, customer entities.Customer) (entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customersByID[customer.ID]; !ok {
		return entities.Customer{}, domainerrors.ErrNotFound
	}
	s.customersByID[customer.ID] = customer
	return customer, nil
}

func (s *Store) DeleteCustomer(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customersByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	if s.customerReferenced != nil && s.customerReferenced(id) {
		return fmt.Errorf("%w: cannot delete: this customer is referenced by other records (e.g., shipments)",
			domainerrors.ErrInUse)
	}
	delete(s.customersByID, id)
	return nil
}

// Items

func (s *Store) CreateItem(_ context.Context, item entities.Item) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.itemsByID[item.ID] = item
	return item, nil
}

func (s *Store) ListItems(_ context.Context) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Item, 0, len(s.itemsByID))
	for _, item := range s.itemsByID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetItem(_ context.Context, id uint) (entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.itemsByID[id]
	if !ok {
		return entities.Item{}, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *Store) UpdateItem(_ context.Context, item entities.Item) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.itemsByID[item.ID]; !ok {
		return entities.Item{}, domainerrors.ErrNotFound
	}
	s.itemsByID[item.ID] = item
	return item, nil
}

func (s *Store) DeleteItem(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.itemsByID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	if s.itemReferenced != nil && s.itemReferenced(id) {
		return fmt.Errorf("%w: cannot delete: this item is referenced by other records (e.g., shipments)",
			domainerrors.ErrInUse)
	}
	delete(s.itemsByID, id)
	return nil
}

// Existence checks

func (s *Store) SupplierExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.suppliersByID[id]
	return ok, nil
}

func (s *Store) WarehouseExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.warehousesByID[id]
	return ok, nil
}

func (s *Store) ItemExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.itemsByID[id]
	return ok, nil
}

func (s *Store) CustomerExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.customersByID[id]
	return ok, nil
}
