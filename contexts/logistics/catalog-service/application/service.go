package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cargotrail/contexts/logistics/catalog-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
	"cargotrail/contexts/logistics/catalog-service/ports"
)

// Service implements the catalog entity store: suppliers, warehouses,
// customers, and items. Updates are full-row replaces; fields absent from the
// caller's payload overwrite stored values with their zero/null form.
type Service struct {
	Repo         ports.Repository
	Logger       *slog.Logger
	StoreTimeout time.Duration
}

// Suppliers

func (s Service) CreateSupplier(ctx context.Context, supplier entities.Supplier) (entities.Supplier, error) {
	supplier.ID = 0
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return entities.Supplier{}, fmt.Errorf("%w: supplier name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.CreateSupplier(opCtx, supplier)
}

func (s Service) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListSuppliers(opCtx)
}

func (s Service) GetSupplier(ctx context.Context, id uint) (entities.Supplier, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetSupplier(opCtx, id)
}

func (s Service) UpdateSupplier(ctx context.Context, id uint, supplier entities.Supplier) (entities.Supplier, error) {
	supplier.ID = id
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return entities.Supplier{}, fmt.Errorf("%w: supplier name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.UpdateSupplier(opCtx, supplier)
}

func (s Service) DeleteSupplier(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteSupplier(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("supplier", id)
	return nil
}

// Warehouses

func (s Service) CreateWarehouse(ctx context.Context, warehouse entities.Warehouse) (entities.Warehouse, error) {
	warehouse.ID = 0
	warehouse.Name = strings.TrimSpace(warehouse.Name)
	if warehouse.Name == "" {
		return entities.Warehouse{}, fmt.Errorf("%w: warehouse name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.CreateWarehouse(opCtx, warehouse)
}

func (s Service) ListWarehouses(ctx context.Context) ([]entities.Warehouse, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListWarehouses(opCtx)
}

func (s Service) GetWarehouse(ctx context.Context, id uint) (entities.Warehouse, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetWarehouse(opCtx, id)
}

func (s Service) UpdateWarehouse(ctx context.Context, id uint, warehouse entities.Warehouse) (entities.Warehouse, error) {
	warehouse.ID = id
	warehouse.Name = strings.TrimSpace(warehouse.Name)
	if warehouse.Name == "" {
		return entities.Warehouse{}, fmt.Errorf("%w: warehouse name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.UpdateWarehouse(opCtx, warehouse)
}

func (s Service) DeleteWarehouse(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteWarehouse(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("warehouse", id)
	return nil
}

// Customers

func (s Service) CreateCustomer(ctx context.Context, customer entities.Customer) (entities.Customer, error) {
	customer.ID = 0
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return entities.Customer{}, fmt.Errorf("%w: customer name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkWarehouseRef(opCtx, customer.WarehouseID); err != nil {
		return entities.Customer{}, err
	}
	return s.Repo.CreateCustomer(opCtx, customer)
}

func (s Service) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListCustomers(opCtx)
}

func (s Service) GetCustomer(ctx context.Context, id uint) (entities.Customer, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetCustomer(opCtx, id)
}

func (s Service) UpdateCustomer(ctx context.Context, id uint, customer entities.Customer) (entities.Customer, error) {
	customer.ID = id
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return entities.Customer{}, fmt.Errorf("%w: customer name is required", domainerrors.ErrValidation)
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkWarehouseRef(opCtx, customer.WarehouseID); err != nil {
		return entities.Customer{}, err
	}
	return s.Repo.UpdateCustomer(opCtx, customer)
}

func (s Service) DeleteCustomer(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteCustomer(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("customer", id)
	return nil
}

// Items

func (s Service) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	item.ID = 0
	if err := validateItem(&item); err != nil {
		return entities.Item{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkItemRefs(opCtx, item); err != nil {
		return entities.Item{}, err
	}
	return s.Repo.CreateItem(opCtx, item)
}

func (s Service) ListItems(ctx context.Context) ([]entities.Item, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.ListItems(opCtx)
}

func (s Service) GetItem(ctx context.Context, id uint) (entities.Item, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	return s.Repo.GetItem(opCtx, id)
}

func (s Service) UpdateItem(ctx context.Context, id uint, item entities.Item) (entities.Item, error) {
	item.ID = id
	if err := validateItem(&item); err != nil {
		return entities.Item{}, err
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.checkItemRefs(opCtx, item); err != nil {
		return entities.Item{}, err
	}
	return s.Repo.UpdateItem(opCtx, item)
}

func (s Service) DeleteItem(ctx context.Context, id uint) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.Repo.DeleteItem(opCtx, id); err != nil {
		return err
	}
	s.logDeleted("item", id)
	return nil
}

func validateItem(item *entities.Item) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domainerrors.ErrValidation)
	}
	if item.Weight.IsNegative() {
		return fmt.Errorf("%w: item weight cannot be negative", domainerrors.ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: item price cannot be negative", domainerrors.ErrValidation)
	}
	return nil
}

func (s Service) checkWarehouseRef(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.Repo.WarehouseExists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: warehouse %d does not exist", domainerrors.ErrValidation, *id)
	}
	return nil
}

func (s Service) checkItemRefs(ctx context.Context, item entities.Item) error {
	if err := s.checkWarehouseRef(ctx, item.WarehouseID); err != nil {
		return err
	}
	if item.SupplierID != nil {
		ok, err := s.Repo.SupplierExists(ctx, *item.SupplierID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: supplier %d does not exist", domainerrors.ErrValidation, *item.SupplierID)
		}
	}
	return nil
}

func (s Service) logDeleted(entity string, id uint) {
	ResolveLogger(s.Logger).Info("catalog record deleted",
		"event", "catalog_record_deleted",
		"module", "logistics/catalog-service",
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
