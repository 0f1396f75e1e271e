package ports

import (
	"context"
	"time"

	"cargotrail/contexts/logistics/catalog-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier entities.Supplier) (entities.Supplier, error)
	ListSuppliers(ctx context.Context) ([]entities.Supplier, error)
	GetSupplier(ctx context.Context, id uint) (entities.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier entities.Supplier) (entities.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
}

type WarehouseRepository interface {
	CreateWarehouse(ctx context.Context, warehouse entities.Warehouse) (entities.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]entities.Warehouse, error)
	GetWarehouse(ctx context.Context, id uint) (entities.Warehouse, error)
	UpdateWarehouse(ctx context.Context, warehouse entities.Warehouse) (entities.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id uint) error
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer entities.Customer) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomer(ctx context.Context, id uint) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, customer entities.Customer) (entities.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	ListItems(ctx context.Context) ([]entities.Item, error)
	GetItem(ctx context.Context, id uint) (entities.Item, error)
	UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

// RefChecker answers existence questions for reference validation at write
// time. ItemExists and CustomerExists also back the shipping module's
// cross-module reference checks.
type RefChecker interface {
	SupplierExists(ctx context.Context, id uint) (bool, error)
	WarehouseExists(ctx context.Context, id uint) (bool, error)
	ItemExists(ctx context.Context, id uint) (bool, error)
	CustomerExists(ctx context.Context, id uint) (bool, error)
}

type Repository interface {
	SupplierRepository
	WarehouseRepository
	CustomerRepository
	ItemRepository
	RefChecker
}
