package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cargotrail/contexts/logistics/catalog-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository persists catalog entities. Referential integrity on delete is
// enforced by the schema's foreign keys; this adapter translates the
// resulting constraint violations into the domain taxonomy.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Models lists the gorm models this adapter owns, for schema migration.
func Models() []any {
	return []any{&supplierModel{}, &warehouseModel{}, &customerModel{}, &itemModel{}}
}

// ForeignKey is a referential constraint the migrate command applies after
// the model pass. AutoMigrate emits no REFERENCES clause for plain reference
// columns, so the constraints are declared here next to the models they guard.
type ForeignKey struct {
	Name     string
	Table    string
	Column   string
	RefTable string
}

// ForeignKeys covers every reference column in this adapter's models. The
// schema rejects deletes of referenced rows with SQLSTATE 23503, which
// deleteErr translates into the in-use error.
func ForeignKeys() []ForeignKey {
	return []ForeignKey{
		{Name: "fk_customer_warehouse", Table: "customer", Column: "warehouse_id", RefTable: "warehouse"},
		{Name: "fk_item_warehouse", Table: "item", Column: "warehouse_id", RefTable: "warehouse"},
		{Name: "fk_item_supplier", Table: "item", Column: "supplier_id", RefTable: "supplier"},
	}
}

// Suppliers

func (r *Repository) CreateSupplier(ctx context.Context, supplier entities.Supplier) (entities.Supplier, error) {
	row := supplierModelFromEntity(supplier)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Supplier{}, r.writeErr("supplier", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	var rows []supplierModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Supplier, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetSupplier(ctx context.Context, id uint) (entities.Supplier, error) {
	var row supplierModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Supplier{}, domainerrors.ErrNotFound
		}
		return entities.Supplier{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateSupplier(ctx context.Context, supplier entities.Supplier) (entities.Supplier, error) {
	row := supplierModelFromEntity(supplier)
	result := r.db.WithContext(ctx).
		Model(&supplierModel{}).
		Where("id = ?", supplier.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Supplier{}, r.writeErr("supplier", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Supplier{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteSupplier(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&supplierModel{}, id)
	if result.Error != nil {
		return r.deleteErr("supplier", "items", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Warehouses

func (r *Repository) CreateWarehouse(ctx context.Context, warehouse entities.Warehouse) (entities.Warehouse, error) {
	row := warehouseModelFromEntity(warehouse)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Warehouse{}, r.writeErr("warehouse", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListWarehouses(ctx context.Context) ([]entities.Warehouse, error) {
	var rows []warehouseModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Warehouse, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetWarehouse(ctx context.Context, id uint) (entities.Warehouse, error) {
	var row warehouseModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Warehouse{}, domainerrors.ErrNotFound
		}
		return entities.Warehouse{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateWarehouse(ctx context.Context, warehouse entities.Warehouse) (entities.Warehouse, error) {
	row := warehouseModelFromEntity(warehouse)
	result := r.db.WithContext(ctx).
		Model(&warehouseModel{}).
		Where("id = ?", warehouse.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Warehouse{}, r.writeErr("warehouse", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Warehouse{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteWarehouse(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&warehouseModel{}, id)
	if result.Error != nil {
		return r.deleteErr("warehouse", "customers or items", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Customers

func (r *Repository) CreateCustomer(ctx context.Context, customer entities.Customer) (entities.Customer, error) {
	row := customerModelFromEntity(customer)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Customer{}, r.writeErr("customer", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Customer, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetCustomer(ctx context.Context, id uint) (entities.Customer, error) {
	var row customerModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Customer{}, domainerrors.ErrNotFound
		}
		return entities.Customer{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, customer entities.Customer) (entities.Customer, error) {
	row := customerModelFromEntity(customer)
	result := r.db.WithContext(ctx).
		Model(&customerModel{}).
		Where("id = ?", customer.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Customer{}, r.writeErr("customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Customer{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteCustomer(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if result.Error != nil {
		return r.deleteErr("customer", "shipments", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Items

func (r *Repository) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	row := itemModelFromEntity(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Item{}, r.writeErr("item", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListItems(ctx context.Context) ([]entities.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetItem(ctx context.Context, id uint) (entities.Item, error) {
	var row itemModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Item{}, domainerrors.ErrNotFound
		}
		return entities.Item{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	row := itemModelFromEntity(item)
	result := r.db.WithContext(ctx).
		Model(&itemModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Item{}, r.writeErr("item", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Item{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteItem(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&itemModel{}, id)
	if result.Error != nil {
		return r.deleteErr("item", "shipments", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Existence checks

func (r *Repository) SupplierExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &supplierModel{}, id)
}

func (r *Repository) WarehouseExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &warehouseModel{}, id)
}

func (r *Repository) ItemExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &itemModel{}, id)
}

func (r *Repository) CustomerExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &customerModel{}, id)
}

func (r *Repository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.storeErr(err)
	}
	return count > 0, nil
}

// Models

type supplierModel struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name;type:varchar(100);not null"`
	Phone   string `gorm:"column:phone;type:varchar(20)"`
	Email   string `gorm:"column:email;type:varchar(100)"`
	Address string `gorm:"column:address;type:text"`
}

func (supplierModel) TableName() string {
	return "supplier"
}

func supplierModelFromEntity(s entities.Supplier) supplierModel {
	return supplierModel{ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email, Address: s.Address}
}

func (m supplierModel) toEntity() entities.Supplier {
	return entities.Supplier{ID: m.ID, Name: m.Name, Phone: m.Phone, Email: m.Email, Address: m.Address}
}

type warehouseModel struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name;type:varchar(100);not null"`
	Address string `gorm:"column:address;type:text"`
	City    string `gorm:"column:city;type:varchar(50)"`
}

func (warehouseModel) TableName() string {
	return "warehouse"
}

func warehouseModelFromEntity(w entities.Warehouse) warehouseModel {
	return warehouseModel{ID: w.ID, Name: w.Name, Address: w.Address, City: w.City}
}

func (m warehouseModel) toEntity() entities.Warehouse {
	return entities.Warehouse{ID: m.ID, Name: m.Name, Address: m.Address, City: m.City}
}

type customerModel struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;type:varchar(100);not null"`
	Email       string `gorm:"column:email;type:varchar(100)"`
	Phone       string `gorm:"column:phone;type:varchar(20)"`
	Address     string `gorm:"column:address;type:text"`
	WarehouseID *uint  `gorm:"column:warehouse_id"`
}

func (customerModel) TableName() string {
	return "customer"
}

func customerModelFromEntity(c entities.Customer) customerModel {
	return customerModel{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address, WarehouseID: c.WarehouseID}
}

func (m customerModel) toEntity() entities.Customer {
	return entities.Customer{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Address: m.Address, WarehouseID: m.WarehouseID}
}

type itemModel struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;type:varchar(100);not null"`
	Weight      decimal.Decimal `gorm:"column:weight;type:decimal(10,2)"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	WarehouseID *uint           `gorm:"column:warehouse_id"`
	SupplierID  *uint           `gorm:"column:supplier_id"`
}

func (itemModel) TableName() string {
	return "item"
}

func itemModelFromEntity(i entities.Item) itemModel {
	return itemModel{ID: i.ID, Name: i.Name, Weight: i.Weight, Price: i.Price, WarehouseID: i.WarehouseID, SupplierID: i.SupplierID}
}

func (m itemModel) toEntity() entities.Item {
	return entities.Item{ID: m.ID, Name: m.Name, Weight: m.Weight, Price: m.Price, WarehouseID: m.WarehouseID, SupplierID: m.SupplierID}
}

// Error translation

func (r *Repository) writeErr(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s violates unique constraint %s", domainerrors.ErrValidation, entity, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s references a missing record", domainerrors.ErrValidation, entity)
		}
	}
	return r.storeErr(err)
}

func (r *Repository) deleteErr(entity string, hint string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: cannot delete: this %s is referenced by other records (e.g., %s)",
			domainerrors.ErrInUse, entity, hint)
	}
	return r.storeErr(err)
}

// storeErr folds context expiry into the unavailable sentinel and logs
// anything else. Cancellations are normal under client disconnect, so only
// genuinely unexpected store failures reach the log.
func (r *Repository) storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerrors.ErrStoreUnavailable
	}
	r.logger.Error("catalog store operation failed",
		"event", "catalog_store_failed",
		"module", "logistics/catalog-service",
		"layer", "adapters",
		"error", err,
	)
	return err
}
