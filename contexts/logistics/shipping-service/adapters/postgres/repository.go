package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cargotrail/contexts/logistics/shipping-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository persists fleet and shipment rows. Unique plates and licenses are
// schema constraints; deletes of referenced rows surface as the in-use error.
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
	return []any{&vehicleModel{}, &driverModel{}, &shipmentModel{}}
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

// ForeignKeys covers every reference column in this adapter's models,
// including the shipment columns that point into the catalog tables. The
// schema rejects deletes of referenced rows with SQLSTATE 23503, which
// deleteErr translates into the in-use error.
func ForeignKeys() []ForeignKey {
	return []ForeignKey{
		{Name: "fk_driver_vehicle", Table: "driver", Column: "vehicle_id", RefTable: "vehicle"},
		{Name: "fk_shipment_item", Table: "shipment", Column: "item_id", RefTable: "item"},
		{Name: "fk_shipment_vehicle", Table: "shipment", Column: "vehicle_id", RefTable: "vehicle"},
		{Name: "fk_shipment_driver", Table: "shipment", Column: "driver_id", RefTable: "driver"},
		{Name: "fk_shipment_customer", Table: "shipment", Column: "customer_id", RefTable: "customer"},
	}
}

// Vehicles

func (r *Repository) CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (entities.Vehicle, error) {
	row := vehicleModelFromEntity(vehicle)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Vehicle{}, r.writeErr("vehicle", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var rows []vehicleModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Vehicle, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetVehicle(ctx context.Context, id uint) (entities.Vehicle, error) {
	var row vehicleModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vehicle{}, domainerrors.ErrNotFound
		}
		return entities.Vehicle{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateVehicle(ctx context.Context, vehicle entities.Vehicle) (entities.Vehicle, error) {
	row := vehicleModelFromEntity(vehicle)
	result := r.db.WithContext(ctx).
		Model(&vehicleModel{}).
		Where("id = ?", vehicle.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Vehicle{}, r.writeErr("vehicle", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Vehicle{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteVehicle(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&vehicleModel{}, id)
	if result.Error != nil {
		return r.deleteErr("vehicle", "drivers or shipments", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Drivers

func (r *Repository) CreateDriver(ctx context.Context, driver entities.Driver) (entities.Driver, error) {
	row := driverModelFromEntity(driver)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Driver{}, r.writeErr("driver", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListDrivers(ctx context.Context) ([]entities.Driver, error) {
	var rows []driverModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Driver, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetDriver(ctx context.Context, id uint) (entities.Driver, error) {
	var row driverModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Driver{}, domainerrors.ErrNotFound
		}
		return entities.Driver{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateDriver(ctx context.Context, driver entities.Driver) (entities.Driver, error) {
	row := driverModelFromEntity(driver)
	result := r.db.WithContext(ctx).
		Model(&driverModel{}).
		Where("id = ?", driver.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Driver{}, r.writeErr("driver", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Driver{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteDriver(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&driverModel{}, id)
	if result.Error != nil {
		return r.deleteErr("driver", "shipments", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Shipments

func (r *Repository) CreateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	row := shipmentModelFromEntity(shipment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Shipment{}, r.writeErr("shipment", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	var rows []shipmentModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeErr(err)
	}
	items := make([]entities.Shipment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetShipment(ctx context.Context, id uint) (entities.Shipment, error) {
	var row shipmentModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Shipment{}, domainerrors.ErrNotFound
		}
		return entities.Shipment{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	row := shipmentModelFromEntity(shipment)
	result := r.db.WithContext(ctx).
		Model(&shipmentModel{}).
		Where("id = ?", shipment.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		return entities.Shipment{}, r.writeErr("shipment", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Shipment{}, domainerrors.ErrNotFound
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteShipment(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&shipmentModel{}, id)
	if result.Error != nil {
		return r.storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Existence checks

func (r *Repository) VehicleExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &vehicleModel{}, id)
}

func (r *Repository) DriverExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &driverModel{}, id)
}

func (r *Repository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.storeErr(err)
	}
	return count > 0, nil
}

// Models

type vehicleModel struct {
	ID           uint            `gorm:"column:id;primaryKey"`
	LicensePlate string          `gorm:"column:license_plate;type:varchar(20);not null;uniqueIndex"`
	Model        string          `gorm:"column:model;type:varchar(50)"`
	Capacity     decimal.Decimal `gorm:"column:capacity;type:decimal(10,2)"`
}

func (vehicleModel) TableName() string {
	return "vehicle"
}

func vehicleModelFromEntity(v entities.Vehicle) vehicleModel {
	return vehicleModel{ID: v.ID, LicensePlate: v.LicensePlate, Model: v.Model, Capacity: v.Capacity}
}

func (m vehicleModel) toEntity() entities.Vehicle {
	return entities.Vehicle{ID: m.ID, LicensePlate: m.LicensePlate, Model: m.Model, Capacity: m.Capacity}
}

type driverModel struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;type:varchar(100);not null"`
	License   string `gorm:"column:license;type:varchar(50);uniqueIndex"`
	Phone     string `gorm:"column:phone;type:varchar(20)"`
	VehicleID *uint  `gorm:"column:vehicle_id"`
}

func (driverModel) TableName() string {
	return "driver"
}

func driverModelFromEntity(d entities.Driver) driverModel {
	return driverModel{ID: d.ID, Name: d.Name, License: d.License, Phone: d.Phone, VehicleID: d.VehicleID}
}

func (m driverModel) toEntity() entities.Driver {
	return entities.Driver{ID: m.ID, Name: m.Name, License: m.License, Phone: m.Phone, VehicleID: m.VehicleID}
}

type shipmentModel struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	ItemID       *uint     `gorm:"column:item_id"`
	Quantity     int       `gorm:"column:quantity;not null"`
	VehicleID    *uint     `gorm:"column:vehicle_id"`
	DriverID     *uint     `gorm:"column:driver_id"`
	CustomerID   *uint     `gorm:"column:customer_id"`
	ShipmentDate time.Time `gorm:"column:shipment_date;type:date;not null"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:pending"`
}

func (shipmentModel) TableName() string {
	return "shipment"
}

func shipmentModelFromEntity(s entities.Shipment) shipmentModel {
	return shipmentModel{
		ID:           s.ID,
		ItemID:       s.ItemID,
		Quantity:     s.Quantity,
		VehicleID:    s.VehicleID,
		DriverID:     s.DriverID,
		CustomerID:   s.CustomerID,
		ShipmentDate: s.ShipmentDate,
		Status:       string(s.Status),
	}
}

func (m shipmentModel) toEntity() entities.Shipment {
	return entities.Shipment{
		ID:           m.ID,
		ItemID:       m.ItemID,
		Quantity:     m.Quantity,
		VehicleID:    m.VehicleID,
		DriverID:     m.DriverID,
		CustomerID:   m.CustomerID,
		ShipmentDate: m.ShipmentDate,
		Status:       entities.ShipmentStatus(m.Status),
	}
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
	r.logger.Error("shipping store operation failed",
		"event", "shipping_store_failed",
		"module", "logistics/shipping-service",
		"layer", "adapters",
		"error", err,
	)
	return err
}
