package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	auth "cargotrail/contexts/identity-access/auth-service"
	authpostgres "cargotrail/contexts/identity-access/auth-service/adapters/postgres"
	autherrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	catalogpostgres "cargotrail/contexts/logistics/catalog-service/adapters/postgres"
	catalogentities "cargotrail/contexts/logistics/catalog-service/domain/entities"
	shippingpostgres "cargotrail/contexts/logistics/shipping-service/adapters/postgres"
	shippingentities "cargotrail/contexts/logistics/shipping-service/domain/entities"
	"cargotrail/internal/platform/config"
	"cargotrail/internal/platform/db"
)

// Schema and seed tool. "up" applies the schema for every module's models,
// "seed" loads the stock users plus a small demo dataset.
func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "cargotrail-migrate",
		Short:        "Schema migration and seeding for the logistics database",
		SilenceUsage: true,
	}
	root.AddCommand(upCommand(), seedCommand())

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func upCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer pg.Close()

			var models []any
			models = append(models, authpostgres.Models()...)
			models = append(models, catalogpostgres.Models()...)
			models = append(models, shippingpostgres.Models()...)

			if err := pg.Migrate(models...); err != nil {
				return err
			}
			applied, err := applyForeignKeys(pg)
			if err != nil {
				return err
			}
			color.Green("schema up to date (%d models, %d foreign keys)", len(models), applied)
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed stock users and demo logistics data",
		RunE: func(cmd *cobra.Command, args []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer pg.Close()

			ctx := context.Background()
			if err := seedUsers(ctx, pg); err != nil {
				return err
			}
			if err := seedDemoData(ctx, pg); err != nil {
				return err
			}
			color.Green("seed complete")
			return nil
		},
	}
}

type schemaConstraint struct {
	name     string
	table    string
	column   string
	refTable string
}

func foreignKeyConstraints() []schemaConstraint {
	var constraints []schemaConstraint
	for _, fk := range catalogpostgres.ForeignKeys() {
		constraints = append(constraints, schemaConstraint{fk.Name, fk.Table, fk.Column, fk.RefTable})
	}
	for _, fk := range shippingpostgres.ForeignKeys() {
		constraints = append(constraints, schemaConstraint{fk.Name, fk.Table, fk.Column, fk.RefTable})
	}
	return constraints
}

// applyForeignKeys runs after AutoMigrate, which creates the reference
// columns as plain nullable integers. Drop-then-add keeps the pass
// re-runnable; the add revalidates existing rows each time.
func applyForeignKeys(pg *db.Postgres) (int, error) {
	constraints := foreignKeyConstraints()
	for _, c := range constraints {
		drop := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", c.table, c.name)
		if err := pg.DB.Exec(drop).Error; err != nil {
			return 0, fmt.Errorf("drop constraint %s: %w", c.name, err)
		}
		add := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id)",
			c.table, c.name, c.column, c.refTable)
		if err := pg.DB.Exec(add).Error; err != nil {
			return 0, fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	return len(constraints), nil
}

func connect() (*db.Postgres, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}
	return db.Connect(cfg.PostgresDSN)
}

func seedUsers(ctx context.Context, pg *db.Postgres) error {
	repo := authpostgres.NewRepository(pg.DB, nil)
	for _, user := range auth.SeedUsers() {
		_, err := repo.CreateUser(ctx, user)
		switch {
		case err == nil:
			color.Cyan("user %s created", user.Username)
		case errors.Is(err, autherrors.ErrUsernameTaken):
			color.Yellow("user %s already present, skipping", user.Username)
		default:
			return err
		}
	}
	return nil
}

func seedDemoData(ctx context.Context, pg *db.Postgres) error {
	catalogRepo := catalogpostgres.NewRepository(pg.DB, nil)
	shippingRepo := shippingpostgres.NewRepository(pg.DB, nil)

	supplier, err := catalogRepo.CreateSupplier(ctx, catalogentities.Supplier{
		Name:    "Global Electronics Inc",
		Phone:   "555-0101",
		Email:   "contact@globalelectronics.com",
		Address: "123 Tech Street",
	})
	if err != nil {
		return err
	}

	warehouse, err := catalogRepo.CreateWarehouse(ctx, catalogentities.Warehouse{
		Name:    "Central Distribution Hub",
		Address: "500 Logistics Parkway",
		City:    "Chicago",
	})
	if err != nil {
		return err
	}

	customer, err := catalogRepo.CreateCustomer(ctx, catalogentities.Customer{
		Name:        "Acme Corporation",
		Email:       "purchasing@acmecorp.com",
		Phone:       "555-0201",
		Address:     "789 Business Avenue",
		WarehouseID: &warehouse.ID,
	})
	if err != nil {
		return err
	}

	item, err := catalogRepo.CreateItem(ctx, catalogentities.Item{
		Name:        "Wireless Router",
		Weight:      decimal.NewFromFloat(1.25),
		Price:       decimal.NewFromFloat(99.90),
		WarehouseID: &warehouse.ID,
		SupplierID:  &supplier.ID,
	})
	if err != nil {
		return err
	}

	vehicle, err := shippingRepo.CreateVehicle(ctx, shippingentities.Vehicle{
		LicensePlate: "TRK-1001",
		Model:        "Volvo FH16",
		Capacity:     decimal.NewFromInt(2500),
	})
	if err != nil {
		return err
	}

	driver, err := shippingRepo.CreateDriver(ctx, shippingentities.Driver{
		Name:      "John Smith",
		License:   "DL-445566",
		Phone:     "555-0301",
		VehicleID: &vehicle.ID,
	})
	if err != nil {
		return err
	}

	_, err = shippingRepo.CreateShipment(ctx, shippingentities.Shipment{
		ItemID:       &item.ID,
		Quantity:     25,
		VehicleID:    &vehicle.ID,
		DriverID:     &driver.ID,
		CustomerID:   &customer.ID,
		ShipmentDate: time.Now().UTC().Truncate(24 * time.Hour),
		Status:       shippingentities.StatusPending,
	})
	return err
}
