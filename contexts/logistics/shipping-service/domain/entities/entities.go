package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle is a fleet unit. LicensePlate is globally unique.
type Vehicle struct {
	ID           uint
	LicensePlate string
	Model        string
	Capacity     decimal.Decimal
}

// Driver optionally holds an assigned vehicle. License is globally unique.
type Driver struct {
	ID        uint
	Name      string
	License   string
	Phone     string
	VehicleID *uint
}

// ShipmentStatus is the closed lifecycle enum of a shipment.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCancelled ShipmentStatus = "cancelled"
)

// Shipment moves a quantity of one item to one customer on one vehicle.
// All references are optional at the schema level; quantity and date are
// required.
type Shipment struct {
	ID           uint
	ItemID       *uint
	Quantity     int
	VehicleID    *uint
	DriverID     *uint
	CustomerID   *uint
	ShipmentDate time.Time
	Status       ShipmentStatus
}
