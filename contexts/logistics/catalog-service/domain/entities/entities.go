package entities

import "github.com/shopspring/decimal"

// Supplier is a goods source. Referenced by items.
type Supplier struct {
	ID      uint
	Name    string
	Phone   string
	Email   string
	Address string
}

// Warehouse is a storage location. Referenced by customers and items.
type Warehouse struct {
	ID      uint
	Name    string
	Address string
	City    string
}

// Customer optionally belongs to a serving warehouse.
type Customer struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	Address     string
	WarehouseID *uint
}

// Item carries weight and price as fixed-precision decimals. Optional refs
// point at the holding warehouse and the sourcing supplier.
type Item struct {
	ID          uint
	Name        string
	Weight      decimal.Decimal
	Price       decimal.Decimal
	WarehouseID *uint
	SupplierID  *uint
}
