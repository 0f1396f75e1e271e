package httptransport

import "github.com/shopspring/decimal"

// Requests carry the full writable record; PUT has full-replace semantics,
// so omitted fields overwrite stored values with null/zero.

type SupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type SupplierResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type WarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type WarehouseResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type CustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	WarehouseID *uint  `json:"warehouse_id"`
}

type CustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	WarehouseID *uint  `json:"warehouse_id"`
}

type ItemRequest struct {
	Name        string          `json:"name"`
	Weight      decimal.Decimal `json:"weight"`
	Price       decimal.Decimal `json:"price"`
	WarehouseID *uint           `json:"warehouse_id"`
	SupplierID  *uint           `json:"supplier_id"`
}

type ItemResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Weight      decimal.Decimal `json:"weight"`
	Price       decimal.Decimal `json:"price"`
	WarehouseID *uint           `json:"warehouse_id"`
	SupplierID  *uint           `json:"supplier_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
