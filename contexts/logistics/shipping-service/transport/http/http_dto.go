package httptransport

import "github.com/shopspring/decimal"

// Requests carry the full writable record; PUT has full-replace semantics,
// so omitted fields overwrite stored values with null/zero.

type VehicleRequest struct {
	LicensePlate string          `json:"license_plate"`
	Model        string          `json:"model"`
	Capacity     decimal.Decimal `json:"capacity"`
}

type VehicleResponse struct {
	ID           uint            `json:"id"`
	LicensePlate string          `json:"license_plate"`
	Model        string          `json:"model"`
	Capacity     decimal.Decimal `json:"capacity"`
}

type DriverRequest struct {
	Name      string `json:"name"`
	License   string `json:"license"`
	Phone     string `json:"phone"`
	VehicleID *uint  `json:"vehicle_id"`
}

type DriverResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	License   string `json:"license"`
	Phone     string `json:"phone"`
	VehicleID *uint  `json:"vehicle_id"`
}

// ShipmentDate accepts either a plain calendar date (2025-03-01) or an
// RFC 3339 timestamp; responses always render the plain date.
type ShipmentRequest struct {
	ItemID       *uint  `json:"item_id"`
	Quantity     int    `json:"quantity"`
	VehicleID    *uint  `json:"vehicle_id"`
	DriverID     *uint  `json:"driver_id"`
	CustomerID   *uint  `json:"customer_id"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

type ShipmentResponse struct {
	ID           uint   `json:"id"`
	ItemID       *uint  `json:"item_id"`
	Quantity     int    `json:"quantity"`
	VehicleID    *uint  `json:"vehicle_id"`
	DriverID     *uint  `json:"driver_id"`
	CustomerID   *uint  `json:"customer_id"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
