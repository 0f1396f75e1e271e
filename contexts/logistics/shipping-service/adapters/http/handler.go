package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargotrail/contexts/logistics/shipping-service/application"
	"cargotrail/contexts/logistics/shipping-service/domain/entities"
	domainerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
	httptransport "cargotrail/contexts/logistics/shipping-service/transport/http"
)

const dateLayout = "2006-01-02"

// Handler maps HTTP DTOs to application calls.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// Vehicles

func (h Handler) CreateVehicleHandler(ctx context.Context, request httptransport.VehicleRequest) (httptransport.VehicleResponse, error) {
	vehicle, err := h.Service.CreateVehicle(ctx, vehicleFromRequest(request))
	if err != nil {
		return httptransport.VehicleResponse{}, err
	}
	return vehicleToResponse(vehicle), nil
}

func (h Handler) ListVehiclesHandler(ctx context.Context) ([]httptransport.VehicleResponse, error) {
	vehicles, err := h.Service.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		out = append(out, vehicleToResponse(vehicle))
	}
	return out, nil
}

func (h Handler) GetVehicleHandler(ctx context.Context, id uint) (httptransport.VehicleResponse, error) {
	vehicle, err := h.Service.GetVehicle(ctx, id)
	if err != nil {
		return httptransport.VehicleResponse{}, err
	}
	return vehicleToResponse(vehicle), nil
}

func (h Handler) UpdateVehicleHandler(ctx context.Context, id uint, request httptransport.VehicleRequest) (httptransport.VehicleResponse, error) {
	vehicle, err := h.Service.UpdateVehicle(ctx, id, vehicleFromRequest(request))
	if err != nil {
		return httptransport.VehicleResponse{}, err
	}
	return vehicleToResponse(vehicle), nil
}

func (h Handler) DeleteVehicleHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteVehicle(ctx, id)
}

// Drivers

func (h Handler) CreateDriverHandler(ctx context.Context, request httptransport.DriverRequest) (httptransport.DriverResponse, error) {
	driver, err := h.Service.CreateDriver(ctx, driverFromRequest(request))
	if err != nil {
		return httptransport.DriverResponse{}, err
	}
	return driverToResponse(driver), nil
}

func (h Handler) ListDriversHandler(ctx context.Context) ([]httptransport.DriverResponse, error) {
	drivers, err := h.Service.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		out = append(out, driverToResponse(driver))
	}
	return out, nil
}

func (h Handler) GetDriverHandler(ctx context.Context, id uint) (httptransport.DriverResponse, error) {
	driver, err := h.Service.GetDriver(ctx, id)
	if err != nil {
		return httptransport.DriverResponse{}, err
	}
	return driverToResponse(driver), nil
}

func (h Handler) UpdateDriverHandler(ctx context.Context, id uint, request httptransport.DriverRequest) (httptransport.DriverResponse, error) {
	driver, err := h.Service.UpdateDriver(ctx, id, driverFromRequest(request))
	if err != nil {
		return httptransport.DriverResponse{}, err
	}
	return driverToResponse(driver), nil
}

func (h Handler) DeleteDriverHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteDriver(ctx, id)
}

// Shipments

func (h Handler) CreateShipmentHandler(ctx context.Context, request httptransport.ShipmentRequest) (httptransport.ShipmentResponse, error) {
	shipment, err := shipmentFromRequest(request)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	shipment, err = h.Service.CreateShipment(ctx, shipment)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentToResponse(shipment), nil
}

func (h Handler) ListShipmentsHandler(ctx context.Context) ([]httptransport.ShipmentResponse, error) {
	shipments, err := h.Service.ListShipments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.ShipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		out = append(out, shipmentToResponse(shipment))
	}
	return out, nil
}

func (h Handler) GetShipmentHandler(ctx context.Context, id uint) (httptransport.ShipmentResponse, error) {
	shipment, err := h.Service.GetShipment(ctx, id)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentToResponse(shipment), nil
}

func (h Handler) UpdateShipmentHandler(ctx context.Context, id uint, request httptransport.ShipmentRequest) (httptransport.ShipmentResponse, error) {
	shipment, err := shipmentFromRequest(request)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	shipment, err = h.Service.UpdateShipment(ctx, id, shipment)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentToResponse(shipment), nil
}

func (h Handler) DeleteShipmentHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteShipment(ctx, id)
}

// DTO mapping

func vehicleFromRequest(r httptransport.VehicleRequest) entities.Vehicle {
	return entities.Vehicle{LicensePlate: r.LicensePlate, Model: r.Model, Capacity: r.Capacity}
}

func vehicleToResponse(v entities.Vehicle) httptransport.VehicleResponse {
	return httptransport.VehicleResponse{ID: v.ID, LicensePlate: v.LicensePlate, Model: v.Model, Capacity: v.Capacity}
}

func driverFromRequest(r httptransport.DriverRequest) entities.Driver {
	return entities.Driver{Name: r.Name, License: r.License, Phone: r.Phone, VehicleID: r.VehicleID}
}

func driverToResponse(d entities.Driver) httptransport.DriverResponse {
	return httptransport.DriverResponse{ID: d.ID, Name: d.Name, License: d.License, Phone: d.Phone, VehicleID: d.VehicleID}
}

func shipmentFromRequest(r httptransport.ShipmentRequest) (entities.Shipment, error) {
	date, err := parseShipmentDate(r.ShipmentDate)
	if err != nil {
		return entities.Shipment{}, err
	}
	return entities.Shipment{
		ItemID:       r.ItemID,
		Quantity:     r.Quantity,
		VehicleID:    r.VehicleID,
		DriverID:     r.DriverID,
		CustomerID:   r.CustomerID,
		ShipmentDate: date,
		Status:       entities.ShipmentStatus(r.Status),
	}, nil
}

func shipmentToResponse(s entities.Shipment) httptransport.ShipmentResponse {
	return httptransport.ShipmentResponse{
		ID:           s.ID,
		ItemID:       s.ItemID,
		Quantity:     s.Quantity,
		VehicleID:    s.VehicleID,
		DriverID:     s.DriverID,
		CustomerID:   s.CustomerID,
		ShipmentDate: s.ShipmentDate.Format(dateLayout),
		Status:       string(s.Status),
	}
}

func parseShipmentDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if date, err := time.Parse(dateLayout, raw); err == nil {
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Time{}, fmt.Errorf("%w: shipment date must be YYYY-MM-DD or RFC 3339", domainerrors.ErrValidation)
}
