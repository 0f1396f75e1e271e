package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authapp "cargotrail/contexts/identity-access/auth-service/application"
	shippingerrors "cargotrail/contexts/logistics/shipping-service/domain/errors"
	shippinghttp "cargotrail/contexts/logistics/shipping-service/transport/http"
)

// Vehicles

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req shippinghttp.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.CreateVehicleHandler(r.Context(), req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.shipping.Handler.ListVehiclesHandler(r.Context())
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.shipping.Handler.GetVehicleHandler(r.Context(), id)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req shippinghttp.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.UpdateVehicleHandler(r.Context(), id, req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpVehicleDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.shipping.Handler.DeleteVehicleHandler(r.Context(), id); err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shippinghttp.MessageResponse{Message: "Vehicle deleted successfully"})
}

// Drivers

func (s *Server) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	var req shippinghttp.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.CreateDriverHandler(r.Context(), req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.shipping.Handler.ListDriversHandler(r.Context())
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.shipping.Handler.GetDriverHandler(r.Context(), id)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req shippinghttp.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.UpdateDriverHandler(r.Context(), id, req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpDriverDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.shipping.Handler.DeleteDriverHandler(r.Context(), id); err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shippinghttp.MessageResponse{Message: "Driver deleted successfully"})
}

// Shipments

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	var req shippinghttp.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.CreateShipmentHandler(r.Context(), req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.shipping.Handler.ListShipmentsHandler(r.Context())
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.shipping.Handler.GetShipmentHandler(r.Context(), id)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req shippinghttp.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.shipping.Handler.UpdateShipmentHandler(r.Context(), id, req)
	if err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteShipment(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpShipmentDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.shipping.Handler.DeleteShipmentHandler(r.Context(), id); err != nil {
		writeShippingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shippinghttp.MessageResponse{Message: "Shipment deleted successfully"})
}

func writeShippingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shippingerrors.ErrInUse):
		writeError(w, http.StatusBadRequest, "record_in_use", err.Error())
	case errors.Is(err, shippingerrors.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, shippingerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, shippingerrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", "store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
