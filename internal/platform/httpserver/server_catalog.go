package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authapp "cargotrail/contexts/identity-access/auth-service/application"
	catalogerrors "cargotrail/contexts/logistics/catalog-service/domain/errors"
	cataloghttp "cargotrail/contexts/logistics/catalog-service/transport/http"
)

// Suppliers

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.CreateSupplierHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListSuppliersHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.catalog.Handler.GetSupplierHandler(r.Context(), id)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req cataloghttp.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.UpdateSupplierHandler(r.Context(), id, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpSupplierDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.catalog.Handler.DeleteSupplierHandler(r.Context(), id); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cataloghttp.MessageResponse{Message: "Supplier deleted successfully"})
}

// Warehouses

func (s *Server) handleCreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.CreateWarehouseHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListWarehouses(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListWarehousesHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.catalog.Handler.GetWarehouseHandler(r.Context(), id)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req cataloghttp.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.UpdateWarehouseHandler(r.Context(), id, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpWarehouseDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.catalog.Handler.DeleteWarehouseHandler(r.Context(), id); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cataloghttp.MessageResponse{Message: "Warehouse deleted successfully"})
}

// Customers

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.CreateCustomerHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListCustomersHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.catalog.Handler.GetCustomerHandler(r.Context(), id)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req cataloghttp.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.UpdateCustomerHandler(r.Context(), id, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpCustomerDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.catalog.Handler.DeleteCustomerHandler(r.Context(), id); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cataloghttp.MessageResponse{Message: "Customer deleted successfully"})
}

// Items

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.CreateItemHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListItemsHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	resp, err := s.catalog.Handler.GetItemHandler(r.Context(), id)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	var req cataloghttp.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.catalog.Handler.UpdateItemHandler(r.Context(), id, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.authorizeDelete(r, authapp.OpItemDelete); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeInvalidID(w)
		return
	}
	if err := s.catalog.Handler.DeleteItemHandler(r.Context(), id); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cataloghttp.MessageResponse{Message: "Item deleted successfully"})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrInUse):
		writeError(w, http.StatusBadRequest, "record_in_use", err.Error())
	case errors.Is(err, catalogerrors.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, catalogerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", "store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
