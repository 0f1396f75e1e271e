package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	auth "cargotrail/contexts/identity-access/auth-service"
	catalog "cargotrail/contexts/logistics/catalog-service"
	shipping "cargotrail/contexts/logistics/shipping-service"

	_ "cargotrail/internal/platform/httpserver/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux      *http.ServeMux
	handler  http.Handler
	logger   *slog.Logger
	addr     string
	auth     auth.Module
	catalog  catalog.Module
	shipping shipping.Module
}

func New(
	authModule auth.Module,
	catalogModule catalog.Module,
	shippingModule shipping.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		auth:     authModule,
		catalog:  catalogModule,
		shipping: shippingModule,
	}
	s.registerRoutes()
	s.handler = withRequestID(s.mux)
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler)
}

// Handler exposes the routed handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /", s.handleRoot)

	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	s.mux.HandleFunc("POST /api/suppliers", s.handleCreateSupplier)
	s.mux.HandleFunc("GET /api/suppliers", s.handleListSuppliers)
	s.mux.HandleFunc("GET /api/suppliers/{id}", s.handleGetSupplier)
	s.mux.HandleFunc("PUT /api/suppliers/{id}", s.handleUpdateSupplier)
	s.mux.HandleFunc("DELETE /api/suppliers/{id}", s.handleDeleteSupplier)

	s.mux.HandleFunc("POST /api/warehouses", s.handleCreateWarehouse)
	s.mux.HandleFunc("GET /api/warehouses", s.handleListWarehouses)
	s.mux.HandleFunc("GET /api/warehouses/{id}", s.handleGetWarehouse)
	s.mux.HandleFunc("PUT /api/warehouses/{id}", s.handleUpdateWarehouse)
	s.mux.HandleFunc("DELETE /api/warehouses/{id}", s.handleDeleteWarehouse)

	s.mux.HandleFunc("POST /api/customers", s.handleCreateCustomer)
	s.mux.HandleFunc("GET /api/customers", s.handleListCustomers)
	s.mux.HandleFunc("GET /api/customers/{id}", s.handleGetCustomer)
	s.mux.HandleFunc("PUT /api/customers/{id}", s.handleUpdateCustomer)
	s.mux.HandleFunc("DELETE /api/customers/{id}", s.handleDeleteCustomer)

	s.mux.HandleFunc("POST /api/items", s.handleCreateItem)
	s.mux.HandleFunc("GET /api/items", s.handleListItems)
	s.mux.HandleFunc("GET /api/items/{id}", s.handleGetItem)
	s.mux.HandleFunc("PUT /api/items/{id}", s.handleUpdateItem)
	s.mux.HandleFunc("DELETE /api/items/{id}", s.handleDeleteItem)

	s.mux.HandleFunc("POST /api/vehicles", s.handleCreateVehicle)
	s.mux.HandleFunc("GET /api/vehicles", s.handleListVehicles)
	s.mux.HandleFunc("GET /api/vehicles/{id}", s.handleGetVehicle)
	s.mux.HandleFunc("PUT /api/vehicles/{id}", s.handleUpdateVehicle)
	s.mux.HandleFunc("DELETE /api/vehicles/{id}", s.handleDeleteVehicle)

	s.mux.HandleFunc("POST /api/drivers", s.handleCreateDriver)
	s.mux.HandleFunc("GET /api/drivers", s.handleListDrivers)
	s.mux.HandleFunc("GET /api/drivers/{id}", s.handleGetDriver)
	s.mux.HandleFunc("PUT /api/drivers/{id}", s.handleUpdateDriver)
	s.mux.HandleFunc("DELETE /api/drivers/{id}", s.handleDeleteDriver)

	s.mux.HandleFunc("POST /api/shipments", s.handleCreateShipment)
	s.mux.HandleFunc("GET /api/shipments", s.handleListShipments)
	s.mux.HandleFunc("GET /api/shipments/{id}", s.handleGetShipment)
	s.mux.HandleFunc("PUT /api/shipments/{id}", s.handleUpdateShipment)
	s.mux.HandleFunc("DELETE /api/shipments/{id}", s.handleDeleteShipment)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logistics Management API is running"})
}

func parseID(r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func writeInvalidID(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
