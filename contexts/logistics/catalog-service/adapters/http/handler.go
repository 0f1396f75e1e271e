package httpadapter

import (
	"context"
	"log/slog"

	"cargotrail/contexts/logistics/catalog-service/application"
	"cargotrail/contexts/logistics/catalog-service/domain/entities"
	httptransport "cargotrail/contexts/logistics/catalog-service/transport/http"
)

// Handler maps HTTP DTOs to application calls.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// Suppliers

func (h Handler) CreateSupplierHandler(ctx context.Context, request httptransport.SupplierRequest) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.CreateSupplier(ctx, supplierFromRequest(request))
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}
	return supplierToResponse(supplier), nil
}

func (h Handler) ListSuppliersHandler(ctx context.Context) ([]httptransport.SupplierResponse, error) {
	suppliers, err := h.Service.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		out = append(out, supplierToResponse(supplier))
	}
	return out, nil
}

func (h Handler) GetSupplierHandler(ctx context.Context, id uint) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.GetSupplier(ctx, id)
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}
	return supplierToResponse(supplier), nil
}

func (h Handler) UpdateSupplierHandler(ctx context.Context, id uint, request httptransport.SupplierRequest) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.UpdateSupplier(ctx, id, supplierFromRequest(request))
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}
	return supplierToResponse(supplier), nil
}

func (h Handler) DeleteSupplierHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteSupplier(ctx, id)
}

// Warehouses

func (h Handler) CreateWarehouseHandler(ctx context.Context, request httptransport.WarehouseRequest) (httptransport.WarehouseResponse, error) {
	warehouse, err := h.Service.CreateWarehouse(ctx, warehouseFromRequest(request))
	if err != nil {
		return httptransport.WarehouseResponse{}, err
	}
	return warehouseToResponse(warehouse), nil
}

func (h Handler) ListWarehousesHandler(ctx context.Context) ([]httptransport.WarehouseResponse, error) {
	warehouses, err := h.Service.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.WarehouseResponse, 0, len(warehouses))
	for _, warehouse := range warehouses {
		out = append(out, warehouseToResponse(warehouse))
	}
	return out, nil
}

func (h Handler) GetWarehouseHandler(ctx context.Context, id uint) (httptransport.WarehouseResponse, error) {
	warehouse, err := h.Service.GetWarehouse(ctx, id)
	if err != nil {
		return httptransport.WarehouseResponse{}, err
	}
	return warehouseToResponse(warehouse), nil
}

func (h Handler) UpdateWarehouseHandler(ctx context.Context, id uint, request httptransport.WarehouseRequest) (httptransport.WarehouseResponse, error) {
	warehouse, err := h.Service.UpdateWarehouse(ctx, id, warehouseFromRequest(request))
	if err != nil {
		return httptransport.WarehouseResponse{}, err
	}
	return warehouseToResponse(warehouse), nil
}

func (h Handler) DeleteWarehouseHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteWarehouse(ctx, id)
}

// Customers

func (h Handler) CreateCustomerHandler(ctx context.Context, request httptransport.CustomerRequest) (httptransport.CustomerResponse, error) {
	customer, err := h.Service.CreateCustomer(ctx, customerFromRequest(request))
	if err != nil {
		return httptransport.CustomerResponse{}, err
	}
	return customerToResponse(customer), nil
}

func (h Handler) ListCustomersHandler(ctx context.Context) ([]httptransport.CustomerResponse, error) {
	customers, err := h.Service.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, customerToResponse(customer))
	}
	return out, nil
}

func (h Handler) GetCustomerHandler(ctx context.Context, id uint) (httptransport.CustomerResponse, error) {
	customer, err := h.Service.GetCustomer(ctx, id)
	if err != nil {
		return httptransport.CustomerResponse{}, err
	}
	return customerToResponse(customer), nil
}

func (h Handler) UpdateCustomerHandler(ctx context.Context, id uint, request httptransport.CustomerRequest) (httptransport.CustomerResponse, error) {
	customer, err := h.Service.UpdateCustomer(ctx, id, customerFromRequest(request))
	if err != nil {
		return httptransport.CustomerResponse{}, err
	}
	return customerToResponse(customer), nil
}

func (h Handler) DeleteCustomerHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteCustomer(ctx, id)
}

// Items

func (h Handler) CreateItemHandler(ctx context.Context, request httptransport.ItemRequest) (httptransport.ItemResponse, error) {
	item, err := h.Service.CreateItem(ctx, itemFromRequest(request))
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return itemToResponse(item), nil
}

func (h Handler) ListItemsHandler(ctx context.Context) ([]httptransport.ItemResponse, error) {
	items, err := h.Service.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out, nil
}

func (h Handler) GetItemHandler(ctx context.Context, id uint) (httptransport.ItemResponse, error) {
	item, err := h.Service.GetItem(ctx, id)
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return itemToResponse(item), nil
}

func (h Handler) UpdateItemHandler(ctx context.Context, id uint, request httptransport.ItemRequest) (httptransport.ItemResponse, error) {
	item, err := h.Service.UpdateItem(ctx, id, itemFromRequest(request))
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return itemToResponse(item), nil
}

func (h Handler) DeleteItemHandler(ctx context.Context, id uint) error {
	return h.Service.DeleteItem(ctx, id)
}

// DTO mapping

func supplierFromRequest(r httptransport.SupplierRequest) entities.Supplier {
	return entities.Supplier{Name: r.Name, Phone: r.Phone, Email: r.Email, Address: r.Address}
}

func supplierToResponse(s entities.Supplier) httptransport.SupplierResponse {
	return httptransport.SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email, Address: s.Address}
}

func warehouseFromRequest(r httptransport.WarehouseRequest) entities.Warehouse {
	return entities.Warehouse{Name: r.Name, Address: r.Address, City: r.City}
}

func warehouseToResponse(w entities.Warehouse) httptransport.WarehouseResponse {
	return httptransport.WarehouseResponse{ID: w.ID, Name: w.Name, Address: w.Address, City: w.City}
}

func customerFromRequest(r httptransport.CustomerRequest) entities.Customer {
	return entities.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address, WarehouseID: r.WarehouseID}
}

func customerToResponse(c entities.Customer) httptransport.CustomerResponse {
	return httptransport.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address, WarehouseID: c.WarehouseID}
}

func itemFromRequest(r httptransport.ItemRequest) entities.Item {
	return entities.Item{Name: r.Name, Weight: r.Weight, Price: r.Price, WarehouseID: r.WarehouseID, SupplierID: r.SupplierID}
}

func itemToResponse(i entities.Item) httptransport.ItemResponse {
	return httptransport.ItemResponse{ID: i.ID, Name: i.Name, Weight: i.Weight, Price: i.Price, WarehouseID: i.WarehouseID, SupplierID: i.SupplierID}
}
