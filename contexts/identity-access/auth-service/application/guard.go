package application

import (
	"fmt"

	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	"cargotrail/contexts/identity-access/auth-service/ports"
)

// Operation identifies a gated API operation in the policy table.
type Operation string

const (
	OpSupplierDelete  Operation = "suppliers.delete"
	OpWarehouseDelete Operation = "warehouses.delete"
	OpCustomerDelete  Operation = "customers.delete"
	OpItemDelete      Operation = "items.delete"
	OpVehicleDelete   Operation = "vehicles.delete"
	OpDriverDelete    Operation = "drivers.delete"
	OpShipmentDelete  Operation = "shipments.delete"
)

// Guard is the access policy gate. Policy is a declarative operation->roles
// table; operations without an entry are ungated. Creates, reads, and updates
// carry no entry in the baseline policy, deletes require admin or manager.
type Guard struct {
	required map[Operation][]string
}

func NewGuard() Guard {
	deleteRoles := []string{ports.RoleAdmin, ports.RoleManager}
	return Guard{required: map[Operation][]string{
		OpSupplierDelete:  deleteRoles,
		OpWarehouseDelete: deleteRoles,
		OpCustomerDelete:  deleteRoles,
		OpItemDelete:      deleteRoles,
		OpVehicleDelete:   deleteRoles,
		OpDriverDelete:    deleteRoles,
		OpShipmentDelete:  deleteRoles,
	}}
}

func (g Guard) Authorize(claims ports.Claims, op Operation) error {
	roles, gated := g.required[op]
	if !gated {
		return nil
	}
	for _, role := range roles {
		if claims.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: admin or manager role required", domainerrors.ErrForbidden)
}
