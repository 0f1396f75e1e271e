package services

import "cargotrail/contexts/logistics/shipping-service/domain/entities"

// IsValidStatus reports whether s belongs to the closed shipment status enum.
func IsValidStatus(s entities.ShipmentStatus) bool {
	switch s {
	case entities.StatusPending, entities.StatusInTransit,
		entities.StatusDelivered, entities.StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
func IsTerminal(s entities.ShipmentStatus) bool {
	return s == entities.StatusDelivered || s == entities.StatusCancelled
}

// CanTransition reports whether the strict forward policy allows moving a
// shipment from one status to another. Keeping the current status is always
// allowed; cancellation is reachable from pending and in_transit only.
func CanTransition(from, to entities.ShipmentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case entities.StatusPending:
		return to == entities.StatusInTransit || to == entities.StatusCancelled
	case entities.StatusInTransit:
		return to == entities.StatusDelivered || to == entities.StatusCancelled
	default:
		return false
	}
}
