package service

import (
	"fmt"

	"stockcheck/internal/domain"
)

const (
	// criticalStockRatio is the fraction of minimum stock below which a
	// remaining quantity is treated as critical.
	criticalStockRatio = 0.10

	// inboundSanityLimit flags receipts large enough to be a typo.
	inboundSanityLimit = 10000
)

const (
	msgInvalidQuantity  = "quantity must be greater than zero"
	msgProductNotFound  = "product not found"
	msgInvalidDirection = "unsupported movement direction"
)

// MovementValidator turns a stock snapshot and a requested movement into a verdict.
// It performs no I/O and keeps no state, so the same inputs always produce the
// same result.
type MovementValidator struct{}

func NewMovementValidator() *MovementValidator {
	return &MovementValidator{}
}

// Validate checks a movement of quantity pieces in the given direction.
// A nil snapshot means the product could not be resolved.
func (v *MovementValidator) Validate(snapshot *domain.StockSnapshot, quantity int, direction domain.Direction) domain.ValidationResult {
	result := domain.NewValidationResult()

	if quantity <= 0 {
		result.SetError(domain.ErrorInvalidQuantity, msgInvalidQuantity)
		return result
	}

	if snapshot == nil {
		result.SetError(domain.ErrorProductNotFound, msgProductNotFound)
		return result
	}

	result.AvailableStock = snapshot.AvailableStock()
	result.ReservedStock = snapshot.ReservedStock

	switch direction {
	case domain.DirectionOutbound:
		v.validateOutbound(&result, snapshot, quantity)
	case domain.DirectionInbound:
		v.validateInbound(&result, snapshot, quantity)
	default:
		result.SetError(domain.ErrorInvalidDirection, msgInvalidDirection)
	}

	return result
}

func (v *MovementValidator) validateOutbound(result *domain.ValidationResult, s *domain.StockSnapshot, quantity int) {
	label := productLabel(s)
	available := s.AvailableStock()
	supplier, hasSupplier := s.PreferredSupplier()

	if quantity > s.PhysicalStock {
		result.SetError(domain.ErrorInsufficientStock, fmt.Sprintf(
			"Insufficient stock for %s: requested %d, physical stock %d, reserved %d",
			label, quantity, s.PhysicalStock, s.ReservedStock,
		))

		if s.PhysicalStock > 0 {
			result.AddSuggestion(fmt.Sprintf("Fulfill %d pieces now and deliver the rest later", s.PhysicalStock))
		}
		if s.ReservedStock > 0 {
			result.AddSuggestion(fmt.Sprintf("Release %d reserved pieces from other open orders", s.ReservedStock))
		}
		if s.ReorderQuantity > 0 && hasSupplier {
			result.AddSuggestion(fmt.Sprintf("Order %d pieces from %s", s.ReorderQuantity, supplier))
		} else {
			result.AddSuggestion("Check available suppliers")
		}
		result.AddSuggestion("Check incoming supplier orders")
		return
	}

	if quantity > available && s.ReservedStock > 0 {
		conflict := quantity - available
		result.AddWarning(domain.WarnReservationConflict, fmt.Sprintf(
			"%d of the %d requested pieces of %s are already reserved for other orders (free: %d, reserved: %d)",
			conflict, quantity, label, available, s.ReservedStock,
		))
		result.AddSuggestion("Review pending orders")
		result.AddSuggestion("Consider splitting the shipment")
	}

	stockAfter := s.PhysicalStock - quantity
	if s.HasMinimumStockPolicy() && stockAfter < s.MinimumStock {
		result.AddWarning(domain.WarnBelowMinimumStock, fmt.Sprintf(
			"After this movement %s drops to %d pieces, %d below the minimum stock of %d",
			label, stockAfter, s.MinimumStock-stockAfter, s.MinimumStock,
		))
		if s.ReorderQuantity > 0 {
			result.AddSuggestion(fmt.Sprintf("Schedule a reorder of %d pieces", s.ReorderQuantity))
		}
		if hasSupplier {
			result.AddSuggestion(fmt.Sprintf("Contact %s urgently", supplier))
		}
	}

	if s.HasMinimumStockPolicy() && stockAfter > 0 && float64(stockAfter) < criticalStockRatio*float64(s.MinimumStock) {
		result.AddSuggestion(fmt.Sprintf("CRITICAL STOCK: reorder %s immediately", label))
	}
}

func (v *MovementValidator) validateInbound(result *domain.ValidationResult, s *domain.StockSnapshot, quantity int) {
	label := productLabel(s)

	if quantity > inboundSanityLimit {
		result.AddWarning(domain.WarnQuantitySanity, fmt.Sprintf(
			"Unusually large receipt of %d pieces for %s, please double-check the quantity",
			quantity, label,
		))
	}

	if s.HasMinimumStockPolicy() && s.PhysicalStock < s.MinimumStock && s.PhysicalStock+quantity >= s.MinimumStock {
		result.AddSuggestion(fmt.Sprintf("This receipt brings %s back above minimum stock (%d)", label, s.MinimumStock))
	}

	if s.PhysicalStock == 0 {
		result.AddSuggestion(fmt.Sprintf("%s will be back in stock", label))
	}
}

func productLabel(s *domain.StockSnapshot) string {
	name := s.ProductName
	if name == "" {
		name = fmt.Sprintf("product %d", s.ProductID)
	}
	if s.ProductCode == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, s.ProductCode)
}
