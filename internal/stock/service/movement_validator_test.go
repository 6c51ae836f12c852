package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockcheck/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func snapshot(physical, reserved, minimum, reorder int, supplier string) *domain.StockSnapshot {
	s := &domain.StockSnapshot{
		ProductID:       1,
		ProductName:     "Widget",
		ProductCode:     "W-1",
		PhysicalStock:   physical,
		ReservedStock:   reserved,
		MinimumStock:    minimum,
		ReorderQuantity: reorder,
	}
	if supplier != "" {
		s.PreferredSupplierName = strPtr(supplier)
	}
	return s
}

func assertConsistent(t *testing.T, r domain.ValidationResult) {
	t.Helper()
	assert.Equal(t, r.ErrorMessage == "", r.Valid, "valid must be false exactly when an error is set")
}

func TestValidate_NonPositiveQuantity(t *testing.T) {
	v := NewMovementValidator()

	for _, dir := range []domain.Direction{domain.DirectionOutbound, domain.DirectionInbound} {
		for _, qty := range []int{0, -1, -500} {
			t.Run(fmt.Sprintf("%s/%d", dir, qty), func(t *testing.T) {
				r := v.Validate(snapshot(10, 0, 0, 0, ""), qty, dir)

				assert.False(t, r.Valid)
				assert.Equal(t, domain.ErrorInvalidQuantity, r.ErrorCode)
				assert.Equal(t, "quantity must be greater than zero", r.ErrorMessage)
				assert.Empty(t, r.Warnings)
				assert.Empty(t, r.Suggestions)
				assertConsistent(t, r)
			})
		}
	}
}

func TestValidate_QuantityCheckedBeforeProduct(t *testing.T) {
	r := NewMovementValidator().Validate(nil, 0, domain.DirectionOutbound)

	assert.Equal(t, domain.ErrorInvalidQuantity, r.ErrorCode)
}

func TestValidate_ProductNotFound(t *testing.T) {
	r := NewMovementValidator().Validate(nil, 5, domain.DirectionInbound)

	assert.False(t, r.Valid)
	assert.Equal(t, domain.ErrorProductNotFound, r.ErrorCode)
	assert.Equal(t, "product not found", r.ErrorMessage)
	assert.Empty(t, r.Suggestions)
}

func TestValidate_UnknownDirection(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(10, 0, 0, 0, ""), 1, domain.Direction("transfer"))

	assert.False(t, r.Valid)
	assert.Equal(t, domain.ErrorInvalidDirection, r.ErrorCode)
}

// Scenario A
func TestValidateOutbound_CleanPass(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(10, 0, 0, 0, ""), 5, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	assert.Empty(t, r.ErrorMessage)
	assert.Empty(t, r.WarningMessage())
	assert.Empty(t, r.Suggestions)
	assert.Equal(t, 10, r.AvailableStock)
	assert.Equal(t, 0, r.ReservedStock)
}

// Scenario B
func TestValidateOutbound_ReservationConflict(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(10, 4, 0, 0, ""), 8, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, domain.WarnReservationConflict, r.Warnings[0].Code)
	assert.Contains(t, r.Warnings[0].Message, "2 of the 8 requested pieces")
	assert.Contains(t, r.Warnings[0].Message, "free: 6")
	assert.Contains(t, r.Warnings[0].Message, "reserved: 4")
	assert.Equal(t, []string{"Review pending orders", "Consider splitting the shipment"}, r.Suggestions)
	assert.Equal(t, 6, r.AvailableStock)
	assert.Equal(t, 4, r.ReservedStock)
}

// Scenario C
func TestValidateOutbound_InsufficientStock(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(5, 0, 0, 0, ""), 9, domain.DirectionOutbound)

	assert.False(t, r.Valid)
	assert.Equal(t, domain.ErrorInsufficientStock, r.ErrorCode)
	assert.Contains(t, r.ErrorMessage, "Widget (W-1)")
	assert.Contains(t, r.ErrorMessage, "requested 9")
	assert.Contains(t, r.ErrorMessage, "physical stock 5")
	assert.Contains(t, r.ErrorMessage, "reserved 0")
	assert.Equal(t, []string{
		"Fulfill 5 pieces now and deliver the rest later",
		"Check available suppliers",
		"Check incoming supplier orders",
	}, r.Suggestions)
	assertConsistent(t, r)
}

func TestValidateOutbound_InsufficientStock_AllSuggestions(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(5, 3, 20, 50, "Acme"), 9, domain.DirectionOutbound)

	assert.False(t, r.Valid)
	assert.Equal(t, []string{
		"Fulfill 5 pieces now and deliver the rest later",
		"Release 3 reserved pieces from other open orders",
		"Order 50 pieces from Acme",
		"Check incoming supplier orders",
	}, r.Suggestions)
	assert.Empty(t, r.Warnings, "a rejected movement carries no downstream warnings")
}

func TestValidateOutbound_InsufficientStock_EmptyShelf(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(0, 0, 0, 30, ""), 1, domain.DirectionOutbound)

	assert.False(t, r.Valid)
	assert.Equal(t, []string{
		"Check available suppliers",
		"Check incoming supplier orders",
	}, r.Suggestions, "reorder suggestion needs a known supplier")
}

// Scenario D
func TestValidateOutbound_BelowMinimumStock(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(100, 0, 20, 50, "Acme"), 85, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, domain.WarnBelowMinimumStock, r.Warnings[0].Code)
	assert.Contains(t, r.Warnings[0].Message, "drops to 15 pieces")
	assert.Equal(t, []string{
		"Schedule a reorder of 50 pieces",
		"Contact Acme urgently",
	}, r.Suggestions)
}

func TestValidateOutbound_ConflictAndMinimumWarningsAccumulate(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(10, 4, 5, 0, ""), 8, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 2)
	assert.Equal(t, domain.WarnReservationConflict, r.Warnings[0].Code)
	assert.Equal(t, domain.WarnBelowMinimumStock, r.Warnings[1].Code)

	parts := strings.Split(r.WarningMessage(), "\n\n")
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "2 of the 8 requested pieces")
	assert.Contains(t, parts[1], "drops to 2 pieces")
}

func TestValidateOutbound_CriticalStock(t *testing.T) {
	// 100 - 96 = 4 remaining, below 10% of 50
	r := NewMovementValidator().Validate(snapshot(100, 0, 50, 80, "Acme"), 96, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	assert.Equal(t, []string{
		"Schedule a reorder of 80 pieces",
		"Contact Acme urgently",
		"CRITICAL STOCK: reorder Widget (W-1) immediately",
	}, r.Suggestions)
}

func TestValidateOutbound_CriticalStockBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		critical bool
	}{
		{"exactly ten percent left", 95, false},
		{"just under ten percent", 96, true},
		{"nothing left", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMovementValidator().Validate(snapshot(100, 0, 50, 0, ""), tt.quantity, domain.DirectionOutbound)

			critical := false
			for _, s := range r.Suggestions {
				if strings.HasPrefix(s, "CRITICAL STOCK") {
					critical = true
				}
			}
			assert.Equal(t, tt.critical, critical)
			assert.True(t, r.Valid)
		})
	}
}

func TestValidateOutbound_OverReservedStock(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(3, 8, 0, 0, ""), 2, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	assert.Equal(t, 0, r.AvailableStock)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0].Message, "2 of the 2 requested pieces")
}

func TestValidateOutbound_ExactPhysicalStockIsAllowed(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(7, 0, 0, 0, ""), 7, domain.DirectionOutbound)

	assert.True(t, r.Valid)
	assert.Empty(t, r.Warnings)
}

func TestValidateOutbound_ErrorContainsValuesProperty(t *testing.T) {
	v := NewMovementValidator()
	for physical := 0; physical <= 6; physical++ {
		for reserved := 0; reserved <= 6; reserved++ {
			qty := physical + 1 + reserved
			r := v.Validate(snapshot(physical, reserved, 0, 0, ""), qty, domain.DirectionOutbound)

			assert.False(t, r.Valid)
			assert.Contains(t, r.ErrorMessage, fmt.Sprintf("requested %d", qty))
			assert.Contains(t, r.ErrorMessage, fmt.Sprintf("physical stock %d", physical))
			assert.Contains(t, r.ErrorMessage, fmt.Sprintf("reserved %d", reserved))
			assertConsistent(t, r)
		}
	}
}

func TestValidateInbound_CleanPass(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(40, 5, 10, 0, ""), 20, domain.DirectionInbound)

	assert.True(t, r.Valid)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Suggestions)
	assert.Equal(t, 35, r.AvailableStock)
}

// Scenario E
func TestValidateInbound_RestoresStock(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(0, 0, 10, 0, ""), 15, domain.DirectionInbound)

	assert.True(t, r.Valid)
	assert.Equal(t, []string{
		"This receipt brings Widget (W-1) back above minimum stock (10)",
		"Widget (W-1) will be back in stock",
	}, r.Suggestions)
}

func TestValidateInbound_NotEnoughToRestoreMinimum(t *testing.T) {
	r := NewMovementValidator().Validate(snapshot(2, 0, 10, 0, ""), 5, domain.DirectionInbound)

	assert.True(t, r.Valid)
	assert.Empty(t, r.Suggestions)
}

func TestValidateInbound_SanityBound(t *testing.T) {
	v := NewMovementValidator()

	r := v.Validate(snapshot(10, 0, 0, 0, ""), 10000, domain.DirectionInbound)
	assert.Empty(t, r.Warnings)

	r = v.Validate(snapshot(10, 0, 0, 0, ""), 10001, domain.DirectionInbound)
	assert.True(t, r.Valid, "inbound movements are never blocked")
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, domain.WarnQuantitySanity, r.Warnings[0].Code)
	assert.Contains(t, r.Warnings[0].Message, "10001")
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewMovementValidator()
	s := snapshot(10, 4, 5, 20, "Acme")

	first := v.Validate(s, 8, domain.DirectionOutbound)
	second := v.Validate(s, 8, domain.DirectionOutbound)

	assert.Equal(t, first, second)
	assert.Equal(t, 10, s.PhysicalStock, "snapshot is not mutated")
}

func TestProductLabel(t *testing.T) {
	assert.Equal(t, "Widget (W-1)", productLabel(&domain.StockSnapshot{ProductName: "Widget", ProductCode: "W-1"}))
	assert.Equal(t, "Widget", productLabel(&domain.StockSnapshot{ProductName: "Widget"}))
	assert.Equal(t, "product 4", productLabel(&domain.StockSnapshot{ProductID: 4}))
}
