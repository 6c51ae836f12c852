package domain

import (
	"strings"
)

// Direction is the kind of stock movement being validated.
type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

// ParseDirection accepts the movement names used by the order and purchase workflows.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outbound", "sale", "shipment":
		return DirectionOutbound, true
	case "inbound", "purchase", "receipt":
		return DirectionInbound, true
	}
	return "", false
}

type ErrorCode string

const (
	ErrorInvalidQuantity   ErrorCode = "INVALID_QUANTITY"
	ErrorProductNotFound   ErrorCode = "PRODUCT_NOT_FOUND"
	ErrorInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	ErrorInvalidDirection  ErrorCode = "INVALID_DIRECTION"
)

type WarningCode string

const (
	WarnReservationConflict WarningCode = "RESERVATION_CONFLICT"
	WarnBelowMinimumStock   WarningCode = "BELOW_MINIMUM_STOCK"
	WarnQuantitySanity      WarningCode = "QUANTITY_SANITY"
)

// Warning is a non-blocking caution attached to a verdict.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// ValidationResult is the verdict for one requested movement.
// Valid is false exactly when ErrorMessage is set. Warnings and suggestions
// are append-only and keep insertion order.
type ValidationResult struct {
	Valid          bool
	ErrorCode      ErrorCode
	ErrorMessage   string
	Warnings       []Warning
	Suggestions    []string
	AvailableStock int
	ReservedStock  int
}

func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func (r *ValidationResult) SetError(code ErrorCode, message string) {
	r.Valid = false
	r.ErrorCode = code
	r.ErrorMessage = message
}

func (r *ValidationResult) AddWarning(code WarningCode, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

func (r *ValidationResult) AddSuggestion(suggestion string) {
	r.Suggestions = append(r.Suggestions, suggestion)
}

func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// WarningMessage joins every warning, oldest first, separated by a blank line.
func (r ValidationResult) WarningMessage() string {
	if len(r.Warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "\n\n")
}
