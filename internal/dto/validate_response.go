package dto

import (
	"time"

	"stockcheck/internal/domain"
)

type ValidationResultDTO struct {
	Valid          bool             `json:"valid"`
	ErrorCode      string           `json:"errorCode,omitempty"`
	ErrorMessage   string           `json:"errorMessage,omitempty"`
	WarningMessage string           `json:"warningMessage,omitempty"`
	Warnings       []domain.Warning `json:"warnings"`
	Suggestions    []string         `json:"suggestions"`
	AvailableStock int              `json:"availableStock"`
	ReservedStock  int              `json:"reservedStock"`
}

func NewValidationResultDTO(r domain.ValidationResult) ValidationResultDTO {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []domain.Warning{}
	}
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return ValidationResultDTO{
		Valid:          r.Valid,
		ErrorCode:      string(r.ErrorCode),
		ErrorMessage:   r.ErrorMessage,
		WarningMessage: r.WarningMessage(),
		Warnings:       warnings,
		Suggestions:    suggestions,
		AvailableStock: r.AvailableStock,
		ReservedStock:  r.ReservedStock,
	}
}

type ValidateMovementResponse struct {
	TraceID   string              `json:"traceId"`
	ProductID int                 `json:"productId"`
	Quantity  int                 `json:"quantity"`
	Direction string              `json:"direction"`
	Result    ValidationResultDTO `json:"result"`
	Timestamp time.Time           `json:"timestamp"`
}

type LineVerdictDTO struct {
	ProductID int                 `json:"productId"`
	Quantity  int                 `json:"quantity"`
	Result    ValidationResultDTO `json:"result"`
}

type ValidateBatchResponse struct {
	TraceID   string           `json:"traceId"`
	Direction string           `json:"direction"`
	Valid     bool             `json:"valid"`
	Items     []LineVerdictDTO `json:"items"`
	Timestamp time.Time        `json:"timestamp"`
}

type AvailabilityResponse struct {
	TraceID        string               `json:"traceId"`
	Snapshot       domain.StockSnapshot `json:"snapshot"`
	AvailableStock int                  `json:"availableStock"`
	Timestamp      time.Time            `json:"timestamp"`
}

type LowStockItemDTO struct {
	domain.LowStockItem
	Shortfall int `json:"shortfall"`
}

type LowStockResponse struct {
	TraceID   string            `json:"traceId"`
	Items     []LowStockItemDTO `json:"items"`
	Timestamp time.Time         `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
