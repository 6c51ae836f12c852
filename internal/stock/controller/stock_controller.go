package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockcheck/internal/domain"
	"stockcheck/internal/dto"
	apperrors "stockcheck/internal/errors"
)

const maxBatchItems = 100

type StockUseCase interface {
	Validate(ctx context.Context, productID int, quantity int, direction domain.Direction) (domain.ValidationResult, error)
	ValidateBatch(ctx context.Context, direction domain.Direction, lines []dto.MovementLine) (*dto.BatchVerdict, error)
	Availability(ctx context.Context, productID int) (*domain.StockSnapshot, error)
	LowStock(ctx context.Context) ([]domain.LowStockItem, error)
}

type StockController struct {
	useCase StockUseCase
	logger  *zap.Logger
}

func NewStockController(useCase StockUseCase, logger *zap.Logger) *StockController {
	return &StockController{
		useCase: useCase,
		logger:  logger,
	}
}

// Routes mounts the stock endpoints on r.
func (c *StockController) Routes(r chi.Router) {
	r.Post("/stock/validate", c.ValidateMovement)
	r.Post("/stock/validate-batch", c.ValidateBatch)
	r.Get("/stock/low", c.ListLowStock)
	r.Get("/products/{productId}/availability", c.GetAvailability)
}

func (c *StockController) ValidateMovement(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ValidateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	direction, ok := domain.ParseDirection(req.Direction)
	if !ok {
		c.writeValidationError(w, traceID, "validation failed", directionDetail())
		return
	}

	result, err := c.useCase.Validate(r.Context(), req.ProductID, req.Quantity, direction)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ValidateMovementResponse{
		TraceID:   traceID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Direction: string(direction),
		Result:    dto.NewValidationResultDTO(result),
		Timestamp: time.Now().UTC(),
	})
}

func (c *StockController) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ValidateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	direction, err := c.validateBatchRequest(req)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	lines := make([]dto.MovementLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = dto.MovementLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	verdict, err := c.useCase.ValidateBatch(r.Context(), direction, lines)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	items := make([]dto.LineVerdictDTO, len(verdict.Lines))
	for i, line := range verdict.Lines {
		items[i] = dto.LineVerdictDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Result:    dto.NewValidationResultDTO(line.Result),
		}
	}

	c.writeJSON(w, http.StatusOK, dto.ValidateBatchResponse{
		TraceID:   traceID,
		Direction: string(verdict.Direction),
		Valid:     verdict.Valid,
		Items:     items,
		Timestamp: time.Now().UTC(),
	})
}

func (c *StockController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		c.writeValidationError(w, traceID, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	snapshot, err := c.useCase.Availability(r.Context(), productID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.AvailabilityResponse{
		TraceID:        traceID,
		Snapshot:       *snapshot,
		AvailableStock: snapshot.AvailableStock(),
		Timestamp:      time.Now().UTC(),
	})
}

func (c *StockController) ListLowStock(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	items, err := c.useCase.LowStock(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	out := make([]dto.LowStockItemDTO, len(items))
	for i, item := range items {
		out[i] = dto.LowStockItemDTO{LowStockItem: item, Shortfall: item.Shortfall()}
	}

	c.writeJSON(w, http.StatusOK, dto.LowStockResponse{
		TraceID:   traceID,
		Items:     out,
		Timestamp: time.Now().UTC(),
	})
}

func (c *StockController) validateBatchRequest(req dto.ValidateBatchRequest) (domain.Direction, error) {
	var details []apperrors.ValidationDetail

	direction, ok := domain.ParseDirection(req.Direction)
	if !ok {
		details = append(details, directionDetail())
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if len(req.Items) > maxBatchItems {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items exceeds maximum of " + strconv.Itoa(maxBatchItems),
		})
	}

	if len(details) > 0 {
		return "", apperrors.NewValidationError("validation failed", details...)
	}

	return direction, nil
}

func directionDetail() apperrors.ValidationDetail {
	return apperrors.ValidationDetail{
		Field:   "direction",
		Message: "direction must be one of outbound, sale, inbound, purchase",
	}
}

func (c *StockController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *StockController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *StockController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *StockController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
