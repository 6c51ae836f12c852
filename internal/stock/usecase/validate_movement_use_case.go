package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stockcheck/internal/domain"
	"stockcheck/internal/dto"
	apperrors "stockcheck/internal/errors"
	"stockcheck/internal/infrastructure/metrics"
)

type AvailabilityResolver interface {
	Resolve(ctx context.Context, productID int) (*domain.StockSnapshot, error)
}

type MovementValidator interface {
	Validate(snapshot *domain.StockSnapshot, quantity int, direction domain.Direction) domain.ValidationResult
}

type LowStockRepository interface {
	ListBelowMinimum(ctx context.Context) ([]domain.LowStockItem, error)
}

type MetricsRecorder interface {
	ObserveValidation(direction, outcome string)
	ObserveSnapshotRead(d time.Duration)
}

type ValidateMovementUseCase struct {
	resolver  AvailabilityResolver
	validator MovementValidator
	lowStock  LowStockRepository
	metrics   MetricsRecorder
	logger    *zap.Logger
}

func NewValidateMovementUseCase(
	resolver AvailabilityResolver,
	validator MovementValidator,
	lowStock LowStockRepository,
	metrics MetricsRecorder,
	logger *zap.Logger,
) *ValidateMovementUseCase {
	return &ValidateMovementUseCase{
		resolver:  resolver,
		validator: validator,
		lowStock:  lowStock,
		metrics:   metrics,
		logger:    logger,
	}
}

// Validate decides whether a movement of quantity pieces of productID may proceed.
// Business rejections are returned as a verdict; only a failure to read the
// store is returned as an error.
func (uc *ValidateMovementUseCase) Validate(
	ctx context.Context,
	productID int,
	quantity int,
	direction domain.Direction,
) (domain.ValidationResult, error) {
	logger := uc.logger.With(
		zap.Int("productId", productID),
		zap.Int("quantity", quantity),
		zap.String("direction", string(direction)),
	)

	// Non-positive quantities are rejected before touching the store.
	if quantity <= 0 {
		return uc.finish(logger, direction, uc.validator.Validate(nil, quantity, direction)), nil
	}

	start := time.Now()
	snapshot, err := uc.resolver.Resolve(ctx, productID)
	uc.metrics.ObserveSnapshotRead(time.Since(start))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			logger.Error("stock snapshot unavailable", zap.Error(err))
			return domain.ValidationResult{}, apperrors.NewInternalError("reading stock snapshot", err)
		}
	}

	return uc.finish(logger, direction, uc.validator.Validate(snapshot, quantity, direction)), nil
}

// ValidateBatch validates each line on its own, in request order. The batch is
// valid only if every line is.
func (uc *ValidateMovementUseCase) ValidateBatch(
	ctx context.Context,
	direction domain.Direction,
	lines []dto.MovementLine,
) (*dto.BatchVerdict, error) {
	uc.logger.Info("batch validation started", zap.String("direction", string(direction)), zap.Int("lineCount", len(lines)))

	verdict := &dto.BatchVerdict{
		Direction: direction,
		Valid:     true,
		Lines:     make([]dto.LineVerdict, 0, len(lines)),
	}

	for _, line := range lines {
		result, err := uc.Validate(ctx, line.ProductID, line.Quantity, direction)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			verdict.Valid = false
		}
		verdict.Lines = append(verdict.Lines, dto.LineVerdict{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Result:    result,
		})
	}

	return verdict, nil
}

// Availability returns the raw snapshot for display.
func (uc *ValidateMovementUseCase) Availability(ctx context.Context, productID int) (*domain.StockSnapshot, error) {
	snapshot, err := uc.resolver.Resolve(ctx, productID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError("reading stock snapshot", err)
	}
	return snapshot, nil
}

// LowStock lists products currently below their minimum stock.
func (uc *ValidateMovementUseCase) LowStock(ctx context.Context) ([]domain.LowStockItem, error) {
	items, err := uc.lowStock.ListBelowMinimum(ctx)
	if err != nil {
		uc.logger.Error("listing low stock failed", zap.Error(err))
		return nil, apperrors.NewInternalError("listing low stock", err)
	}
	uc.logger.Debug("low stock listed", zap.Int("count", len(items)))
	return items, nil
}

func (uc *ValidateMovementUseCase) finish(logger *zap.Logger, direction domain.Direction, result domain.ValidationResult) domain.ValidationResult {
	outcome := metrics.OutcomeValid
	switch {
	case !result.Valid:
		outcome = metrics.OutcomeRejected
		logger.Warn("movement rejected",
			zap.String("errorCode", string(result.ErrorCode)),
			zap.String("reason", result.ErrorMessage),
			zap.Int("suggestionCount", len(result.Suggestions)),
		)
	case result.HasWarnings():
		outcome = metrics.OutcomeWarning
		logger.Info("movement accepted with warnings",
			zap.Int("warningCount", len(result.Warnings)),
			zap.Int("availableStock", result.AvailableStock),
			zap.Int("reservedStock", result.ReservedStock),
		)
	default:
		logger.Info("movement accepted",
			zap.Int("availableStock", result.AvailableStock),
			zap.Int("reservedStock", result.ReservedStock),
		)
	}

	uc.metrics.ObserveValidation(string(direction), outcome)
	return result
}
