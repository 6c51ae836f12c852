package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stockcheck/internal/domain"
	"stockcheck/internal/errors"
)

type SnapshotStore interface {
	GetStockSnapshot(ctx context.Context, productID int) (*domain.StockSnapshot, error)
}

// AvailabilityResolver reads the stock position of a single product.
// It holds no state of its own and is safe for concurrent use.
type AvailabilityResolver struct {
	store  SnapshotStore
	logger *zap.Logger
}

func NewAvailabilityResolver(store SnapshotStore, logger *zap.Logger) *AvailabilityResolver {
	return &AvailabilityResolver{
		store:  store,
		logger: logger,
	}
}

// Resolve returns the current snapshot for productID. A product that does not
// exist yields an errors.NotFoundError; any other failure is returned wrapped.
func (r *AvailabilityResolver) Resolve(ctx context.Context, productID int) (*domain.StockSnapshot, error) {
	if productID <= 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}

	snapshot, err := r.store.GetStockSnapshot(ctx, productID)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return nil, err
		}
		r.logger.Error("failed to read stock snapshot", zap.Int("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("resolving availability for product %d: %w", productID, err)
	}

	r.logger.Debug("stock snapshot resolved",
		zap.Int("productId", productID),
		zap.Int("physicalStock", snapshot.PhysicalStock),
		zap.Int("reservedStock", snapshot.ReservedStock),
		zap.Int("availableStock", snapshot.AvailableStock()),
		zap.Int("minimumStock", snapshot.MinimumStock),
	)

	return snapshot, nil
}
