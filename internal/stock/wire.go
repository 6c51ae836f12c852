package stock

import (
	"database/sql"

	"go.uber.org/zap"

	"stockcheck/internal/infrastructure/metrics"
	"stockcheck/internal/stock/controller"
	"stockcheck/internal/stock/repository"
	"stockcheck/internal/stock/service"
	"stockcheck/internal/stock/usecase"
)

func NewModule(db *sql.DB, m *metrics.Metrics, logger *zap.Logger) *controller.StockController {
	repo := repository.NewMySQLStockRepository(db)
	resolver := service.NewAvailabilityResolver(repo, logger)
	validator := service.NewMovementValidator()

	uc := usecase.NewValidateMovementUseCase(resolver, validator, repo, m, logger)

	return controller.NewStockController(uc, logger)
}
