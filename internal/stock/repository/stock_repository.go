package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockcheck/internal/domain"
	"stockcheck/internal/errors"
)

// Reserved stock is aggregated in the same statement as the product and policy
// read, so the snapshot reflects a single point in time.
const snapshotQuery = `
	SELECT p.id AS product_id,
	       COALESCE(p.name, '') AS product_name,
	       COALESCE(p.code, '') AS product_code,
	       COALESCE(p.stock, 0) AS physical_stock,
	       CAST(COALESCE((
	           SELECT SUM(oi.quantity)
	           FROM OrderItems oi
	           JOIN Orders o ON o.id = oi.orderId
	           WHERE oi.productId = p.id
	             AND o.status IN (?)
	       ), 0) AS SIGNED) AS reserved_stock,
	       COALESCE(ms.minimumStock, 0) AS minimum_stock,
	       COALESCE(ms.reorderQuantity, 0) AS reorder_quantity,
	       s.name AS preferred_supplier_name
	FROM Product p
	LEFT JOIN MinimumStock ms ON ms.productId = p.id
	LEFT JOIN Suppliers s ON s.id = ms.preferredSupplierId
	WHERE p.id = ?
	  AND p.isDeleted = 0`

const belowMinimumQuery = `
	SELECT p.id AS product_id,
	       COALESCE(p.name, '') AS product_name,
	       COALESCE(p.code, '') AS product_code,
	       COALESCE(p.stock, 0) AS physical_stock,
	       ms.minimumStock AS minimum_stock,
	       ms.reorderQuantity AS reorder_quantity,
	       s.name AS preferred_supplier_name
	FROM MinimumStock ms
	JOIN Product p ON p.id = ms.productId
	LEFT JOIN Suppliers s ON s.id = ms.preferredSupplierId
	WHERE p.isDeleted = 0
	  AND ms.minimumStock > 0
	  AND COALESCE(p.stock, 0) < ms.minimumStock
	ORDER BY (ms.minimumStock - COALESCE(p.stock, 0)) DESC, p.id ASC`

type MySQLStockRepository struct {
	db *sqlx.DB
}

func NewMySQLStockRepository(db *sql.DB) *MySQLStockRepository {
	return &MySQLStockRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *MySQLStockRepository) GetStockSnapshot(ctx context.Context, productID int) (*domain.StockSnapshot, error) {
	open := domain.OpenOrderStatuses()
	statuses := make([]string, len(open))
	for i, st := range open {
		statuses[i] = string(st)
	}

	query, args, err := sqlx.In(snapshotQuery, statuses, productID)
	if err != nil {
		return nil, fmt.Errorf("building snapshot query: %w", err)
	}

	var snapshot domain.StockSnapshot
	err = r.db.GetContext(ctx, &snapshot, r.db.Rebind(query), args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying stock snapshot: %w", err)
	}

	return &snapshot, nil
}

func (r *MySQLStockRepository) ListBelowMinimum(ctx context.Context) ([]domain.LowStockItem, error) {
	items := []domain.LowStockItem{}
	if err := r.db.SelectContext(ctx, &items, belowMinimumQuery); err != nil {
		return nil, fmt.Errorf("querying products below minimum stock: %w", err)
	}
	return items, nil
}
