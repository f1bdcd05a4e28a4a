package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID generado.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (product_id, user_id, movement_type, quantity, reason, price_per_unit, total_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.UserID, movement.Type, movement.Quantity,
		movement.Reason, movement.PricePerUnit, movement.TotalValue, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", wrapConnError(err))
	}
	return nil
}

const movementDetailSelect = `
	SELECT m.id, m.product_id, m.user_id, m.movement_type, m.quantity, m.reason,
	       m.price_per_unit, m.total_value, m.created_at,
	       p.name AS product_name, p.sku AS product_sku, u.username, c.name AS category_name
	FROM inventory_movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id
	LEFT JOIN categories c ON c.id = p.category_id`

// GetDetailByID obtiene un movimiento con campos de presentación.
func (r *MovementRepo) GetDetailByID(ctx context.Context, id int64) (*repository.MovementDetail, error) {
	var d repository.MovementDetail
	err := r.q.QueryRow(ctx, movementDetailSelect+` WHERE m.id = $1`, id).Scan(
		&d.ID, &d.ProductID, &d.UserID, &d.Type, &d.Quantity, &d.Reason,
		&d.PricePerUnit, &d.TotalValue, &d.CreatedAt,
		&d.ProductName, &d.ProductSKU, &d.Username, &d.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", wrapConnError(err))
	}
	return &d, nil
}

// List lista movimientos filtrados, del más reciente al más antiguo.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]repository.MovementDetail, error) {
	query := movementDetailSelect
	where, args := movementFilters(filter)
	query += where
	query += fmt.Sprintf(" ORDER BY m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", wrapConnError(err))
	}
	defer rows.Close()
	var list []repository.MovementDetail
	for rows.Next() {
		var d repository.MovementDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.UserID, &d.Type, &d.Quantity, &d.Reason,
			&d.PricePerUnit, &d.TotalValue, &d.CreatedAt,
			&d.ProductName, &d.ProductSKU, &d.Username, &d.CategoryName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count cuenta los movimientos que cumplen los mismos filtros del listado.
func (r *MovementRepo) Count(ctx context.Context, filter repository.MovementFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM inventory_movements m`
	where, args := movementFilters(filter)
	query += where
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", wrapConnError(err))
	}
	return total, nil
}

// CountByProduct cuenta los movimientos de un producto (guarda de borrado).
func (r *MovementRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_movements WHERE product_id = $1`, productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count by product: %w", wrapConnError(err))
	}
	return total, nil
}

// movementFilters construye el WHERE dinámico compartido entre List y Count.
// From es inclusivo, To exclusivo.
func movementFilters(filter repository.MovementFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any
	if filter.ProductID != nil {
		where += fmt.Sprintf(" AND m.product_id = $%d", len(args)+1)
		args = append(args, *filter.ProductID)
	}
	if filter.Type != "" {
		where += fmt.Sprintf(" AND m.movement_type = $%d", len(args)+1)
		args = append(args, filter.Type)
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND m.created_at >= $%d", len(args)+1)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND m.created_at < $%d", len(args)+1)
		args = append(args, *filter.To)
	}
	return where, args
}
