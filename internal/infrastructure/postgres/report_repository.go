package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para estadísticas y dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MovementSummary agrega conteo, cantidades y valores por tipo sobre la
// ventana móvil de days días. Usa COALESCE para devolver cero sin filas.
func (r *ReportRepo) MovementSummary(ctx context.Context, days int) ([]repository.MovementTypeStat, error) {
	const query = `
	SELECT
	    movement_type,
	    COUNT(*)                          AS total_movements,
	    COALESCE(SUM(quantity), 0)        AS total_quantity,
	    COALESCE(SUM(total_value), 0)     AS total_value,
	    COALESCE(AVG(total_value), 0)     AS avg_value
	FROM inventory_movements
	WHERE created_at >= now() - make_interval(days => $1)
	GROUP BY movement_type`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("report.MovementSummary: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.MovementTypeStat
	for rows.Next() {
		var row repository.MovementTypeStat
		if err := rows.Scan(&row.Type, &row.TotalMovements, &row.TotalQuantity, &row.TotalValue, &row.AvgValue); err != nil {
			return nil, fmt.Errorf("report.MovementSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailyBreakdown desglosa la ventana por día y tipo, del día más reciente al
// más antiguo.
func (r *ReportRepo) DailyBreakdown(ctx context.Context, days int) ([]repository.DailyMovementStat, error) {
	const query = `
	SELECT
	    created_at::date              AS date,
	    movement_type,
	    COUNT(*)                      AS movements,
	    COALESCE(SUM(quantity), 0)    AS quantity,
	    COALESCE(SUM(total_value), 0) AS value
	FROM inventory_movements
	WHERE created_at >= now() - make_interval(days => $1)
	GROUP BY created_at::date, movement_type
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("report.DailyBreakdown: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.DailyMovementStat
	for rows.Next() {
		var row repository.DailyMovementStat
		if err := rows.Scan(&row.Date, &row.Type, &row.Movements, &row.Quantity, &row.Value); err != nil {
			return nil, fmt.Errorf("report.DailyBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopProducts devuelve los limit productos con más movimientos en la ventana.
func (r *ReportRepo) TopProducts(ctx context.Context, days, limit int) ([]repository.TopProductStat, error) {
	const query = `
	SELECT
	    p.name AS product_name,
	    p.sku,
	    COALESCE(SUM(CASE WHEN m.movement_type = 'entry' THEN m.quantity ELSE 0 END), 0) AS total_entries,
	    COALESCE(SUM(CASE WHEN m.movement_type = 'exit'  THEN m.quantity ELSE 0 END), 0) AS total_exits,
	    COUNT(*) AS total_movements
	FROM inventory_movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.created_at >= now() - make_interval(days => $1)
	GROUP BY p.id, p.name, p.sku
	ORDER BY total_movements DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopProducts: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.TopProductStat
	for rows.Next() {
		var row repository.TopProductStat
		if err := rows.Scan(&row.ProductName, &row.SKU, &row.TotalEntries, &row.TotalExits, &row.TotalMovements); err != nil {
			return nil, fmt.Errorf("report.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TodayByType cuenta los movimientos del día en curso por tipo.
func (r *ReportRepo) TodayByType(ctx context.Context) ([]repository.TodayMovementStat, error) {
	const query = `
	SELECT movement_type, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS quantity
	FROM inventory_movements
	WHERE created_at::date = CURRENT_DATE
	GROUP BY movement_type`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.TodayByType: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.TodayMovementStat
	for rows.Next() {
		var row repository.TodayMovementStat
		if err := rows.Scan(&row.Type, &row.Count, &row.Quantity); err != nil {
			return nil, fmt.Errorf("report.TodayByType scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// WeekTotals acumula los últimos 7 días: total y cantidades por dirección.
func (r *ReportRepo) WeekTotals(ctx context.Context) (*repository.WeekMovementTotals, error) {
	const query = `
	SELECT
	    COUNT(*) AS total_movements,
	    COALESCE(SUM(CASE WHEN movement_type = 'entry' THEN quantity ELSE 0 END), 0) AS total_entries,
	    COALESCE(SUM(CASE WHEN movement_type = 'exit'  THEN quantity ELSE 0 END), 0) AS total_exits
	FROM inventory_movements
	WHERE created_at >= now() - interval '7 days'`

	var totals repository.WeekMovementTotals
	err := r.pool.QueryRow(ctx, query).Scan(&totals.TotalMovements, &totals.TotalEntries, &totals.TotalExits)
	if err != nil {
		return nil, fmt.Errorf("report.WeekTotals: %w", wrapConnError(err))
	}
	return &totals, nil
}

// RecentMovements devuelve los últimos limit movimientos con campos de presentación.
func (r *ReportRepo) RecentMovements(ctx context.Context, limit int) ([]repository.MovementDetail, error) {
	query := movementDetailSelect + ` ORDER BY m.created_at DESC, m.id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.RecentMovements: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.MovementDetail
	for rows.Next() {
		var d repository.MovementDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.UserID, &d.Type, &d.Quantity, &d.Reason,
			&d.PricePerUnit, &d.TotalValue, &d.CreatedAt,
			&d.ProductName, &d.ProductSKU, &d.Username, &d.CategoryName); err != nil {
			return nil, fmt.Errorf("report.RecentMovements scan: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// ProductTotals agregados generales del catálogo. total_value = Σ stock * precio.
func (r *ReportRepo) ProductTotals(ctx context.Context) (*repository.ProductTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                                  AS total_products,
	    COALESCE(SUM(stock_quantity), 0)                          AS total_stock,
	    COALESCE(SUM(stock_quantity * price), 0)                  AS total_value,
	    COUNT(*) FILTER (WHERE stock_quantity <= min_stock)       AS low_stock_count,
	    COUNT(*) FILTER (WHERE stock_quantity = 0)                AS out_of_stock_count
	FROM products`

	var totals repository.ProductTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&totals.TotalProducts, &totals.TotalStock, &totals.TotalValue,
		&totals.LowStockCount, &totals.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("report.ProductTotals: %w", wrapConnError(err))
	}
	return &totals, nil
}

// CategoryBreakdown desglosa el catálogo por categoría, de más a menos productos.
func (r *ReportRepo) CategoryBreakdown(ctx context.Context) ([]repository.CategoryProductStat, error) {
	const query = `
	SELECT
	    c.name                              AS category_name,
	    COUNT(p.id)                         AS product_count,
	    COALESCE(SUM(p.stock_quantity), 0)  AS total_stock
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY product_count DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.CategoryBreakdown: %w", wrapConnError(err))
	}
	defer rows.Close()

	var results []repository.CategoryProductStat
	for rows.Next() {
		var row repository.CategoryProductStat
		if err := rows.Scan(&row.CategoryName, &row.ProductCount, &row.TotalStock); err != nil {
			return nil, fmt.Errorf("report.CategoryBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
