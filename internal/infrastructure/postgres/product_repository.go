package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, category_id, price, stock_quantity, min_stock, sku, created_at, updated_at`

// Columnas ordenables desde el listado. Cualquier otro valor cae en created_at.
var productSortColumns = map[string]string{
	"name":           "name",
	"price":          "price",
	"sku":            "sku",
	"stock_quantity": "stock_quantity",
	"min_stock":      "min_stock",
	"created_at":     "created_at",
	"updated_at":     "updated_at",
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, category_id, price, stock_quantity, min_stock, sku, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.CategoryID, product.Price,
		product.StockQuantity, product.MinStock, product.SKU, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", wrapConnError(err))
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE) para
// serializar el chequeo de stock con el ajuste. Solo tiene sentido dentro de
// una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// GetRowByID obtiene un producto anotado con el nombre de su categoría.
func (r *ProductRepo) GetRowByID(ctx context.Context, id int64) (*repository.ProductRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.stock_quantity,
		       p.min_stock, p.sku, p.created_at, p.updated_at, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var row repository.ProductRow
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Description, &row.CategoryID, &row.Price,
		&row.StockQuantity, &row.MinStock, &row.SKU, &row.CreatedAt, &row.UpdatedAt,
		&row.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product row: %w", wrapConnError(err))
	}
	return &row, nil
}

// Update actualiza los campos del producto excepto stock_quantity: el stock
// solo lo modifica AdjustStock dentro del motor de movimientos.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5, min_stock = $6, sku = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Price, product.MinStock, product.SKU, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", wrapConnError(err))
	}
	return nil
}

// AdjustStock aplica un delta con signo sobre stock_quantity. El CHECK de la
// columna (>= 0) y el bloqueo de fila del caller completan la garantía de no
// sobregiro.
func (r *ProductRepo) AdjustStock(ctx context.Context, id int64, delta int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products
		 SET stock_quantity = stock_quantity + $2, updated_at = now()
		 WHERE id = $1 AND stock_quantity + $2 >= 0`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", wrapConnError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// List lista productos con filtros, orden y paginación, anotados con categoría.
func (r *ProductRepo) List(ctx context.Context, params repository.ListProductsParams) ([]repository.ProductRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.stock_quantity,
		       p.min_stock, p.sku, p.created_at, p.updated_at, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`
	where, args := productFilters(params)
	query += where

	sortCol, ok := productSortColumns[params.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	order := "DESC"
	if params.SortOrder == "asc" || params.SortOrder == "ASC" {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY p.%s %s LIMIT $%d OFFSET $%d", sortCol, order, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", wrapConnError(err))
	}
	defer rows.Close()
	var list []repository.ProductRow
	for rows.Next() {
		var row repository.ProductRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.CategoryID, &row.Price,
			&row.StockQuantity, &row.MinStock, &row.SKU, &row.CreatedAt, &row.UpdatedAt,
			&row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta los productos que cumplen los mismos filtros del listado.
func (r *ProductRepo) Count(ctx context.Context, params repository.ListProductsParams) (int64, error) {
	query := `SELECT COUNT(*) FROM products p`
	where, args := productFilters(params)
	query += where
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", wrapConnError(err))
	}
	return total, nil
}

// ListLowStock devuelve los productos con cantidad <= mínimo, ascendente por cantidad.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]repository.ProductRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.price, p.stock_quantity,
		       p.min_stock, p.sku, p.created_at, p.updated_at, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.stock_quantity <= p.min_stock
		ORDER BY p.stock_quantity ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", wrapConnError(err))
	}
	defer rows.Close()
	var list []repository.ProductRow
	for rows.Next() {
		var row repository.ProductRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.CategoryID, &row.Price,
			&row.StockQuantity, &row.MinStock, &row.SKU, &row.CreatedAt, &row.UpdatedAt,
			&row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los productos asociados a una categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count by category: %w", wrapConnError(err))
	}
	return total, nil
}

// Delete elimina un producto por ID. La guarda de movimientos vive en el caso de uso.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", wrapConnError(err))
	}
	return nil
}

// productFilters construye el WHERE dinámico compartido entre List y Count.
func productFilters(params repository.ListProductsParams) (string, []any) {
	where := " WHERE 1=1"
	var args []any
	if params.Search != "" {
		pos := len(args) + 1
		where += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d OR p.sku ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+params.Search+"%")
	}
	if params.CategoryID != nil {
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args)+1)
		args = append(args, *params.CategoryID)
	}
	return where, args
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price,
		&p.StockQuantity, &p.MinStock, &p.SKU, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", wrapConnError(err))
	}
	return &p, nil
}
