package repository

import (
	"context"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// ProductRow es un producto anotado con el nombre de su categoría (si tiene).
type ProductRow struct {
	entity.Product
	CategoryName *string
}

// ListProductsParams filtros y orden para listar productos.
// SortBy debe pertenecer a la lista blanca del adaptador; de lo contrario se
// ordena por created_at.
type ListProductsParams struct {
	Search     string // substring sobre name, description y sku
	CategoryID *int64
	SortBy     string
	SortOrder  string // asc | desc
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustStock y GetForUpdate solo deben usarse dentro de una transacción del
// motor de movimientos; ningún otro camino modifica StockQuantity.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetRowByID(ctx context.Context, id int64) (*ProductRow, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	AdjustStock(ctx context.Context, id int64, delta int64) error
	List(ctx context.Context, params ListProductsParams) ([]ProductRow, error)
	Count(ctx context.Context, params ListProductsParams) (int64, error)
	ListLowStock(ctx context.Context) ([]ProductRow, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
