package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si StockQuantity > 0 se registra un movimiento de entrada "Stock inicial"
// en la misma transacción.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStock      *int64          `json:"min_stock"` // por defecto 5
	SKU           *string         `json:"sku"`
}

// UpdateProductRequest entrada para actualizar un producto.
// StockQuantity se parsea solo para rechazarlo: el stock se modifica
// únicamente vía movimientos.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *int64           `json:"category_id"`
	Price         *decimal.Decimal `json:"price"`
	MinStock      *int64           `json:"min_stock"`
	SKU           *string          `json:"sku"`
	StockQuantity *int64           `json:"stock_quantity"`
}

// IsEmpty indica que no se proporcionó ningún campo a actualizar.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.CategoryID == nil &&
		r.Price == nil && r.MinStock == nil && r.SKU == nil
}

// ProductResponse salida de un producto con su estado de stock derivado.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	CategoryName  *string         `json:"category_name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStock      int64           `json:"min_stock"`
	SKU           *string         `json:"sku"`
	StockStatus   string          `json:"stock_status"` // out, low, ok
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ProductTotalsResponse agregados generales del catálogo.
type ProductTotalsResponse struct {
	TotalProducts   int64           `json:"total_products"`
	TotalStock      int64           `json:"total_stock"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockCount   int64           `json:"low_stock_count"`
	OutOfStockCount int64           `json:"out_of_stock_count"`
}

// CategoryStatResponse desglose del catálogo por categoría.
type CategoryStatResponse struct {
	CategoryName string `json:"category_name"`
	ProductCount int64  `json:"product_count"`
	TotalStock   int64  `json:"total_stock"`
}

// ProductStatsResponse respuesta de GET /products/stats.
type ProductStatsResponse struct {
	General    ProductTotalsResponse  `json:"general"`
	ByCategory []CategoryStatResponse `json:"by_category"`
}
