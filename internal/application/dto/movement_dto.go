package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un movimiento.
// PricePerUnit es opcional: si no se envía se usa el precio actual del producto.
type CreateMovementRequest struct {
	ProductID    int64            `json:"product_id"`
	MovementType string           `json:"movement_type"` // entry | exit
	Quantity     int64            `json:"quantity"`
	Reason       *string          `json:"reason"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// MovementResponse salida de un movimiento con campos de presentación.
type MovementResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	UserID       int64           `json:"user_id"`
	MovementType string          `json:"movement_type"`
	Quantity     int64           `json:"quantity"`
	Reason       *string         `json:"reason"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalValue   decimal.Decimal `json:"total_value"`
	ProductName  string          `json:"product_name,omitempty"`
	ProductSKU   *string         `json:"product_sku,omitempty"`
	Username     string          `json:"username,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ListMovementsRequest filtros del listado de movimientos.
type ListMovementsRequest struct {
	PageRequest
	ProductID    *int64 `query:"product_id"`
	MovementType string `query:"movement_type"`
	StartDate    string `query:"start_date"` // YYYY-MM-DD
	EndDate      string `query:"end_date"`   // YYYY-MM-DD
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Movements  []MovementResponse `json:"movements"`
	Pagination Pagination         `json:"pagination"`
}

// ProductMovementsResponse historial de un producto con el producto incluido.
type ProductMovementsResponse struct {
	Movements  []MovementResponse `json:"movements"`
	Product    ProductResponse    `json:"product"`
	Pagination Pagination         `json:"pagination"`
}
