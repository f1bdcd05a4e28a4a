package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// MovementDetail es un movimiento anotado con campos de presentación
// (producto, usuario y categoría) para listados y reportes.
type MovementDetail struct {
	entity.Movement
	ProductName  string
	ProductSKU   *string
	Username     string
	CategoryName *string
}

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	ProductID *int64
	Type      string // entry, exit o vacío
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Solo hay Create y lecturas: el libro es append-only.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetDetailByID(ctx context.Context, id int64) (*MovementDetail, error)
	List(ctx context.Context, filter MovementFilter) ([]MovementDetail, error)
	Count(ctx context.Context, filter MovementFilter) (int64, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
