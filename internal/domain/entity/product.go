package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de stock según la cantidad actual vs el mínimo configurado.
const (
	StockStatusOut = "out" // sin existencias
	StockStatusLow = "low" // en o por debajo del mínimo
	StockStatusOK  = "ok"
)

// Product representa un producto del catálogo.
// StockQuantity es un valor derivado: siempre igual a la suma con signo de sus
// movimientos (entradas positivas, salidas negativas). Solo el motor de
// movimientos lo modifica.
type Product struct {
	ID            int64
	Name          string
	Description   string
	CategoryID    *int64 // nil si no tiene categoría
	Price         decimal.Decimal
	StockQuantity int64
	MinStock      int64
	SKU           *string // código único opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockStatus clasifica el estado de stock: out (cantidad 0), low (<= mínimo), ok.
func (p *Product) StockStatus() string {
	switch {
	case p.StockQuantity == 0:
		return StockStatusOut
	case p.StockQuantity <= p.MinStock:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
