package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry = "entry" // entrada: suma stock
	MovementTypeExit  = "exit"  // salida: resta stock
)

// ValidMovementType indica si el tipo corresponde a un movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}

// Movement es una entrada del libro de movimientos (append-only): nunca se
// actualiza ni se elimina vía API.
type Movement struct {
	ID           int64
	ProductID    int64
	UserID       int64
	Type         string // entry, exit
	Quantity     int64  // siempre positivo; el signo lo da Type
	Reason       *string
	PricePerUnit decimal.Decimal
	TotalValue   decimal.Decimal // PricePerUnit * Quantity
	CreatedAt    time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo.
func (m *Movement) SignedQuantity() int64 {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}
