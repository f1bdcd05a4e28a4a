package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementTypeStat agregado por tipo de movimiento en una ventana.
type MovementTypeStat struct {
	Type           string
	TotalMovements int64
	TotalQuantity  int64
	TotalValue     decimal.Decimal
	AvgValue       decimal.Decimal
}

// DailyMovementStat desglose diario por tipo de movimiento.
type DailyMovementStat struct {
	Date      time.Time
	Type      string
	Movements int64
	Quantity  int64
	Value     decimal.Decimal
}

// TopProductStat productos con más movimientos en la ventana.
type TopProductStat struct {
	ProductName    string
	SKU            *string
	TotalEntries   int64
	TotalExits     int64
	TotalMovements int64
}

// TodayMovementStat conteo del día en curso por tipo.
type TodayMovementStat struct {
	Type     string
	Count    int64
	Quantity int64
}

// WeekMovementTotals acumulados de los últimos 7 días.
type WeekMovementTotals struct {
	TotalMovements int64
	TotalEntries   int64
	TotalExits     int64
}

// ProductTotals agregados generales del catálogo.
type ProductTotals struct {
	TotalProducts   int64
	TotalStock      int64
	TotalValue      decimal.Decimal // suma de stock * precio
	LowStockCount   int64
	OutOfStockCount int64
}

// CategoryProductStat desglose del catálogo por categoría.
type CategoryProductStat struct {
	CategoryName string
	ProductCount int64
	TotalStock   int64
}

// ReportRepository consultas de solo lectura para estadísticas y dashboard.
type ReportRepository interface {
	MovementSummary(ctx context.Context, days int) ([]MovementTypeStat, error)
	DailyBreakdown(ctx context.Context, days int) ([]DailyMovementStat, error)
	TopProducts(ctx context.Context, days, limit int) ([]TopProductStat, error)
	TodayByType(ctx context.Context) ([]TodayMovementStat, error)
	WeekTotals(ctx context.Context) (*WeekMovementTotals, error)
	RecentMovements(ctx context.Context, limit int) ([]MovementDetail, error)
	ProductTotals(ctx context.Context) (*ProductTotals, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryProductStat, error)
}
