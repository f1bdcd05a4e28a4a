package dto

import "github.com/shopspring/decimal"

// MovementTypeStatDTO agregado por tipo de movimiento en la ventana consultada.
type MovementTypeStatDTO struct {
	MovementType   string          `json:"movement_type"`
	TotalMovements int64           `json:"total_movements"`
	TotalQuantity  int64           `json:"total_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
	AvgValue       decimal.Decimal `json:"avg_value"`
}

// DailyStatDTO desglose diario por tipo de movimiento.
type DailyStatDTO struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	MovementType string          `json:"movement_type"`
	Movements    int64           `json:"movements"`
	Quantity     int64           `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
}

// TopProductDTO productos con más movimientos en la ventana.
type TopProductDTO struct {
	ProductName    string  `json:"product_name"`
	SKU            *string `json:"sku"`
	TotalEntries   int64   `json:"total_entries"`
	TotalExits     int64   `json:"total_exits"`
	TotalMovements int64   `json:"total_movements"`
}

// MovementStatsResponse respuesta de GET /movements/stats.
type MovementStatsResponse struct {
	Summary     []MovementTypeStatDTO `json:"summary"`
	DailyStats  []DailyStatDTO        `json:"daily_stats"`
	TopProducts []TopProductDTO       `json:"top_products"`
	PeriodDays  int                   `json:"period_days"`
}

// TodayStatDTO conteo del día en curso por tipo.
type TodayStatDTO struct {
	MovementType string `json:"movement_type"`
	Count        int64  `json:"count"`
	Quantity     int64  `json:"quantity"`
}

// WeekTotalsDTO acumulados de los últimos 7 días.
type WeekTotalsDTO struct {
	TotalMovements int64 `json:"total_movements"`
	TotalEntries   int64 `json:"total_entries"`
	TotalExits     int64 `json:"total_exits"`
}

// DashboardResponse respuesta de GET /movements/dashboard.
type DashboardResponse struct {
	Today  []TodayStatDTO     `json:"today"`
	Week   WeekTotalsDTO      `json:"week"`
	Recent []MovementResponse `json:"recent"`
}
