package analytics

import (
	"context"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// Ventana por defecto y tope del reporte de movimientos.
const (
	defaultPeriodDays = 30
	maxPeriodDays     = 365
	topProductsLimit  = 10
	recentLimit       = 5
)

// DashboardUseCase reportes agregados del libro de movimientos: estadísticas
// por ventana móvil y resumen del dashboard.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// MovementStats agrega conteo, cantidades y valores por tipo sobre una ventana
// de periodDays días, más el desglose diario y el top 10 de productos por
// número de movimientos en la misma ventana.
func (uc *DashboardUseCase) MovementStats(ctx context.Context, periodDays int) (*dto.MovementStatsResponse, error) {
	if periodDays <= 0 {
		periodDays = defaultPeriodDays
	}
	if periodDays > maxPeriodDays {
		periodDays = maxPeriodDays
	}

	summary, err := uc.reportRepo.MovementSummary(ctx, periodDays)
	if err != nil {
		return nil, err
	}
	daily, err := uc.reportRepo.DailyBreakdown(ctx, periodDays)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(ctx, periodDays, topProductsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.MovementStatsResponse{
		Summary:     make([]dto.MovementTypeStatDTO, 0, len(summary)),
		DailyStats:  make([]dto.DailyStatDTO, 0, len(daily)),
		TopProducts: make([]dto.TopProductDTO, 0, len(top)),
		PeriodDays:  periodDays,
	}
	for _, s := range summary {
		out.Summary = append(out.Summary, dto.MovementTypeStatDTO{
			MovementType:   s.Type,
			TotalMovements: s.TotalMovements,
			TotalQuantity:  s.TotalQuantity,
			TotalValue:     s.TotalValue,
			AvgValue:       s.AvgValue,
		})
	}
	for _, d := range daily {
		out.DailyStats = append(out.DailyStats, dto.DailyStatDTO{
			Date:         d.Date.Format("2006-01-02"),
			MovementType: d.Type,
			Movements:    d.Movements,
			Quantity:     d.Quantity,
			Value:        d.Value,
		})
	}
	for _, t := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductName:    t.ProductName,
			SKU:            t.SKU,
			TotalEntries:   t.TotalEntries,
			TotalExits:     t.TotalExits,
			TotalMovements: t.TotalMovements,
		})
	}
	return out, nil
}

// DashboardSummary devuelve los conteos del día por tipo, los acumulados de
// los últimos 7 días y los 5 movimientos más recientes.
func (uc *DashboardUseCase) DashboardSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	today, err := uc.reportRepo.TodayByType(ctx)
	if err != nil {
		return nil, err
	}
	week, err := uc.reportRepo.WeekTotals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.reportRepo.RecentMovements(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		Today: make([]dto.TodayStatDTO, 0, len(today)),
		Week: dto.WeekTotalsDTO{
			TotalMovements: week.TotalMovements,
			TotalEntries:   week.TotalEntries,
			TotalExits:     week.TotalExits,
		},
		Recent: make([]dto.MovementResponse, 0, len(recent)),
	}
	for _, t := range today {
		out.Today = append(out.Today, dto.TodayStatDTO{
			MovementType: t.Type,
			Count:        t.Count,
			Quantity:     t.Quantity,
		})
	}
	for i := range recent {
		d := &recent[i]
		out.Recent = append(out.Recent, dto.MovementResponse{
			ID:           d.ID,
			ProductID:    d.ProductID,
			UserID:       d.UserID,
			MovementType: d.Type,
			Quantity:     d.Quantity,
			Reason:       d.Reason,
			PricePerUnit: d.PricePerUnit,
			TotalValue:   d.TotalValue,
			ProductName:  d.ProductName,
			ProductSKU:   d.ProductSKU,
			Username:     d.Username,
			CategoryName: d.CategoryName,
			CreatedAt:    d.CreatedAt,
		})
	}
	return out, nil
}
