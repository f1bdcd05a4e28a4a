package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// fakeStore base en memoria compartida por los fakes de este paquete.
type fakeStore struct {
	mu         sync.Mutex
	products   map[int64]*entity.Product
	categories map[int64]*entity.Category
	movements  []entity.Movement
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   make(map[int64]*entity.Product),
		categories: make(map[int64]*entity.Category),
		nextID:     1,
	}
}

func (s *fakeStore) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.store.allocID()
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetRowByID(ctx context.Context, id int64) (*repository.ProductRow, error) {
	p, _ := r.GetByID(ctx, id)
	if p == nil {
		return nil, nil
	}
	row := repository.ProductRow{Product: *p}
	if p.CategoryID != nil {
		if cat, ok := r.store.categories[*p.CategoryID]; ok {
			row.CategoryName = &cat.Name
		}
	}
	return &row, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU != nil && *p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id int64, delta int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity += delta
	return nil
}

func (r *fakeProductRepo) matches(ctx context.Context, params repository.ListProductsParams) []repository.ProductRow {
	var out []repository.ProductRow
	for id, p := range r.store.products {
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *params.CategoryID) {
			continue
		}
		row, _ := r.GetRowByID(ctx, id)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// List aplica Offset y Limit como lo haría la consulta SQL.
func (r *fakeProductRepo) List(ctx context.Context, params repository.ListProductsParams) ([]repository.ProductRow, error) {
	out := r.matches(ctx, params)
	if params.Offset >= len(out) {
		return nil, nil
	}
	out = out[params.Offset:]
	if params.Limit > 0 && params.Limit < len(out) {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, params repository.ListProductsParams) (int64, error) {
	return int64(len(r.matches(ctx, params))), nil
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context) ([]repository.ProductRow, error) {
	var out []repository.ProductRow
	for id, p := range r.store.products {
		if p.StockQuantity <= p.MinStock {
			row, _ := r.GetRowByID(ctx, id)
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.store.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = r.store.allocID()
	cp := *c
	r.store.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	if c, ok := r.store.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetWithCount(ctx context.Context, id int64) (*repository.CategoryWithCount, error) {
	c, _ := r.GetByID(ctx, id)
	if c == nil {
		return nil, nil
	}
	count, _ := (&fakeProductRepo{store: r.store}).CountByCategory(ctx, id)
	return &repository.CategoryWithCount{Category: *c, ProductCount: count}, nil
}

func (r *fakeCategoryRepo) ListWithCount(ctx context.Context) ([]repository.CategoryWithCount, error) {
	var out []repository.CategoryWithCount
	for id := range r.store.categories {
		row, _ := r.GetWithCount(ctx, id)
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	r.store.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.store.categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.store.allocID()
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *fakeMovementRepo) GetDetailByID(_ context.Context, id int64) (*repository.MovementDetail, error) {
	for i := range r.store.movements {
		if r.store.movements[i].ID == id {
			return &repository.MovementDetail{Movement: r.store.movements[i]}, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) matches(filter repository.MovementFilter) []repository.MovementDetail {
	var out []repository.MovementDetail
	for i := range r.store.movements {
		m := r.store.movements[i]
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		out = append(out, repository.MovementDetail{Movement: m})
	}
	return out
}

// List aplica Offset y Limit como lo haría la consulta SQL.
func (r *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]repository.MovementDetail, error) {
	out := r.matches(filter)
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) Count(_ context.Context, filter repository.MovementFilter) (int64, error) {
	return int64(len(r.matches(filter))), nil
}

func (r *fakeMovementRepo) CountByProduct(_ context.Context, productID int64) (int64, error) {
	var n int64
	for i := range r.store.movements {
		if r.store.movements[i].ProductID == productID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct{ store *fakeStore }

func (r *fakeReportRepo) MovementSummary(_ context.Context, _ int) ([]repository.MovementTypeStat, error) {
	return nil, nil
}

func (r *fakeReportRepo) DailyBreakdown(_ context.Context, _ int) ([]repository.DailyMovementStat, error) {
	return nil, nil
}

func (r *fakeReportRepo) TopProducts(_ context.Context, _, _ int) ([]repository.TopProductStat, error) {
	return nil, nil
}

func (r *fakeReportRepo) TodayByType(_ context.Context) ([]repository.TodayMovementStat, error) {
	return nil, nil
}

func (r *fakeReportRepo) WeekTotals(_ context.Context) (*repository.WeekMovementTotals, error) {
	return &repository.WeekMovementTotals{}, nil
}

func (r *fakeReportRepo) RecentMovements(_ context.Context, _ int) ([]repository.MovementDetail, error) {
	return nil, nil
}

func (r *fakeReportRepo) ProductTotals(_ context.Context) (*repository.ProductTotals, error) {
	totals := repository.ProductTotals{TotalValue: decimal.Zero}
	for _, p := range r.store.products {
		totals.TotalProducts++
		totals.TotalStock += p.StockQuantity
		totals.TotalValue = totals.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(p.StockQuantity)))
		switch {
		case p.StockQuantity == 0:
			totals.OutOfStockCount++
		case p.StockQuantity <= p.MinStock:
			totals.LowStockCount++
		}
	}
	return &totals, nil
}

func (r *fakeReportRepo) CategoryBreakdown(_ context.Context) ([]repository.CategoryProductStat, error) {
	byCat := make(map[string]*repository.CategoryProductStat)
	for _, p := range r.store.products {
		if p.CategoryID == nil {
			continue
		}
		cat, ok := r.store.categories[*p.CategoryID]
		if !ok {
			continue
		}
		s := byCat[cat.Name]
		if s == nil {
			s = &repository.CategoryProductStat{CategoryName: cat.Name}
			byCat[cat.Name] = s
		}
		s.ProductCount++
		s.TotalStock += p.StockQuantity
	}
	out := make([]repository.CategoryProductStat, 0, len(byCat))
	for _, s := range byCat {
		out = append(out, *s)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta la función bajo el mutex del store, sin rollback: los
// tests de este paquete no ejercitan caminos de fallo dentro de la transacción.
type fakeTxRunner struct{ store *fakeStore }

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	return fn(&fakeMovementRepo{store: tx.store}, &fakeProductRepo{store: tx.store})
}
