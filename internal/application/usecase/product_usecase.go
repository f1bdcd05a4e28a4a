package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/inventory"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// Razón del movimiento de entrada sintetizado al crear un producto con stock.
const initialStockReason = "Stock inicial"

// DefaultMinStock mínimo de stock por defecto para productos nuevos.
const DefaultMinStock = 5

// ProductUseCase casos de uso CRUD para productos. El stock solo se modifica
// vía movimientos: la creación con stock inicial registra la entrada en la
// misma transacción y la actualización no acepta stock_quantity.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.MovementRepository
	reportRepo   repository.ReportRepository
	txRunner     inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.MovementRepository,
	reportRepo repository.ReportRepository,
	txRunner inventory.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		movRepo:      movRepo,
		reportRepo:   reportRepo,
		txRunner:     txRunner,
	}
}

// Create crea un producto. Si StockQuantity > 0, registra además la entrada
// "Stock inicial" al precio de creación; ambas escrituras van en una sola
// transacción, de modo que el invariante del libro se cumple desde el inicio.
func (uc *ProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.StockQuantity < 0 {
		return nil, fmt.Errorf("%w: stock_quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	minStock := int64(DefaultMinStock)
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, fmt.Errorf("%w: min_stock no puede ser negativo", domain.ErrInvalidInput)
		}
		minStock = *in.MinStock
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: la categoría especificada no existe", domain.ErrInvalidInput)
		}
	}
	if in.SKU != nil && *in.SKU != "" {
		existing, err := uc.repo.GetBySKU(ctx, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: el SKU ya existe", domain.ErrDuplicate)
		}
	}

	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		MinStock:      minStock,
		SKU:           normalizeSKU(in.SKU),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if in.StockQuantity == 0 {
		if err := uc.repo.Create(ctx, product); err != nil {
			return nil, err
		}
	} else {
		err := uc.txRunner.Run(ctx, func(
			movRepo repository.MovementRepository,
			productRepo repository.ProductRepository,
		) error {
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
			reason := initialStockReason
			mov := &entity.Movement{
				ProductID:    product.ID,
				UserID:       userID,
				Type:         entity.MovementTypeEntry,
				Quantity:     in.StockQuantity,
				Reason:       &reason,
				PricePerUnit: in.Price,
				TotalValue:   in.Price.Mul(decimal.NewFromInt(in.StockQuantity)),
				CreatedAt:    now,
			}
			return movRepo.Create(ctx, mov)
		})
		if err != nil {
			return nil, err
		}
	}

	return uc.GetByID(ctx, product.ID)
}

// GetByID obtiene un producto con nombre de categoría y estado de stock.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	row, err := uc.repo.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(row)
	return &out, nil
}

// Update actualiza campos del producto. No acepta stock_quantity: el stock se
// maneja vía movimientos. Al menos un campo debe venir informado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.StockQuantity != nil {
		return nil, fmt.Errorf("%w: stock_quantity no es editable; registre un movimiento de inventario", domain.ErrInvalidInput)
	}
	if in.IsEmpty() {
		return nil, fmt.Errorf("%w: no se proporcionaron datos para actualizar", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: la categoría especificada no existe", domain.ErrInvalidInput)
		}
		product.CategoryID = in.CategoryID
	}
	if in.SKU != nil && *in.SKU != "" {
		// Excluye al propio producto: actualizar al mismo valor no es conflicto
		if product.SKU == nil || *product.SKU != *in.SKU {
			existing, err := uc.repo.GetBySKU(ctx, *in.SKU)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("%w: el SKU ya existe", domain.ErrDuplicate)
			}
		}
		product.SKU = in.SKU
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, fmt.Errorf("%w: min_stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un producto. Rechazado si tiene movimientos asociados: el
// libro es append-only y no se rompe su referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: el producto tiene movimientos de inventario asociados", domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// ListRequest filtros del listado de productos.
type ListRequest struct {
	dto.PageRequest
	Search     string `query:"search"`
	CategoryID *int64 `query:"category_id"`
	SortBy     string `query:"sort_by"`
	SortOrder  string `query:"sort_order"`
}

// List devuelve una página del catálogo con categoría y estado de stock.
func (uc *ProductUseCase) List(ctx context.Context, in ListRequest) (*dto.ProductListResponse, error) {
	in.Normalize(10)
	params := repository.ListProductsParams{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		SortBy:     in.SortBy,
		SortOrder:  in.SortOrder,
		Limit:      in.Limit,
		Offset:     in.Offset(),
	}
	rows, err := uc.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, params)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products:   make([]dto.ProductResponse, 0, len(rows)),
		Pagination: dto.NewPagination(in.Page, in.Limit, total),
	}
	for i := range rows {
		out.Products = append(out.Products, toProductResponse(&rows[i]))
	}
	return out, nil
}

// ListLowStock devuelve los productos con cantidad <= mínimo, ascendente por cantidad.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	rows, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toProductResponse(&rows[i]))
	}
	return out, nil
}

// Stats devuelve los agregados del catálogo y el desglose por categoría.
func (uc *ProductUseCase) Stats(ctx context.Context) (*dto.ProductStatsResponse, error) {
	totals, err := uc.reportRepo.ProductTotals(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.reportRepo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductStatsResponse{
		General: dto.ProductTotalsResponse{
			TotalProducts:   totals.TotalProducts,
			TotalStock:      totals.TotalStock,
			TotalValue:      totals.TotalValue,
			LowStockCount:   totals.LowStockCount,
			OutOfStockCount: totals.OutOfStockCount,
		},
		ByCategory: make([]dto.CategoryStatResponse, 0, len(byCategory)),
	}
	for _, c := range byCategory {
		out.ByCategory = append(out.ByCategory, dto.CategoryStatResponse{
			CategoryName: c.CategoryName,
			ProductCount: c.ProductCount,
			TotalStock:   c.TotalStock,
		})
	}
	return out, nil
}

func normalizeSKU(sku *string) *string {
	if sku == nil || *sku == "" {
		return nil
	}
	return sku
}

func toProductResponse(row *repository.ProductRow) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		Price:         row.Price,
		StockQuantity: row.StockQuantity,
		MinStock:      row.MinStock,
		SKU:           row.SKU,
		StockStatus:   row.StockStatus(),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
