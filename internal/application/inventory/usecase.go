package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del libro de inventario de
// forma transaccional: bloquea la fila del producto (SELECT FOR UPDATE),
// verifica stock suficiente para salidas, inserta el movimiento y aplica el
// ajuste con signo sobre stock_quantity, todo con Commit o Rollback.
// Es el único escritor de stock_quantity.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// RegisterMovement valida la entrada, inicia una transacción y registra el
// movimiento. Para salidas, la verificación de stock se hace bajo el bloqueo
// de fila: dos salidas concurrentes sobre el mismo producto nunca sobregiran.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID int64, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.MovementType) {
		return nil, fmt.Errorf("%w: movement_type debe ser entry o exit", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if in.PricePerUnit != nil && in.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_unit no puede ser negativo", domain.ErrInvalidInput)
	}

	var mov entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar chequeo y ajuste
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.MovementType == entity.MovementTypeExit && product.StockQuantity < in.Quantity {
			return fmt.Errorf("%w. Stock actual: %d", domain.ErrInsufficientStock, product.StockQuantity)
		}

		pricePerUnit := product.Price
		if in.PricePerUnit != nil {
			pricePerUnit = *in.PricePerUnit
		}
		mov = entity.Movement{
			ProductID:    in.ProductID,
			UserID:       userID,
			Type:         in.MovementType,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			PricePerUnit: pricePerUnit,
			TotalValue:   pricePerUnit.Mul(decimal.NewFromInt(in.Quantity)),
			CreatedAt:    time.Now(),
		}
		if err := movRepo.Create(ctx, &mov); err != nil {
			return err
		}
		return productRepo.AdjustStock(ctx, in.ProductID, mov.SignedQuantity())
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(&mov)
	return &out, nil
}

// GetByID obtiene un movimiento con campos de presentación.
func (uc *RegisterMovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	detail, err := uc.movRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := toDetailResponse(detail)
	return &out, nil
}

// ListMovements devuelve una página del libro, ordenada del más reciente al
// más antiguo, con el total para paginación.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context, in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	in.Normalize(20)
	if in.MovementType != "" && !entity.ValidMovementType(in.MovementType) {
		return nil, fmt.Errorf("%w: movement_type debe ser entry o exit", domain.ErrInvalidInput)
	}

	filter := repository.MovementFilter{
		ProductID: in.ProductID,
		Type:      in.MovementType,
		Limit:     in.Limit,
		Offset:    in.Offset(),
	}
	if in.StartDate != "" {
		from, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.From = &from
	}
	if in.EndDate != "" {
		to, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		// Rango inclusivo por día: el filtro del repo es created_at < To
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	details, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := &dto.MovementListResponse{
		Movements:  make([]dto.MovementResponse, 0, len(details)),
		Pagination: dto.NewPagination(in.Page, in.Limit, total),
	}
	for i := range details {
		out.Movements = append(out.Movements, toDetailResponse(&details[i]))
	}
	return out, nil
}

// ListByProduct devuelve el historial paginado de un producto. El producto
// debe existir.
func (uc *RegisterMovementUseCase) ListByProduct(ctx context.Context, productID int64, page dto.PageRequest) (*dto.ProductMovementsResponse, error) {
	page.Normalize(10)

	row, err := uc.productRepo.GetRowByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	filter := repository.MovementFilter{
		ProductID: &productID,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}
	details, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductMovementsResponse{
		Movements:  make([]dto.MovementResponse, 0, len(details)),
		Product:    toProductRowResponse(row),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}
	for i := range details {
		out.Movements = append(out.Movements, toDetailResponse(&details[i]))
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		UserID:       m.UserID,
		MovementType: m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		PricePerUnit: m.PricePerUnit,
		TotalValue:   m.TotalValue,
		CreatedAt:    m.CreatedAt,
	}
}

func toDetailResponse(d *repository.MovementDetail) dto.MovementResponse {
	out := toMovementResponse(&d.Movement)
	out.ProductName = d.ProductName
	out.ProductSKU = d.ProductSKU
	out.Username = d.Username
	out.CategoryName = d.CategoryName
	return out
}

func toProductRowResponse(row *repository.ProductRow) dto.ProductResponse {
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
