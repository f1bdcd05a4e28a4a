package repository

import (
	"context"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// CategoryWithCount es una categoría anotada con su número de productos vivos.
type CategoryWithCount struct {
	entity.Category
	ProductCount int64
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	GetWithCount(ctx context.Context, id int64) (*CategoryWithCount, error)
	ListWithCount(ctx context.Context) ([]CategoryWithCount, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
