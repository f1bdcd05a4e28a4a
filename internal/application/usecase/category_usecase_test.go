package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/domain"
)

func buildCategoryUC(store *fakeStore) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(
		&fakeCategoryRepo{store: store},
		&fakeProductRepo{store: store},
	)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	store := newFakeStore()
	uc := buildCategoryUC(store)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCategoryCreate_SinNombre(t *testing.T) {
	uc := buildCategoryUC(newFakeStore())
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCategoryUpdate_MismoNombreMismaFila_NoEsConflicto(t *testing.T) {
	store := newFakeStore()
	uc := buildCategoryUC(store)

	created, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	name := "Electrónica"
	desc := "Dispositivos y accesorios"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{
		Name:        &name,
		Description: &desc,
	})
	require.NoError(t, err, "conservar el propio nombre no debe ser conflicto")
	assert.Equal(t, desc, out.Description)
}

func TestCategoryUpdate_NombreDeOtra_EsConflicto(t *testing.T) {
	store := newFakeStore()
	uc := buildCategoryUC(store)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)

	name := "Electrónica"
	_, err = uc.Update(context.Background(), b.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCategoryUpdate_SinCampos(t *testing.T) {
	uc := buildCategoryUC(newFakeStore())
	_, err := uc.Update(context.Background(), 1, dto.UpdateCategoryRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCategoryDelete_ConProductos_EsConflicto(t *testing.T) {
	store := newFakeStore()
	categoryUC := buildCategoryUC(store)
	productUC := buildProductUC(store)

	cat, err := categoryUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	_, err = productUC.Create(context.Background(), 1, dto.CreateProductRequest{
		Name:       "Monitor",
		Price:      decimal.Zero,
		CategoryID: &cat.ID,
	})
	require.NoError(t, err)

	err = categoryUC.Delete(context.Background(), cat.ID)
	assert.True(t, errors.Is(err, domain.ErrConflict),
		"una categoría con productos no puede eliminarse")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	store := newFakeStore()
	uc := buildCategoryUC(store)

	cat, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vacía"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), cat.ID))
	_, err = uc.GetByID(context.Background(), cat.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCategoryGetByID_IncluyeConteo(t *testing.T) {
	store := newFakeStore()
	categoryUC := buildCategoryUC(store)
	productUC := buildProductUC(store)

	cat, err := categoryUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	for _, name := range []string{"Monitor", "Teclado"} {
		_, err = productUC.Create(context.Background(), 1, dto.CreateProductRequest{
			Name:       name,
			Price:      decimal.Zero,
			CategoryID: &cat.ID,
		})
		require.NoError(t, err)
	}

	out, err := categoryUC.GetByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ProductCount)
}
