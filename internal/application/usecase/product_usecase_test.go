package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
	"github.com/elbuensabor/backoffice-api/internal/catalog"
	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/internal/editor"
	"github.com/elbuensabor/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de los puertos del API de negocio
// ──────────────────────────────────────────────────────────────────────────────

type stubProducts struct {
	items []entity.Product
}

func (s *stubProducts) List(ctx context.Context) ([]entity.Product, error) { return s.items, nil }

func (s *stubProducts) Create(ctx context.Context, in entity.Product) (entity.Product, error) {
	in.ID = "srv-1"
	return in, nil
}

func (s *stubProducts) Update(ctx context.Context, in entity.Product) (entity.Product, error) {
	return in, nil
}

func (s *stubProducts) Delete(ctx context.Context, id string) error { return nil }

type stubSupplies struct{}

func (stubSupplies) List(ctx context.Context) ([]entity.Supply, error) {
	return []entity.Supply{{ID: "i1", Denominacion: "Harina 000"}}, nil
}

type stubCategories struct{}

func (stubCategories) List(ctx context.Context) ([]entity.Category, error) {
	return []entity.Category{{ID: "c1", Denominacion: "Pizzas"}}, nil
}

func (stubCategories) Create(ctx context.Context, in entity.Category) (entity.Category, error) {
	in.ID = "c-nueva"
	return in, nil
}

func newProductUC(t *testing.T, items []entity.Product) *usecase.ProductUseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store := catalog.NewStore(&stubProducts{items: items}, log)
	uc := usecase.NewProductUseCase(store, stubSupplies{}, stubCategories{}, log)
	require.NoError(t, uc.Load(context.Background()))
	return uc
}

func pizzaMargarita() entity.Product {
	return entity.Product{
		ID:           "p1",
		Denominacion: "Pizza Margarita",
		Descripcion:  "mozzarella y albahaca",
		CategoryID:   "c1",
		Categoria:    entity.CategoryRef{ID: "c1", Denominacion: "Pizzas"},
		Price:        decimal.NewFromInt(5200),
		PrepMinutes:  20,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesiones del editor
// ──────────────────────────────────────────────────────────────────────────────

// Alta completa: abrir, completar campos, enviar; el registro queda en el
// listado con el id del servidor y la sesión se descarta.
func TestEditor_AltaCompleta(t *testing.T) {
	uc := newProductUC(t, nil)
	ctx := context.Background()

	sid, form, err := uc.OpenEditor(ctx, "")
	require.NoError(t, err)
	assert.False(t, form.Editing())
	require.NoError(t, form.SetFields("Pizza Calabresa", "longaniza", "c1", "", decimal.NewFromInt(6000), 25))

	saved, err := uc.Submit(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)

	items, _, state, _ := uc.Page("", "")
	assert.Equal(t, catalog.Ready, state)
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)

	_, err = uc.Editor(sid)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión debe descartarse tras el envío exitoso")
}

// Edición: el formulario abre con una copia completa del registro y el envío
// pisa la fila original.
func TestEditor_EdicionPisaLaFilaOriginal(t *testing.T) {
	uc := newProductUC(t, []entity.Product{pizzaMargarita()})
	ctx := context.Background()

	sid, form, err := uc.OpenEditor(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, form.Editing())
	assert.Equal(t, "Pizza Margarita", form.Values().Denominacion)

	require.NoError(t, form.SetFields("Pizza Margarita XL", "mozzarella y albahaca", "c1", "", decimal.NewFromInt(7000), 20))
	saved, err := uc.Submit(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "p1", saved.ID)

	items, _, _, _ := uc.Page("", "")
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Margarita XL", items[0].Denominacion)
}

func TestEditor_AbrirEdicionDeIdInexistente_EsNotFound(t *testing.T) {
	uc := newProductUC(t, nil)
	_, _, err := uc.OpenEditor(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un envío inválido deja la sesión viva para corregir y reintentar.
func TestEditor_EnvioInvalido_MantieneLaSesion(t *testing.T) {
	uc := newProductUC(t, nil)
	ctx := context.Background()

	sid, _, err := uc.OpenEditor(ctx, "")
	require.NoError(t, err)

	_, err = uc.Submit(ctx, sid)
	var vErr *editor.ValidationError
	require.ErrorAs(t, err, &vErr)

	form, err := uc.Editor(sid)
	require.NoError(t, err, "la sesión debe seguir abierta tras el envío inválido")
	require.NoError(t, form.SetFields("Pizza Calabresa", "longaniza", "c1", "", decimal.NewFromInt(6000), 25))

	_, err = uc.Submit(ctx, sid)
	assert.NoError(t, err)
}

func TestEditor_CerrarDescartaLaSesion(t *testing.T) {
	uc := newProductUC(t, nil)
	sid, _, err := uc.OpenEditor(context.Background(), "")
	require.NoError(t, err)

	uc.CloseEditor(sid)
	_, err = uc.Editor(sid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Página y confirmación de borrado vía el caso de uso
// ──────────────────────────────────────────────────────────────────────────────

func TestPage_FiltraYDerivaCategorias(t *testing.T) {
	otra := pizzaMargarita()
	otra.ID = "p2"
	otra.Denominacion = "Hamburguesa"
	otra.Descripcion = "carne y cheddar"
	otra.Categoria = entity.CategoryRef{ID: "c2", Denominacion: "Hamburguesas"}

	uc := newProductUC(t, []entity.Product{pizzaMargarita(), otra})

	items, categories, state, loadErr := uc.Page("pizza", "")
	assert.Equal(t, catalog.Ready, state)
	assert.NoError(t, loadErr)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Margarita", items[0].Denominacion)
	assert.Equal(t, []string{"Pizzas", "Hamburguesas"}, categories)
}

func TestDelete_FlujoViaUseCase(t *testing.T) {
	uc := newProductUC(t, []entity.Product{pizzaMargarita()})
	ctx := context.Background()

	require.NoError(t, uc.RequestDelete("p1"))
	assert.Equal(t, "p1", uc.PendingDelete())

	id, err := uc.ConfirmDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
	assert.Equal(t, "", uc.PendingDelete())

	items, _, _, _ := uc.Page("", "")
	assert.Empty(t, items)
}
