package editor_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/internal/editor"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos de referencia de prueba
// ──────────────────────────────────────────────────────────────────────────────

func insumos() []entity.Supply {
	return []entity.Supply{
		{ID: "i1", Denominacion: "Harina 000"},
		{ID: "i2", Denominacion: "Mozzarella"},
		{ID: "i3", Denominacion: "Salsa de Tomate"},
	}
}

func categorias() []entity.Category {
	return []entity.Category{
		{ID: "c1", Denominacion: "Pizzas"},
		{ID: "c2", Denominacion: "Hamburguesas"},
	}
}

func productoExistente() entity.Product {
	i := insumos()[1]
	return entity.Product{
		ID:           "p1",
		Denominacion: "Pizza Margarita",
		Descripcion:  "mozzarella y albahaca",
		CategoryID:   "c1",
		Categoria:    entity.CategoryRef{ID: "c1", Denominacion: "Pizzas"},
		Price:        decimal.NewFromInt(5200),
		PrepMinutes:  20,
		Details: []entity.ProductDetail{
			{Tipo: entity.DetailTypeSupply, Cantidad: decimal.NewFromInt(300), Insumo: &i},
		},
	}
}

func camposValidos(t *testing.T, f *editor.Form) {
	t.Helper()
	require.NoError(t, f.SetFields("Pizza Calabresa", "longaniza y mozzarella", "c1", "", decimal.NewFromInt(6000), 25))
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo alta y modo edición
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCreate_ArrancaConElRegistroCanonicoVacio(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	assert.False(t, f.Editing())
	v := f.Values()
	assert.Empty(t, v.Denominacion)
	assert.NotNil(t, v.Imagenes)
	assert.NotNil(t, v.Details)
	assert.Empty(t, v.Details)
}

func TestNewEdit_TrabajaSobreUnaCopia(t *testing.T) {
	original := productoExistente()
	f := editor.NewEdit(original, insumos(), categorias())
	require.True(t, f.Editing())

	// Mutar el formulario no debe tocar el registro original.
	require.NoError(t, f.SetFields("Otra Cosa", original.Descripcion, original.CategoryID, "", original.Price, original.PrepMinutes))
	assert.Equal(t, "Pizza Margarita", original.Denominacion)
}

// Abrir en edición y enviar sin cambios reproduce el registro original.
func TestNewEdit_EnvioSinCambios_ReproduceElRegistro(t *testing.T) {
	original := productoExistente()
	f := editor.NewEdit(original, insumos(), categorias())

	saved, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, original.ID, saved.ID)
	assert.Equal(t, original.Denominacion, saved.Denominacion)
	assert.Equal(t, original.Categoria, saved.Categoria)
	require.Len(t, saved.Details, 1)
	assert.True(t, original.Details[0].Cantidad.Equal(saved.Details[0].Cantidad))
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas de ingrediente
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_UsaLosValoresPorDefecto(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())

	detalles := f.Values().Details
	require.Len(t, detalles, 1)
	assert.Equal(t, entity.DetailTypeSupply, detalles[0].Tipo)
	assert.True(t, detalles[0].Cantidad.IsZero())
	require.NotNil(t, detalles[0].Insumo)
	assert.Equal(t, "i1", detalles[0].Insumo.ID, "la línea nueva referencia el primer insumo del catálogo")
}

func TestAddLine_SinCatalogoDeInsumos_Falla(t *testing.T) {
	f := editor.NewCreate(nil, categorias())
	assert.ErrorIs(t, f.AddLine(), domain.ErrNoSupplies)
}

func TestUpdateLine_CambioDeInsumo(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())

	require.NoError(t, f.UpdateLine(0, editor.SetSupply{Item: insumos()[2]}))

	d := f.Values().Details[0]
	require.NotNil(t, d.Insumo)
	assert.Equal(t, "i3", d.Insumo.ID)
	assert.Equal(t, entity.DetailTypeSupply, d.Tipo)
}

func TestUpdateLine_CambioDeCantidad_NoTocaElInsumo(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())

	require.NoError(t, f.UpdateLine(0, editor.SetQuantity{Value: decimal.NewFromInt(250)}))

	d := f.Values().Details[0]
	assert.True(t, decimal.NewFromInt(250).Equal(d.Cantidad))
	require.NotNil(t, d.Insumo)
	assert.Equal(t, "i1", d.Insumo.ID)
}

func TestUpdateLine_IndiceFueraDeRango_Falla(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())
	assert.ErrorIs(t, f.UpdateLine(5, editor.SetQuantity{Value: decimal.NewFromInt(1)}), domain.ErrInvalidIndex)
	assert.ErrorIs(t, f.UpdateLine(-1, editor.SetQuantity{Value: decimal.NewFromInt(1)}), domain.ErrInvalidIndex)
}

func TestRemoveLine_LasPosterioresCorrenUnaPosicion(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())
	require.NoError(t, f.AddLine())
	require.NoError(t, f.UpdateLine(1, editor.SetSupply{Item: insumos()[2]}))

	require.NoError(t, f.RemoveLine(0))

	detalles := f.Values().Details
	require.Len(t, detalles, 1)
	assert.Equal(t, "i3", detalles[0].Insumo.ID)
}

// Un índice viejo después de otro borrado (doble click sobre el mismo botón)
// devuelve error y no borra otra línea.
func TestRemoveLine_IndiceViejoTrasOtroBorrado_NoBorraOtraLinea(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.AddLine())

	require.NoError(t, f.RemoveLine(0))
	err := f.RemoveLine(0)

	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Empty(t, f.Values().Details, "la lista debe quedar intacta tras el índice inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit — validación y cierre
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_CamposRequeridosFaltantes_DejaElFormularioAbierto(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())

	_, err := f.Submit()
	var vErr *editor.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "denominacion")
	assert.Contains(t, vErr.Fields, "descripcion")
	assert.Contains(t, vErr.Fields, "categoria")
	assert.False(t, f.Closed(), "el envío inválido no debe cerrar el formulario")

	// Corregir y reintentar sobre el mismo formulario.
	camposValidos(t, f)
	saved, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Pizza Calabresa", saved.Denominacion)
	assert.True(t, f.Closed())
}

func TestSubmit_PrecioNegativo_EsInvalido(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.SetFields("Pizza", "rica", "c1", "", decimal.NewFromInt(-1), 10))

	_, err := f.Submit()
	var vErr *editor.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "precioVenta")
}

func TestSubmit_CategoriaInexistente_EsInvalida(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	require.NoError(t, f.SetFields("Pizza", "rica", "c-fantasma", "", decimal.NewFromInt(100), 10))

	_, err := f.Submit()
	var vErr *editor.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "categoria")
}

func TestSubmit_LineaConCantidadNegativa_EsInvalida(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	camposValidos(t, f)
	require.NoError(t, f.AddLine())
	require.NoError(t, f.UpdateLine(0, editor.SetQuantity{Value: decimal.NewFromInt(-5)}))

	_, err := f.Submit()
	var vErr *editor.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "detalles[0]")
}

func TestSubmit_ResuelveLaReferenciaDeCategoria(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	camposValidos(t, f)

	saved, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryRef{ID: "c1", Denominacion: "Pizzas"}, saved.Categoria)
}

func TestSubmit_FormularioCerrado_RechazaTodo(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())
	camposValidos(t, f)
	_, err := f.Submit()
	require.NoError(t, err)

	_, err = f.Submit()
	assert.ErrorIs(t, err, domain.ErrFormClosed)
	assert.ErrorIs(t, f.AddLine(), domain.ErrFormClosed)
	assert.ErrorIs(t, f.SetFields("x", "y", "c1", "", decimal.Zero, 0), domain.ErrFormClosed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Acceso concurrente
// ──────────────────────────────────────────────────────────────────────────────

func TestForm_PeticionesConcurrentesSobreLaMismaSesion(t *testing.T) {
	f := editor.NewCreate(insumos(), categorias())

	const porRutina, rutinas = 20, 8
	var wg sync.WaitGroup
	for g := 0; g < rutinas; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < porRutina; i++ {
				assert.NoError(t, f.AddLine())
				_ = f.Values()
				_ = f.Closed()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, f.Values().Details, porRutina*rutinas)
}
