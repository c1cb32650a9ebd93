package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbuensabor/backoffice-api/internal/catalog"
	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del API de negocio
// ──────────────────────────────────────────────────────────────────────────────

// stubAPI implementa catalog.ProductsAPI con respuestas programables.
type stubAPI struct {
	listItems []entity.Product
	listErr   error

	createErr error
	updateErr error
	deleteErr error

	deleted []string
}

func (a *stubAPI) List(ctx context.Context) ([]entity.Product, error) {
	return a.listItems, a.listErr
}

func (a *stubAPI) Create(ctx context.Context, in entity.Product) (entity.Product, error) {
	if a.createErr != nil {
		return entity.Product{}, a.createErr
	}
	// El servidor re-clava el id.
	in.ID = "srv-" + in.Denominacion
	return in, nil
}

func (a *stubAPI) Update(ctx context.Context, in entity.Product) (entity.Product, error) {
	if a.updateErr != nil {
		return entity.Product{}, a.updateErr
	}
	return in, nil
}

func (a *stubAPI) Delete(ctx context.Context, id string) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}
	a.deleted = append(a.deleted, id)
	return nil
}

func producto(id, nombre, descripcion, categoria string) entity.Product {
	return entity.Product{
		ID:           id,
		Denominacion: nombre,
		Descripcion:  descripcion,
		Categoria:    entity.CategoryRef{ID: "c-" + categoria, Denominacion: categoria},
		Price:        decimal.NewFromInt(1500),
	}
}

func catalogoDePrueba() []entity.Product {
	return []entity.Product{
		producto("p1", "Pizza Margarita", "mozzarella y albahaca", "Pizzas"),
		producto("p2", "Pizza Napolitana", "tomate y anchoas", "Pizzas"),
		producto("p3", "Hamburguesa Clásica", "carne y cheddar", "Hamburguesas"),
		producto("p4", "Empanada de Carne", "masa criolla con pizca de comino", "Empanadas"),
	}
}

func loadedStore(t *testing.T, api *stubAPI) *catalog.Store {
	t.Helper()
	s := catalog.NewStore(api, testLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y estados
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_Exitosa_QuedaReady(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	state, loadErr := s.State()
	assert.Equal(t, catalog.Ready, state)
	assert.NoError(t, loadErr)
	assert.Len(t, s.Products(), 4)
}

// Un fetch fallido nunca deja la página colgada en Loading: lista vacía y
// estado Failed con el diagnóstico.
func TestLoad_Fallida_QuedaFailedConDiagnostico(t *testing.T) {
	boom := errors.New("timeout del api de negocio")
	s := catalog.NewStore(&stubAPI{listErr: boom}, testLogger())

	err := s.Load(context.Background())
	require.Error(t, err)

	state, loadErr := s.State()
	assert.Equal(t, catalog.Failed, state)
	assert.Equal(t, boom, loadErr)
	assert.Empty(t, s.Products(), "una carga fallida no debe dejar filas viejas")
}

// Failed y "catálogo vacío" son estados distintos.
func TestLoad_CatalogoVacio_EsReadyNoFailed(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: []entity.Product{}})
	state, _ := s.State()
	assert.Equal(t, catalog.Ready, state)
	assert.Empty(t, s.Products())
}

func TestLoad_DespuesDeClose_EsRechazada(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	s.Close()
	assert.ErrorIs(t, s.Load(context.Background()), domain.ErrStoreClosed)
}

// blockingAPI retiene la primera llamada a List hasta que se libera; las
// siguientes responden de inmediato. Sirve para solapar cargas en los tests.
type blockingAPI struct {
	stubAPI

	mu      sync.Mutex
	calls   int
	started chan struct{} // se cierra cuando la primera List quedó bloqueada
	release chan struct{} // cerrarlo libera la primera List
	first   []entity.Product
	second  []entity.Product
}

func newBlockingAPI(first, second []entity.Product) *blockingAPI {
	return &blockingAPI{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   first,
		second:  second,
	}
}

func (a *blockingAPI) List(ctx context.Context) ([]entity.Product, error) {
	a.mu.Lock()
	a.calls++
	n := a.calls
	a.mu.Unlock()
	if n == 1 {
		close(a.started)
		<-a.release
		return a.first, nil
	}
	return a.second, nil
}

// Cargas solapadas: la más nueva gana. Una carga vieja que termina después
// de que arrancó (y terminó) una más nueva se descarta sin pisar sus filas.
func TestLoad_CargaViejaQueTerminaTarde_SeDescarta(t *testing.T) {
	api := newBlockingAPI(
		[]entity.Product{producto("viejo", "Catálogo Viejo", "", "Pizzas")},
		[]entity.Product{producto("nuevo", "Catálogo Nuevo", "", "Pizzas")},
	)
	s := catalog.NewStore(api, testLogger())

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()
	<-api.started // la primera carga ya tomó su turno y quedó bloqueada

	require.NoError(t, s.Load(context.Background()))

	close(api.release)
	require.NoError(t, <-done, "la carga descartada no debe reportar error")

	got := s.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "nuevo", got[0].ID, "la carga vieja no debe pisar a la más nueva")
	state, _ := s.State()
	assert.Equal(t, catalog.Ready, state)
}

// Una carga que completa después del Close se ignora: nunca escribe sobre un
// store descartado.
func TestLoad_QueCompletaDespuesDeClose_SeIgnora(t *testing.T) {
	api := newBlockingAPI(
		[]entity.Product{producto("tardio", "Llega Tarde", "", "Pizzas")},
		nil,
	)
	s := catalog.NewStore(api, testLogger())

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()
	<-api.started

	s.Close()
	close(api.release)
	require.NoError(t, <-done)

	assert.Empty(t, s.Products(), "la carga en vuelo no debe escribir tras el Close")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías derivadas y filtro conjuntivo
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_SinDuplicadosEnOrdenDePrimeraAparicion(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	assert.Equal(t, []string{"Pizzas", "Hamburguesas", "Empanadas"}, s.Categories())
}

func TestFilter_TextoCaseInsensitiveSobreNombreYDescripcion(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})

	// "piz" matchea las dos pizzas por nombre y la empanada por su
	// descripción ("pizca"): el filtro mira ambos campos.
	got := s.Filter("piz", "")
	require.Len(t, got, 3)
	assert.Equal(t, "Pizza Margarita", got[0].Denominacion)
	assert.Equal(t, "Pizza Napolitana", got[1].Denominacion)
	assert.Equal(t, "Empanada de Carne", got[2].Denominacion)
}

func TestFilter_PorCategoriaExacta(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	got := s.Filter("", "Hamburguesas")
	require.Len(t, got, 1)
	assert.Equal(t, "Hamburguesa Clásica", got[0].Denominacion)
}

// Los dos predicados son conjuntivos: texto Y categoría.
func TestFilter_TextoYCategoriaSonConjuntivos(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	got := s.Filter("piz", "Empanadas")
	require.Len(t, got, 1)
	assert.Equal(t, "Empanada de Carne", got[0].Denominacion)

	assert.Empty(t, s.Filter("anchoas", "Hamburguesas"))
}

func TestFilter_SinPredicados_DevuelveTodo(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	assert.Len(t, s.Filter("", ""), 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create optimista
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Confirmado_ReClavaElIdDelServidor(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})

	saved, err := s.Create(context.Background(), entity.Product{Denominacion: "Lomo Completo"})
	require.NoError(t, err)
	assert.Equal(t, "srv-Lomo Completo", saved.ID)

	got, ok := s.Get("srv-Lomo Completo")
	require.True(t, ok, "la fila debe quedar re-clavada al id del servidor")
	assert.Equal(t, "Lomo Completo", got.Denominacion)
	assert.Len(t, s.Products(), 5)
}

func TestCreate_ConfirmacionFallida_RevierteLaFila(t *testing.T) {
	api := &stubAPI{listItems: catalogoDePrueba()}
	s := loadedStore(t, api)
	api.createErr = errors.New("500 del api de negocio")

	_, err := s.Create(context.Background(), entity.Product{Denominacion: "Lomo Completo"})
	require.Error(t, err)
	assert.Len(t, s.Products(), 4, "el alta fallida no debe dejar la fila optimista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update con rollback por instantánea
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_FusionaSoloLosCamposDelPatch(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})

	nombre := "Pizza Margarita XL"
	saved, err := s.Update(context.Background(), "p1", catalog.Patch{Denominacion: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margarita XL", saved.Denominacion)
	assert.Equal(t, "mozzarella y albahaca", saved.Descripcion, "los campos sin patch no deben cambiar")
}

func TestUpdate_ConfirmacionFallida_RestauraLaInstantanea(t *testing.T) {
	api := &stubAPI{listItems: catalogoDePrueba()}
	s := loadedStore(t, api)
	api.updateErr = errors.New("conflicto upstream")

	nombre := "Pizza Margarita XL"
	_, err := s.Update(context.Background(), "p1", catalog.Patch{Denominacion: &nombre})
	require.Error(t, err)

	got, ok := s.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Pizza Margarita", got.Denominacion, "el fallo debe restaurar la instantánea previa")
}

func TestUpdate_IdInexistente_EsNotFound(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	nombre := "x"
	_, err := s.Update(context.Background(), "no-existe", catalog.Patch{Denominacion: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de confirmación de borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_FlujoCompleto(t *testing.T) {
	api := &stubAPI{listItems: catalogoDePrueba()}
	s := loadedStore(t, api)

	require.NoError(t, s.RequestDelete("p2"))
	assert.Equal(t, "p2", s.PendingDelete())

	id, err := s.ConfirmDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p2", id)
	assert.Equal(t, []string{"p2"}, api.deleted)
	assert.Equal(t, "", s.PendingDelete(), "la máquina debe volver a Idle")

	_, ok := s.Get("p2")
	assert.False(t, ok)
	assert.Len(t, s.Products(), 3)
}

// Slot único: pedir el borrado de otra fila pisa el objetivo pendiente.
func TestDelete_PedidoSobrePedido_GanaElUltimo(t *testing.T) {
	api := &stubAPI{listItems: catalogoDePrueba()}
	s := loadedStore(t, api)

	require.NoError(t, s.RequestDelete("p1"))
	require.NoError(t, s.RequestDelete("p3"))

	id, err := s.ConfirmDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p3", id)

	_, ok := s.Get("p1")
	assert.True(t, ok, "la primera fila pedida no debe borrarse")
	assert.Equal(t, []string{"p3"}, api.deleted)
}

func TestDelete_CancelarVuelveAIdleSinTocarElListado(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})

	require.NoError(t, s.RequestDelete("p1"))
	s.CancelDelete()

	assert.Equal(t, "", s.PendingDelete())
	assert.Len(t, s.Products(), 4)
}

func TestDelete_ConfirmarSinPendiente_EsConflicto(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	_, err := s.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_FilaInexistente_EsNotFound(t *testing.T) {
	s := loadedStore(t, &stubAPI{listItems: catalogoDePrueba()})
	assert.ErrorIs(t, s.RequestDelete("no-existe"), domain.ErrNotFound)
}

// Si el servidor rechaza el borrado, la fila vuelve a su posición original y
// la máquina queda en Idle igual.
func TestDelete_ConfirmacionFallida_ReinsertaEnLaPosicionOriginal(t *testing.T) {
	api := &stubAPI{listItems: catalogoDePrueba()}
	s := loadedStore(t, api)
	api.deleteErr = errors.New("502 upstream")

	require.NoError(t, s.RequestDelete("p2"))
	_, err := s.ConfirmDelete(context.Background())
	require.Error(t, err)

	got := s.Products()
	require.Len(t, got, 4)
	assert.Equal(t, "p2", got[1].ID, "la fila debe volver a su posición original")
	assert.Equal(t, "", s.PendingDelete())
}
