package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/elbuensabor/backoffice-api/internal/catalog"
	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/internal/editor"
	"github.com/elbuensabor/backoffice-api/pkg/logger"
)

// SuppliesAPI puerto del catálogo de referencia de insumos.
type SuppliesAPI interface {
	List(ctx context.Context) ([]entity.Supply, error)
}

// CategoriesAPI puerto del recurso de categorías.
type CategoriesAPI interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, in entity.Category) (entity.Category, error)
}

// ProductUseCase orquesta la página de productos: el store del catálogo, los
// catálogos de referencia (insumos, categorías) y las sesiones del editor.
type ProductUseCase struct {
	store      *catalog.Store
	supplies   SuppliesAPI
	categories CategoriesAPI
	log        *logger.Logger

	mu       sync.Mutex
	sessions map[string]*editor.Form
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(store *catalog.Store, supplies SuppliesAPI, categories CategoriesAPI, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		store:      store,
		supplies:   supplies,
		categories: categories,
		log:        log,
		sessions:   make(map[string]*editor.Form),
	}
}

// Load monta (o recarga) la página: un solo fetch del catálogo.
func (uc *ProductUseCase) Load(ctx context.Context) error {
	return uc.store.Load(ctx)
}

// Page devuelve las filas filtradas y los metadatos de la página.
func (uc *ProductUseCase) Page(text, category string) ([]entity.Product, []string, catalog.LoadState, error) {
	items := uc.store.Filter(text, category)
	state, loadErr := uc.store.State()
	return items, uc.store.Categories(), state, loadErr
}

// OpenEditor abre una sesión del editor. productID vacío abre en modo alta;
// si no, copia completa del registro indicado. Los catálogos de referencia se
// traen en el momento de abrir, para validar contra el estado vigente.
func (uc *ProductUseCase) OpenEditor(ctx context.Context, productID string) (string, *editor.Form, error) {
	supplies, err := uc.supplies.List(ctx)
	if err != nil {
		return "", nil, err
	}
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return "", nil, err
	}

	var form *editor.Form
	if productID == "" {
		form = editor.NewCreate(supplies, categories)
	} else {
		p, ok := uc.store.Get(productID)
		if !ok {
			return "", nil, domain.ErrNotFound
		}
		form = editor.NewEdit(p, supplies, categories)
	}

	id := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[id] = form
	uc.mu.Unlock()
	return id, form, nil
}

// Editor devuelve la sesión abierta con ese id.
func (uc *ProductUseCase) Editor(sessionID string) (*editor.Form, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	form, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return form, nil
}

// CloseEditor descarta una sesión sin guardar.
func (uc *ProductUseCase) CloseEditor(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, sessionID)
}

// Submit valida el formulario y aplica la instantánea al store: Create en
// modo alta, Update en modo edición. Un error de validación deja la sesión
// abierta; un envío exitoso la cierra y la descarta.
func (uc *ProductUseCase) Submit(ctx context.Context, sessionID string) (entity.Product, error) {
	form, err := uc.Editor(sessionID)
	if err != nil {
		return entity.Product{}, err
	}
	snapshot, err := form.Submit()
	if err != nil {
		return entity.Product{}, err
	}

	var saved entity.Product
	if form.Editing() {
		saved, err = uc.store.Update(ctx, snapshot.ID, patchFrom(snapshot))
	} else {
		saved, err = uc.store.Create(ctx, snapshot)
	}
	// El formulario ya se cerró con el Submit exitoso; la sesión se descarta
	// aunque la confirmación upstream haya fallado (el store ya hizo rollback).
	uc.CloseEditor(sessionID)
	if err != nil {
		return entity.Product{}, err
	}
	return saved, nil
}

// RequestDelete / CancelDelete / ConfirmDelete exponen la sub-máquina de
// confirmación de borrado del store.
func (uc *ProductUseCase) RequestDelete(id string) error { return uc.store.RequestDelete(id) }
func (uc *ProductUseCase) CancelDelete()                 { uc.store.CancelDelete() }
func (uc *ProductUseCase) ConfirmDelete(ctx context.Context) (string, error) {
	return uc.store.ConfirmDelete(ctx)
}

// PendingDelete devuelve el id en confirmación, o vacío.
func (uc *ProductUseCase) PendingDelete() string { return uc.store.PendingDelete() }

func patchFrom(p entity.Product) catalog.Patch {
	return catalog.Patch{
		Denominacion: &p.Denominacion,
		Descripcion:  &p.Descripcion,
		CategoryID:   &p.CategoryID,
		Categoria:    &p.Categoria,
		Imagenes:     &p.Imagenes,
		Price:        &p.Price,
		PrepMinutes:  &p.PrepMinutes,
		Preparacion:  &p.Preparacion,
		Details:      &p.Details,
	}
}
