// Package catalog implementa el store en memoria de la página de productos:
// copia transitoria del catálogo traída del API de negocio, con derivación de
// categorías, filtro conjuntivo y mutaciones optimistas confirmadas contra el
// servidor (rollback local si la ida y vuelta falla).
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
	"github.com/elbuensabor/backoffice-api/pkg/logger"
)

// LoadState estado de carga de la página. Vacío y fallido se distinguen:
// una lista vacía con estado Failed significa "no se pudo cargar", no
// "no hay productos".
type LoadState int

const (
	Loading LoadState = iota
	Ready
	Failed
)

// ProductsAPI es el puerto hacia el API de negocio que necesita el store.
// Lo implementa gateway.ProductsClient; en tests se inyecta un stub.
type ProductsAPI interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, in entity.Product) (entity.Product, error)
	Update(ctx context.Context, in entity.Product) (entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// Patch campos opcionales a fusionar sobre un producto existente.
type Patch struct {
	Denominacion *string
	Descripcion  *string
	CategoryID   *string
	Categoria    *entity.CategoryRef
	Imagenes     *[]string
	Price        *decimal.Decimal
	PrepMinutes  *int
	Preparacion  *string
	Details      *[]entity.ProductDetail
}

// Store es el estado en memoria de la página de productos. Seguro para uso
// concurrente desde handlers; el ciclo de vida es el de la página: se crea al
// montar y se descarta con Close (una carga que termina después del Close se
// ignora, nunca escribe sobre un store descartado).
type Store struct {
	api ProductsAPI
	log *logger.Logger

	mu            sync.Mutex
	products      []entity.Product
	state         LoadState
	loadErr       error
	loadGen       int // cargas solapadas: gana la última iniciada
	closed        bool
	pendingDelete string // id en ConfirmPending; "" = Idle
}

// NewStore construye el store en estado Loading, sin datos.
func NewStore(api ProductsAPI, log *logger.Logger) *Store {
	return &Store{api: api, log: log, state: Loading}
}

// Load trae el catálogo completo en un solo fetch. Si el fetch falla, la
// página sale del estado de carga igual: lista vacía + estado Failed con el
// diagnóstico registrado (nunca queda colgada en Loading).
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	s.loadGen++
	gen := s.loadGen
	s.state = Loading
	s.mu.Unlock()

	items, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.loadGen {
		// La página se desmontó o una carga más nueva ya pisó esta; descartar.
		return nil
	}
	if err != nil {
		s.log.Error().Err(err).Msg("cargar productos")
		s.products = nil
		s.state = Failed
		s.loadErr = err
		return err
	}
	s.products = items
	s.state = Ready
	s.loadErr = nil
	return nil
}

// State devuelve el estado de carga y, si es Failed, el error diagnóstico.
func (s *Store) State() (LoadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.loadErr
}

// Products devuelve una copia del listado cargado.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// Categories devuelve el conjunto de nombres de categoría presentes en los
// productos cargados, sin duplicados y en orden de primera aparición.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		name := p.Categoria.Denominacion
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Filter aplica los dos predicados de la página de forma conjuntiva:
//   - text vacío, o substring case-insensitive del nombre o la descripción;
//   - category vacía, o igual al nombre de categoría de la fila.
func (s *Store) Filter(text, category string) []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(text)
	var out []entity.Product
	for _, p := range s.products {
		matchesText := needle == "" ||
			strings.Contains(strings.ToLower(p.Denominacion), needle) ||
			strings.Contains(strings.ToLower(p.Descripcion), needle)
		matchesCategory := category == "" || p.Categoria.Denominacion == category
		if matchesText && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// Get busca un producto por id.
func (s *Store) Get(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return entity.Product{}, false
}

// Create agrega el producto de forma optimista con un id local y lo confirma
// contra el servidor. Si la confirmación falla, la fila se revierte; si
// funciona, la fila se re-clava al registro devuelto (id del servidor).
func (s *Store) Create(ctx context.Context, in entity.Product) (entity.Product, error) {
	localID := uuid.NewString()
	in.ID = localID
	applyDefaults(&in)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.Product{}, domain.ErrStoreClosed
	}
	s.products = append(s.products, in)
	s.mu.Unlock()

	confirmed, err := s.api.Create(ctx, in)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("producto", in.Denominacion).Msg("crear producto: rollback")
		s.removeLocked(localID)
		return entity.Product{}, err
	}
	if i := s.indexLocked(localID); i >= 0 {
		s.products[i] = confirmed
	}
	return confirmed, nil
}

// Update fusiona el patch sobre el registro con ese id y confirma contra el
// servidor; ante un fallo restaura la instantánea previa.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (entity.Product, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.Product{}, domain.ErrStoreClosed
	}
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return entity.Product{}, domain.ErrNotFound
	}
	snapshot := s.products[i].Clone()
	merged := applyPatch(s.products[i], patch)
	s.products[i] = merged
	s.mu.Unlock()

	confirmed, err := s.api.Update(ctx, merged)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar producto: rollback")
		if j := s.indexLocked(id); j >= 0 {
			s.products[j] = snapshot
		}
		return entity.Product{}, err
	}
	if j := s.indexLocked(id); j >= 0 {
		s.products[j] = confirmed
	}
	return confirmed, nil
}

func applyDefaults(p *entity.Product) {
	if p.Imagenes == nil {
		p.Imagenes = []string{}
	}
	if p.Details == nil {
		p.Details = []entity.ProductDetail{}
	}
}

func applyPatch(p entity.Product, patch Patch) entity.Product {
	if patch.Denominacion != nil {
		p.Denominacion = *patch.Denominacion
	}
	if patch.Descripcion != nil {
		p.Descripcion = *patch.Descripcion
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Categoria != nil {
		p.Categoria = *patch.Categoria
	}
	if patch.Imagenes != nil {
		p.Imagenes = *patch.Imagenes
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.PrepMinutes != nil {
		p.PrepMinutes = *patch.PrepMinutes
	}
	if patch.Preparacion != nil {
		p.Preparacion = *patch.Preparacion
	}
	if patch.Details != nil {
		p.Details = *patch.Details
	}
	return p
}

func (s *Store) indexLocked(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(id string) {
	if i := s.indexLocked(id); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
}

// Close descarta el store; cargas y mutaciones posteriores son rechazadas y
// las cargas en vuelo se ignoran al completarse.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
