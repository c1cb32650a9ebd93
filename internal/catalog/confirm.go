package catalog

import (
	"context"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// Sub-máquina de confirmación de borrado. Un único slot: pedir el borrado de
// otra fila pisa el objetivo pendiente (gana el último pedido, sin apilar).

// RequestDelete pasa la fila a ConfirmPending. La fila debe existir.
func (s *Store) RequestDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	if s.indexLocked(id) < 0 {
		return domain.ErrNotFound
	}
	s.pendingDelete = id
	return nil
}

// PendingDelete devuelve el id en ConfirmPending, o "" si la máquina está Idle.
func (s *Store) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// CancelDelete vuelve a Idle sin tocar el listado.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// ConfirmDelete quita la fila pendiente y confirma el borrado contra el
// servidor; si la confirmación falla la fila vuelve a su posición original.
// En ambos casos la máquina termina en Idle. Devuelve el id borrado.
func (s *Store) ConfirmDelete(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", domain.ErrStoreClosed
	}
	id := s.pendingDelete
	s.pendingDelete = ""
	if id == "" {
		s.mu.Unlock()
		return "", domain.ErrConflict
	}
	i := s.indexLocked(id)
	if i < 0 {
		// La fila desapareció entre el pedido y la confirmación.
		s.mu.Unlock()
		return "", domain.ErrNotFound
	}
	row := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.mu.Unlock()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("eliminar producto: rollback")
		if i > len(s.products) {
			i = len(s.products)
		}
		s.products = append(s.products, entity.Product{})
		copy(s.products[i+1:], s.products[i:])
		s.products[i] = row
		return "", err
	}
	return id, nil
}
