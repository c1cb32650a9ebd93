package usecase

import (
	"context"
	"fmt"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// OrdersAPI puerto del recurso de pedidos.
type OrdersAPI interface {
	List(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (entity.Order, error)
}

// OrderUseCase listado y transiciones de estado de pedidos.
type OrderUseCase struct {
	api OrdersAPI
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(api OrdersAPI) *OrderUseCase {
	return &OrderUseCase{api: api}
}

// List obtiene los pedidos; status no vacío filtra por estado exacto.
func (uc *OrderUseCase) List(ctx context.Context, status string) ([]entity.Order, error) {
	items, err := uc.api.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return items, nil
	}
	var out []entity.Order
	for _, o := range items {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// ChangeStatus valida la transición contra el grafo de estados antes de
// confirmarla con el servidor.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, id, next string) (entity.Order, error) {
	items, err := uc.api.List(ctx)
	if err != nil {
		return entity.Order{}, err
	}
	var current *entity.Order
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return entity.Order{}, domain.ErrNotFound
	}
	if !entity.CanTransition(current.Status, next) {
		return entity.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrConflict, current.Status, next)
	}
	return uc.api.UpdateStatus(ctx, id, next)
}
