package usecase

import (
	"context"
	"fmt"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// DeliveriesAPI puerto del recurso de seguimiento de entregas.
type DeliveriesAPI interface {
	List(ctx context.Context) ([]entity.DeliveryInfo, error)
	Assign(ctx context.Context, orderID, personID string) (entity.DeliveryInfo, error)
	UpdateStatus(ctx context.Context, id, status string) (entity.DeliveryInfo, error)
}

// DeliveryUseCase seguimiento de entregas: asignación y transiciones.
type DeliveryUseCase struct {
	api DeliveriesAPI
}

// NewDeliveryUseCase construye el caso de uso de delivery.
func NewDeliveryUseCase(api DeliveriesAPI) *DeliveryUseCase {
	return &DeliveryUseCase{api: api}
}

// List obtiene los seguimientos de entrega.
func (uc *DeliveryUseCase) List(ctx context.Context) ([]entity.DeliveryInfo, error) {
	return uc.api.List(ctx)
}

// Assign asigna un repartidor a un pedido.
func (uc *DeliveryUseCase) Assign(ctx context.Context, orderID, personID string) (entity.DeliveryInfo, error) {
	if orderID == "" || personID == "" {
		return entity.DeliveryInfo{}, domain.ErrInvalidInput
	}
	return uc.api.Assign(ctx, orderID, personID)
}

// ChangeStatus valida la transición de la entrega antes de confirmarla.
func (uc *DeliveryUseCase) ChangeStatus(ctx context.Context, id, next string) (entity.DeliveryInfo, error) {
	items, err := uc.api.List(ctx)
	if err != nil {
		return entity.DeliveryInfo{}, err
	}
	var current *entity.DeliveryInfo
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return entity.DeliveryInfo{}, domain.ErrNotFound
	}
	if !entity.CanTransitionDelivery(current.Status, next) {
		return entity.DeliveryInfo{}, fmt.Errorf("%w: %s -> %s", domain.ErrConflict, current.Status, next)
	}
	return uc.api.UpdateStatus(ctx, id, next)
}
