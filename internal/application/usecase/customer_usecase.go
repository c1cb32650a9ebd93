package usecase

import (
	"context"
	"strings"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// CustomersAPI puerto del recurso de clientes.
type CustomersAPI interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Create(ctx context.Context, in entity.Customer) (entity.Customer, error)
	Update(ctx context.Context, in entity.Customer) (entity.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CustomerUseCase CRUD de clientes, delegado al API de negocio.
type CustomerUseCase struct {
	api CustomersAPI
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(api CustomersAPI) *CustomerUseCase {
	return &CustomerUseCase{api: api}
}

// List obtiene los clientes; texto no vacío filtra por nombre, apellido o email
// (substring case-insensitive).
func (uc *CustomerUseCase) List(ctx context.Context, text string) ([]entity.Customer, error) {
	items, err := uc.api.List(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return items, nil
	}
	needle := strings.ToLower(text)
	var out []entity.Customer
	for _, c := range items {
		if strings.Contains(strings.ToLower(c.FirstName), needle) ||
			strings.Contains(strings.ToLower(c.LastName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Create da de alta un cliente; nombre y apellido son requeridos.
func (uc *CustomerUseCase) Create(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}
	return uc.api.Create(ctx, in)
}

// Update reemplaza el cliente identificado por in.ID.
func (uc *CustomerUseCase) Update(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	if in.ID == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}
	return uc.api.Update(ctx, in)
}

// Delete elimina un cliente por id.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.api.Delete(ctx, id)
}
