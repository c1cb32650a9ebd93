package usecase

import (
	"context"
	"strings"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// CategoryUseCase gestiona las categorías como recurso propio, independiente
// de los productos cargados: una categoría nueva sin productos es visible.
type CategoryUseCase struct {
	api CategoriesAPI
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(api CategoriesAPI) *CategoryUseCase {
	return &CategoryUseCase{api: api}
}

// List obtiene todas las categorías del API de negocio.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.api.List(ctx)
}

// Create da de alta una categoría; la denominación es requerida.
func (uc *CategoryUseCase) Create(ctx context.Context, in entity.Category) (entity.Category, error) {
	if strings.TrimSpace(in.Denominacion) == "" {
		return entity.Category{}, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	return uc.api.Create(ctx, in)
}
