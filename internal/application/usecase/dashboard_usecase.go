package usecase

import (
	"context"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// ProductsListAPI puerto mínimo para contar productos.
type ProductsListAPI interface {
	List(ctx context.Context) ([]entity.Product, error)
}

// DashboardUseCase compone los contadores de la página de inicio a partir de
// los listados del API de negocio. Sin caché: la página de inicio es un
// snapshot al momento de montar, igual que el resto.
type DashboardUseCase struct {
	products  ProductsListAPI
	customers CustomersAPI
	orders    OrdersAPI
	supplies  SuppliesAPI
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(products ProductsListAPI, customers CustomersAPI, orders OrdersAPI, supplies SuppliesAPI) *DashboardUseCase {
	return &DashboardUseCase{products: products, customers: customers, orders: orders, supplies: supplies}
}

// Summary arma los contadores agregados. Cada listado que falla degrada su
// contador a cero; el primero que falla se devuelve como diagnóstico sin
// abortar el resto.
func (uc *DashboardUseCase) Summary(ctx context.Context) (dto.DashboardResponse, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	out := dto.DashboardResponse{OrdersByStatus: make(map[string]int)}

	products, err := uc.products.List(ctx)
	keep(err)
	out.Products = len(products)

	customers, err := uc.customers.List(ctx)
	keep(err)
	out.Customers = len(customers)

	orders, err := uc.orders.List(ctx)
	keep(err)
	for _, o := range orders {
		out.OrdersByStatus[o.Status]++
	}

	supplies, err := uc.supplies.List(ctx)
	keep(err)
	for _, s := range supplies {
		if s.BelowMinimum() {
			out.LowStock++
		}
	}

	return out, firstErr
}
