package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// Clientes tipados por recurso. Cada uno envuelve el Client genérico con las
// rutas del API de negocio; los usecases dependen de las interfaces de
// internal/application, no de estos structs.

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductsClient consume los endpoints de artículos manufacturados.
type ProductsClient struct{ c *Client }

// NewProductsClient construye el cliente de productos.
func NewProductsClient(c *Client) *ProductsClient { return &ProductsClient{c: c} }

// List obtiene todos los artículos con sus detalles embebidos.
func (p *ProductsClient) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := p.c.Get(ctx, "/articuloManufacturadoDetalle/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un artículo y devuelve el registro con el id asignado por el servidor.
func (p *ProductsClient) Create(ctx context.Context, in entity.Product) (entity.Product, error) {
	var out entity.Product
	if err := p.c.Post(ctx, "/articuloManufacturado", in, &out); err != nil {
		return entity.Product{}, err
	}
	return out, nil
}

// Update reemplaza el artículo identificado por in.ID.
func (p *ProductsClient) Update(ctx context.Context, in entity.Product) (entity.Product, error) {
	var out entity.Product
	if err := p.c.Put(ctx, "/articuloManufacturado/"+url.PathEscape(in.ID), in, &out); err != nil {
		return entity.Product{}, err
	}
	return out, nil
}

// Delete elimina el artículo por id.
func (p *ProductsClient) Delete(ctx context.Context, id string) error {
	return p.c.Delete(ctx, "/articuloManufacturado/"+url.PathEscape(id))
}

// ── Insumos ───────────────────────────────────────────────────────────────────

// SuppliesClient consume los endpoints de insumos.
type SuppliesClient struct{ c *Client }

// NewSuppliesClient construye el cliente de insumos.
func NewSuppliesClient(c *Client) *SuppliesClient { return &SuppliesClient{c: c} }

// List obtiene el catálogo de referencia de insumos.
func (s *SuppliesClient) List(ctx context.Context) ([]entity.Supply, error) {
	var out []entity.Supply
	if err := s.c.Get(ctx, "/articuloInsumo/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoriesClient consume los endpoints de categorías como recurso propio.
type CategoriesClient struct{ c *Client }

// NewCategoriesClient construye el cliente de categorías.
func NewCategoriesClient(c *Client) *CategoriesClient { return &CategoriesClient{c: c} }

// List obtiene todas las categorías, incluidas las que todavía no tienen productos.
func (cc *CategoriesClient) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := cc.c.Get(ctx, "/categorias/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta una categoría.
func (cc *CategoriesClient) Create(ctx context.Context, in entity.Category) (entity.Category, error) {
	var out entity.Category
	if err := cc.c.Post(ctx, "/categorias", in, &out); err != nil {
		return entity.Category{}, err
	}
	return out, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomersClient consume los endpoints de clientes del restaurante.
type CustomersClient struct{ c *Client }

// NewCustomersClient construye el cliente de clientes.
func NewCustomersClient(c *Client) *CustomersClient { return &CustomersClient{c: c} }

func (cc *CustomersClient) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := cc.c.Get(ctx, "/clientes/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CustomersClient) Create(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	var out entity.Customer
	if err := cc.c.Post(ctx, "/clientes", in, &out); err != nil {
		return entity.Customer{}, err
	}
	return out, nil
}

func (cc *CustomersClient) Update(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	var out entity.Customer
	if err := cc.c.Put(ctx, "/clientes/"+url.PathEscape(in.ID), in, &out); err != nil {
		return entity.Customer{}, err
	}
	return out, nil
}

func (cc *CustomersClient) Delete(ctx context.Context, id string) error {
	return cc.c.Delete(ctx, "/clientes/"+url.PathEscape(id))
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// EmployeesClient consume los endpoints de empleados.
type EmployeesClient struct{ c *Client }

// NewEmployeesClient construye el cliente de empleados.
func NewEmployeesClient(c *Client) *EmployeesClient { return &EmployeesClient{c: c} }

func (ec *EmployeesClient) List(ctx context.Context) ([]entity.Employee, error) {
	var out []entity.Employee
	if err := ec.c.Get(ctx, "/empleados/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ec *EmployeesClient) Create(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	var out entity.Employee
	if err := ec.c.Post(ctx, "/empleados", in, &out); err != nil {
		return entity.Employee{}, err
	}
	return out, nil
}

func (ec *EmployeesClient) Update(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	var out entity.Employee
	if err := ec.c.Put(ctx, "/empleados/"+url.PathEscape(in.ID), in, &out); err != nil {
		return entity.Employee{}, err
	}
	return out, nil
}

func (ec *EmployeesClient) Delete(ctx context.Context, id string) error {
	return ec.c.Delete(ctx, "/empleados/"+url.PathEscape(id))
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// OrdersClient consume los endpoints de pedidos.
type OrdersClient struct{ c *Client }

// NewOrdersClient construye el cliente de pedidos.
func NewOrdersClient(c *Client) *OrdersClient { return &OrdersClient{c: c} }

func (oc *OrdersClient) List(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := oc.c.Get(ctx, "/pedidos/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus cambia el estado del pedido en el servidor.
func (oc *OrdersClient) UpdateStatus(ctx context.Context, id, status string) (entity.Order, error) {
	var out entity.Order
	body := map[string]string{"status": status}
	if err := oc.c.Put(ctx, fmt.Sprintf("/pedidos/%s/estado", url.PathEscape(id)), body, &out); err != nil {
		return entity.Order{}, err
	}
	return out, nil
}

// ── Delivery ──────────────────────────────────────────────────────────────────

// DeliveriesClient consume los endpoints de seguimiento de entregas.
type DeliveriesClient struct{ c *Client }

// NewDeliveriesClient construye el cliente de delivery.
func NewDeliveriesClient(c *Client) *DeliveriesClient { return &DeliveriesClient{c: c} }

func (dc *DeliveriesClient) List(ctx context.Context) ([]entity.DeliveryInfo, error) {
	var out []entity.DeliveryInfo
	if err := dc.c.Get(ctx, "/delivery/todos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Assign asigna un repartidor a un pedido; el servidor crea el DeliveryInfo en estado assigned.
func (dc *DeliveriesClient) Assign(ctx context.Context, orderID, personID string) (entity.DeliveryInfo, error) {
	var out entity.DeliveryInfo
	body := map[string]string{"orderId": orderID, "deliveryPersonId": personID}
	if err := dc.c.Post(ctx, "/delivery/asignar", body, &out); err != nil {
		return entity.DeliveryInfo{}, err
	}
	return out, nil
}

// UpdateStatus cambia el estado del seguimiento de entrega.
func (dc *DeliveriesClient) UpdateStatus(ctx context.Context, id, status string) (entity.DeliveryInfo, error) {
	var out entity.DeliveryInfo
	body := map[string]string{"status": status}
	if err := dc.c.Put(ctx, fmt.Sprintf("/delivery/%s/estado", url.PathEscape(id)), body, &out); err != nil {
		return entity.DeliveryInfo{}, err
	}
	return out, nil
}

// ── Credenciales ──────────────────────────────────────────────────────────────

// CredentialsClient reenvía operaciones de credenciales al proveedor upstream.
type CredentialsClient struct{ c *Client }

// NewCredentialsClient construye el cliente de credenciales.
func NewCredentialsClient(c *Client) *CredentialsClient { return &CredentialsClient{c: c} }

// ChangePassword reenvía el cambio de contraseña del usuario autenticado.
func (cr *CredentialsClient) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return cr.c.Post(ctx, "/usuarios/cambiar-password", body, nil)
}
