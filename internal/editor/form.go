// Package editor implementa el formulario de producto: alta o edición de un
// artículo con su lista de líneas de ingrediente. El formulario trabaja sobre
// una copia del registro; los cambios de línea son variantes etiquetadas, así
// un campo desconocido es imposible de representar en vez de un no-op
// silencioso.
package editor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// LineChange es una mutación de una línea de ingrediente. Variante cerrada:
// SetSupply o SetQuantity, nada más.
type LineChange interface {
	apply(d *entity.ProductDetail)
}

// SetSupply cambia el insumo referenciado por la línea.
type SetSupply struct {
	Item entity.Supply
}

func (c SetSupply) apply(d *entity.ProductDetail) {
	item := c.Item
	d.Tipo = entity.DetailTypeSupply
	d.Insumo = &item
	d.Producto = nil
}

// SetQuantity cambia la cantidad de la línea.
type SetQuantity struct {
	Value decimal.Decimal
}

func (c SetQuantity) apply(d *entity.ProductDetail) {
	d.Cantidad = c.Value
}

// ValidationError lista los campos requeridos que faltan o violan un
// invariante. El envío que la produce no cierra el formulario.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Fields, ", ")
}

// Form es el estado del formulario de producto. Seguro para uso concurrente:
// varias peticiones pueden llegar con el mismo id de sesión a la vez.
type Form struct {
	mu     sync.Mutex
	values entity.Product
	closed bool

	// fijos desde la construcción, no necesitan el lock
	editing    bool
	supplies   []entity.Supply
	categories []entity.Category
}

// NewCreate abre el formulario en modo alta, con el registro canónico vacío.
func NewCreate(supplies []entity.Supply, categories []entity.Category) *Form {
	return &Form{
		values: entity.Product{
			Imagenes: []string{},
			Details:  []entity.ProductDetail{},
		},
		supplies:   supplies,
		categories: categories,
	}
}

// NewEdit abre el formulario en modo edición con una copia completa del registro.
func NewEdit(p entity.Product, supplies []entity.Supply, categories []entity.Category) *Form {
	return &Form{
		editing:    true,
		values:     p.Clone(),
		supplies:   supplies,
		categories: categories,
	}
}

// Editing indica si el formulario está en modo edición (true) o alta (false).
func (f *Form) Editing() bool { return f.editing }

// Closed indica si el formulario ya se cerró por un envío exitoso.
func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Values devuelve una copia del estado actual del formulario.
func (f *Form) Values() entity.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

// Categories devuelve las opciones de categoría del formulario.
func (f *Form) Categories() []entity.Category {
	return append([]entity.Category(nil), f.categories...)
}

// Supplies devuelve el catálogo de referencia de insumos.
func (f *Form) Supplies() []entity.Supply {
	return append([]entity.Supply(nil), f.supplies...)
}

// SetFields pisa los campos de nivel superior del formulario (no las líneas).
func (f *Form) SetFields(denominacion, descripcion, categoryID, preparacion string, price decimal.Decimal, prepMinutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrFormClosed
	}
	f.values.Denominacion = denominacion
	f.values.Descripcion = descripcion
	f.values.CategoryID = categoryID
	f.values.Preparacion = preparacion
	f.values.Price = price
	f.values.PrepMinutes = prepMinutes
	return nil
}

// AddLine agrega una línea nueva: tipo insumo, cantidad cero, referenciando la
// primera entrada del catálogo de insumos.
func (f *Form) AddLine() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrFormClosed
	}
	if len(f.supplies) == 0 {
		return domain.ErrNoSupplies
	}
	first := f.supplies[0]
	f.values.Details = append(f.values.Details, entity.ProductDetail{
		Tipo:     entity.DetailTypeSupply,
		Cantidad: decimal.Zero,
		Insumo:   &first,
	})
	return nil
}

// RemoveLine quita la línea en index; las posteriores corren una posición.
// Un índice fuera de rango (por ejemplo un índice viejo tras otro borrado)
// devuelve ErrInvalidIndex y deja la lista intacta: nunca borra otra línea.
func (f *Form) RemoveLine(index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrFormClosed
	}
	if index < 0 || index >= len(f.values.Details) {
		return domain.ErrInvalidIndex
	}
	f.values.Details = append(f.values.Details[:index], f.values.Details[index+1:]...)
	return nil
}

// UpdateLine aplica el cambio etiquetado sobre la línea en index.
func (f *Form) UpdateLine(index int, change LineChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return domain.ErrFormClosed
	}
	if index < 0 || index >= len(f.values.Details) {
		return domain.ErrInvalidIndex
	}
	if change == nil {
		return fmt.Errorf("%w: cambio de línea nulo", domain.ErrInvalidInput)
	}
	change.apply(&f.values.Details[index])
	return nil
}

// Submit valida los campos requeridos y los invariantes; si todo está bien
// cierra el formulario y devuelve la instantánea completa para el store.
// Ante una violación devuelve *ValidationError y el formulario sigue abierto.
func (f *Form) Submit() (entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return entity.Product{}, domain.ErrFormClosed
	}
	var missing []string
	if strings.TrimSpace(f.values.Denominacion) == "" {
		missing = append(missing, "denominacion")
	}
	if strings.TrimSpace(f.values.Descripcion) == "" {
		missing = append(missing, "descripcion")
	}
	if f.values.Price.IsNegative() {
		missing = append(missing, "precioVenta")
	}
	cat, ok := f.findCategory(f.values.CategoryID)
	if !ok {
		missing = append(missing, "categoria")
	}
	if f.values.PrepMinutes < 0 {
		missing = append(missing, "tiempoEstimadoMinutos")
	}
	for i, d := range f.values.Details {
		if d.Cantidad.IsNegative() || !f.validDetailRef(d) {
			missing = append(missing, fmt.Sprintf("detalles[%d]", i))
		}
	}
	if len(missing) > 0 {
		return entity.Product{}, &ValidationError{Fields: missing}
	}

	f.values.Categoria = cat.Ref()
	f.closed = true
	return f.values.Clone(), nil
}

func (f *Form) findCategory(id string) (entity.Category, bool) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

// validDetailRef verifica que la línea referencie un ítem existente en el
// catálogo de referencia al momento de guardar.
func (f *Form) validDetailRef(d entity.ProductDetail) bool {
	switch d.Tipo {
	case entity.DetailTypeSupply:
		if d.Insumo == nil {
			return false
		}
		for _, s := range f.supplies {
			if s.ID == d.Insumo.ID {
				return true
			}
		}
		return false
	case entity.DetailTypeProduct:
		return d.Producto != nil
	}
	return false
}
