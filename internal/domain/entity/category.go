package entity

// Category representa una categoría de productos como entidad propia.
// Se obtiene del API de negocio de forma independiente: una categoría recién
// creada y todavía sin productos es visible igual.
type Category struct {
	ID           string `json:"id"`
	Denominacion string `json:"denominacion"`
	Status       string `json:"status,omitempty"` // active, inactive
}

// Ref devuelve la referencia denormalizada que viaja embebida en productos e insumos.
func (c Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Denominacion: c.Denominacion}
}
