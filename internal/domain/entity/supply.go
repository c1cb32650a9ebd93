package entity

import "github.com/shopspring/decimal"

// Estados de recursos con alta/baja lógica.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Supply es un insumo de stock consumible por recetas (harina, queso, etc.),
// controlado por unidad de medida y nivel de stock.
type Supply struct {
	ID           string           `json:"id"`
	Denominacion string           `json:"denominacion"`
	CategoryID   string           `json:"categoriaId"`
	Categoria    *CategoryRef     `json:"categoria,omitempty"`
	UnidadMedida string           `json:"unidadMedida"`
	PrecioCompra decimal.Decimal  `json:"precioCompra"`
	StockActual  decimal.Decimal  `json:"stockActual"`
	StockMinimo  *decimal.Decimal `json:"stockMinimo,omitempty"`
	Status       string           `json:"status,omitempty"` // active, inactive
}

// BelowMinimum indica si el stock actual está por debajo del umbral mínimo (si existe).
func (s Supply) BelowMinimum() bool {
	return s.StockMinimo != nil && s.StockActual.LessThan(*s.StockMinimo)
}
