package dto

import (
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// OpenEditorRequest abre una sesión de edición. ProductID vacío = alta.
type OpenEditorRequest struct {
	ProductID string `json:"productId"`
}

// EditorResponse estado de una sesión del editor de producto.
type EditorResponse struct {
	SessionID  string            `json:"sessionId"`
	Editing    bool              `json:"editing"`
	Values     entity.Product    `json:"values"`
	Insumos    []entity.Supply   `json:"insumos"`
	Categorias []entity.Category `json:"categorias"`
}

// EditorFieldsRequest campos de nivel superior del formulario.
type EditorFieldsRequest struct {
	Denominacion          string          `json:"denominacion"`
	Descripcion           string          `json:"descripcion"`
	CategoriaID           string          `json:"categoriaId"`
	Preparacion           string          `json:"preparacion"`
	PrecioVenta           decimal.Decimal `json:"precioVenta"`
	TiempoEstimadoMinutos int             `json:"tiempoEstimadoMinutos"`
}

// Tipos de cambio de línea del editor. Cualquier otro valor es un 400, no un
// no-op silencioso.
const (
	LineChangeSetInsumo   = "setInsumo"
	LineChangeSetCantidad = "setCantidad"
)

// LineChangeRequest cambio etiquetado sobre una línea de ingrediente.
type LineChangeRequest struct {
	Kind     string           `json:"kind"` // LineChangeSetInsumo | LineChangeSetCantidad
	InsumoID string           `json:"insumoId,omitempty"`
	Cantidad *decimal.Decimal `json:"cantidad,omitempty"`
}

// ProductsPageResponse es la respuesta de la página de productos: filas ya
// filtradas más los metadatos que la página necesita (categorías derivadas y
// estado de carga, para distinguir "sin productos" de "falló la carga").
type ProductsPageResponse struct {
	Items       []entity.Product `json:"items"`
	Categorias  []string         `json:"categorias"`
	Estado      string           `json:"estado"` // loading | ready | failed
	Diagnostico string           `json:"diagnostico,omitempty"`
}

// DeleteStateResponse estado de la máquina de confirmación de borrado.
type DeleteStateResponse struct {
	Pending string `json:"pending,omitempty"` // id en confirmación, vacío = idle
}
