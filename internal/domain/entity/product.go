package entity

import "github.com/shopspring/decimal"

// Tipos de detalle: un ingrediente puede ser un insumo crudo o un sub-producto compuesto.
const (
	DetailTypeSupply  = "INSUMO"
	DetailTypeProduct = "PRODUCTO"
)

// CategoryRef referencia denormalizada a una categoría (id + denominación),
// tal como viaja embebida en los artículos del API de negocio.
type CategoryRef struct {
	ID           string `json:"id"`
	Denominacion string `json:"denominacion"`
}

// Product es un artículo manufacturado del menú: el plato que se vende,
// con su receta (Details) compuesta de insumos y sub-productos.
// Invariantes: CategoryID referencia una categoría existente; Price y
// PrepMinutes son no negativos.
type Product struct {
	ID           string          `json:"id"`
	Denominacion string          `json:"denominacion"`
	Descripcion  string          `json:"descripcion"`
	CategoryID   string          `json:"categoriaId"`
	Categoria    CategoryRef     `json:"categoria"`
	Imagenes     []string        `json:"imagenes"`
	Price        decimal.Decimal `json:"precioVenta"`
	PrepMinutes  int             `json:"tiempoEstimadoMinutos"`
	Preparacion  string          `json:"preparacion"`
	Details      []ProductDetail `json:"detalles"`
}

// ProductDetail es una línea de ingrediente: cantidad + referencia a un
// insumo o a otro producto. Invariante: Cantidad >= 0 y el ítem referenciado
// existe en el catálogo de referencia al momento de guardar.
type ProductDetail struct {
	Tipo     string          `json:"tipo"` // DetailTypeSupply | DetailTypeProduct
	Cantidad decimal.Decimal `json:"cantidad"`
	Insumo   *Supply         `json:"item,omitempty"`
	Producto *Product        `json:"producto,omitempty"`
}

// ItemName devuelve la denominación del ítem referenciado, sea insumo o sub-producto.
func (d ProductDetail) ItemName() string {
	switch {
	case d.Tipo == DetailTypeSupply && d.Insumo != nil:
		return d.Insumo.Denominacion
	case d.Tipo == DetailTypeProduct && d.Producto != nil:
		return d.Producto.Denominacion
	}
	return ""
}

// Clone devuelve una copia profunda del producto (detalles e imágenes incluidos).
// El editor trabaja siempre sobre una copia para no mutar el store de la página.
func (p Product) Clone() Product {
	out := p
	out.Imagenes = append([]string(nil), p.Imagenes...)
	out.Details = make([]ProductDetail, len(p.Details))
	for i, d := range p.Details {
		nd := d
		if d.Insumo != nil {
			ins := *d.Insumo
			nd.Insumo = &ins
		}
		if d.Producto != nil {
			sub := d.Producto.Clone()
			nd.Producto = &sub
		}
		out.Details[i] = nd
	}
	return out
}
