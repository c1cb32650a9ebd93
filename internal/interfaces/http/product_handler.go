package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
	"github.com/elbuensabor/backoffice-api/internal/catalog"
	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/editor"
)

// ProductHandler maneja la página de productos: listado filtrado, sesiones
// del editor y la confirmación de borrado en dos pasos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Page godoc
// @Summary      Página de productos (filtrada)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring de nombre o descripción"
// @Param        category  query  string  false  "Nombre exacto de categoría"
// @Success      200  {object}  dto.ProductsPageResponse
// @Router       /products [get]
func (h *ProductHandler) Page(c *fiber.Ctx) error {
	// Primer montaje de la página: un solo fetch. Si ese fetch falla, la
	// página sale del estado de carga igual (lista vacía + diagnóstico),
	// nunca queda colgada en "cargando".
	if _, _, state, _ := h.uc.Page("", ""); state == catalog.Loading {
		_ = h.uc.Load(c.Context())
	}
	items, categories, state, loadErr := h.uc.Page(c.Query("search"), c.Query("category"))
	resp := dto.ProductsPageResponse{
		Items:      items,
		Categorias: categories,
		Estado:     loadStateLabel(state),
	}
	if loadErr != nil {
		resp.Diagnostico = loadErr.Error()
	}
	return c.JSON(resp)
}

// Reload godoc
// @Summary      Recargar el catálogo desde el API de negocio
// @Tags         products
// @Security     Bearer
// @Success      204
// @Router       /products/load [post]
func (h *ProductHandler) Reload(c *fiber.Ctx) error {
	if err := h.uc.Load(c.Context()); err != nil {
		// El estado Failed ya quedó registrado en el store; la página lo
		// mostrará como diagnóstico. Acá solo se informa el fallo puntual.
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OpenEditor godoc
// @Summary      Abrir el editor de producto (alta o edición)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenEditorRequest  true  "productId vacío = alta"
// @Success      201  {object}  dto.EditorResponse
// @Router       /products/editor [post]
func (h *ProductHandler) OpenEditor(c *fiber.Ctx) error {
	var in dto.OpenEditorRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, form, err := h.uc.OpenEditor(c.Context(), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(editorResponse(id, form))
}

// Editor devuelve el estado actual de una sesión del editor.
func (h *ProductHandler) Editor(c *fiber.Ctx) error {
	form, err := h.uc.Editor(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(editorResponse(c.Params("sid"), form))
}

// SetFields pisa los campos de nivel superior del formulario.
func (h *ProductHandler) SetFields(c *fiber.Ctx) error {
	form, err := h.uc.Editor(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EditorFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := form.SetFields(in.Denominacion, in.Descripcion, in.CategoriaID, in.Preparacion, in.PrecioVenta, in.TiempoEstimadoMinutos); err != nil {
		return respondError(c, err)
	}
	return c.JSON(editorResponse(c.Params("sid"), form))
}

// AddLine agrega una línea de ingrediente con los valores por defecto.
func (h *ProductHandler) AddLine(c *fiber.Ctx) error {
	form, err := h.uc.Editor(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	if err := form.AddLine(); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(editorResponse(c.Params("sid"), form))
}

// UpdateLine aplica un cambio etiquetado sobre una línea. Un kind desconocido
// es un 400, no un no-op silencioso.
func (h *ProductHandler) UpdateLine(c *fiber.Ctx) error {
	form, err := h.uc.Editor(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	var in dto.LineChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	change, err := lineChangeFrom(form, in)
	if err != nil {
		return respondError(c, err)
	}
	if err := form.UpdateLine(index, change); err != nil {
		return respondError(c, err)
	}
	return c.JSON(editorResponse(c.Params("sid"), form))
}

// RemoveLine quita la línea en index; las posteriores corren una posición.
func (h *ProductHandler) RemoveLine(c *fiber.Ctx) error {
	form, err := h.uc.Editor(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	if err := form.RemoveLine(index); err != nil {
		return respondError(c, err)
	}
	return c.JSON(editorResponse(c.Params("sid"), form))
}

// Submit godoc
// @Summary      Enviar el formulario del editor
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "Id de sesión del editor"
// @Success      200  {object}  entity.Product
// @Failure      422  {object}  dto.ErrorResponse  "Campos requeridos faltantes; el formulario sigue abierto"
// @Router       /products/editor/{sid}/submit [post]
func (h *ProductHandler) Submit(c *fiber.Ctx) error {
	saved, err := h.uc.Submit(c.Context(), c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

// DiscardEditor descarta la sesión sin guardar.
func (h *ProductHandler) DiscardEditor(c *fiber.Ctx) error {
	h.uc.CloseEditor(c.Params("sid"))
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestDelete pasa la fila a confirmación pendiente (slot único,
// gana el último pedido).
func (h *ProductHandler) RequestDelete(c *fiber.Ctx) error {
	if err := h.uc.RequestDelete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteStateResponse{Pending: h.uc.PendingDelete()})
}

// ConfirmDelete confirma el borrado pendiente.
func (h *ProductHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := h.uc.ConfirmDelete(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

// CancelDelete cancela la confirmación pendiente sin tocar el listado.
func (h *ProductHandler) CancelDelete(c *fiber.Ctx) error {
	h.uc.CancelDelete()
	return c.JSON(dto.DeleteStateResponse{})
}

// DeleteState devuelve el estado de la máquina de confirmación.
func (h *ProductHandler) DeleteState(c *fiber.Ctx) error {
	return c.JSON(dto.DeleteStateResponse{Pending: h.uc.PendingDelete()})
}

func editorResponse(id string, form *editor.Form) dto.EditorResponse {
	return dto.EditorResponse{
		SessionID:  id,
		Editing:    form.Editing(),
		Values:     form.Values(),
		Insumos:    form.Supplies(),
		Categorias: form.Categories(),
	}
}

func lineChangeFrom(form *editor.Form, in dto.LineChangeRequest) (editor.LineChange, error) {
	switch in.Kind {
	case dto.LineChangeSetInsumo:
		for _, s := range form.Supplies() {
			if s.ID == in.InsumoID {
				return editor.SetSupply{Item: s}, nil
			}
		}
		return nil, domain.ErrNotFound
	case dto.LineChangeSetCantidad:
		if in.Cantidad == nil {
			return nil, domain.ErrInvalidInput
		}
		return editor.SetQuantity{Value: *in.Cantidad}, nil
	}
	return nil, domain.ErrInvalidInput
}

func loadStateLabel(s catalog.LoadState) string {
	switch s {
	case catalog.Ready:
		return "ready"
	case catalog.Failed:
		return "failed"
	}
	return "loading"
}
