package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
)

// DeliveryHandler maneja la página de entregas: asignación de repartidor y
// avance del estado de cada entrega.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entregas en curso
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.DeliveryInfo
// @Router       /delivery [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Assign godoc
// @Summary      Asignar repartidor a un pedido
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.DeliveryInfo
// @Router       /delivery/assign [post]
func (h *DeliveryHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.uc.Assign(c.Context(), in.OrderID, in.DeliveryPersonID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// ChangeStatus godoc
// @Summary      Avanzar el estado de una entrega
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Id de entrega"
// @Success      200  {object}  entity.DeliveryInfo
// @Failure      400  {object}  dto.ErrorResponse  "Transición de estado no permitida"
// @Router       /delivery/{id}/status [put]
func (h *DeliveryHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.StatusChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}
