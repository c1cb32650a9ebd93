package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// CustomerHandler maneja la página de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes (con filtro de texto)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring de nombre o email"
// @Success      200  {array}  entity.Customer
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Customer
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  entity.Customer
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	saved, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     Bearer
// @Success      204
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
