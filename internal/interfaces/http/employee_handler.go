package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elbuensabor/backoffice-api/internal/application/dto"
	"github.com/elbuensabor/backoffice-api/internal/application/usecase"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// EmployeeHandler maneja la página de empleados (solo admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear empleado con su rol
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Employee
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in entity.Employee
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
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  entity.Employee
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in entity.Employee
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
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Success      204
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
