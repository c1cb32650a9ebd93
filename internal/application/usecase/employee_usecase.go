package usecase

import (
	"context"
	"strings"

	"github.com/elbuensabor/backoffice-api/internal/domain"
	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// EmployeesAPI puerto del recurso de empleados.
type EmployeesAPI interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Create(ctx context.Context, in entity.Employee) (entity.Employee, error)
	Update(ctx context.Context, in entity.Employee) (entity.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeUseCase CRUD de empleados. El rol asignado debe pertenecer a la
// enumeración cerrada de roles.
type EmployeeUseCase struct {
	api EmployeesAPI
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(api EmployeesAPI) *EmployeeUseCase {
	return &EmployeeUseCase{api: api}
}

// List obtiene los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]entity.Employee, error) {
	return uc.api.List(ctx)
}

// Create da de alta un empleado con rol válido.
func (uc *EmployeeUseCase) Create(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	if err := validateEmployee(in); err != nil {
		return entity.Employee{}, err
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	return uc.api.Create(ctx, in)
}

// Update reemplaza el empleado identificado por in.ID.
func (uc *EmployeeUseCase) Update(ctx context.Context, in entity.Employee) (entity.Employee, error) {
	if in.ID == "" {
		return entity.Employee{}, domain.ErrInvalidInput
	}
	if err := validateEmployee(in); err != nil {
		return entity.Employee{}, err
	}
	return uc.api.Update(ctx, in)
}

// Delete elimina un empleado por id.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.api.Delete(ctx, id)
}

func validateEmployee(in entity.Employee) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return domain.ErrInvalidInput
	}
	return nil
}
