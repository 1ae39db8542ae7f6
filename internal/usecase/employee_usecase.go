package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type EmployeeInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	EmpCode     string `json:"empCode"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Shift       string `json:"shift"`
}

type EmployeeUsecase struct {
	employees repository.EmployeeRepository
}

func NewEmployeeUsecase(employees repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{employees: employees}
}

func (u *EmployeeUsecase) List(ctx context.Context, ownerID int64) ([]model.Employee, error) {
	return u.employees.ListByOwner(ctx, ownerID)
}

func (u *EmployeeUsecase) Get(ctx context.Context, ownerID int64, employeeID int64) (model.Employee, error) {
	e, err := u.employees.FindByID(ctx, ownerID, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Employee{}, NewHTTPError(http.StatusNotFound, "employee not found")
	}
	return e, err
}

func (u *EmployeeUsecase) Create(ctx context.Context, ownerID int64, plan model.Plan, in EmployeeInput) (model.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return model.Employee{}, err
	}

	count, err := u.employees.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Employee{}, err
	}
	if !withinCap(plan.MaxEmployees, count) {
		return model.Employee{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	exists, err := u.employees.EmpCodeExists(ctx, ownerID, in.EmpCode, 0)
	if err != nil {
		return model.Employee{}, err
	}
	if exists {
		return model.Employee{}, NewHTTPError(http.StatusConflict, "employee code already exists")
	}

	e := model.Employee{
		OwnerID:     ownerID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		EmpCode:     in.EmpCode,
		Email:       in.Email,
		Phone:       in.Phone,
		Department:  in.Department,
		Designation: in.Designation,
		Shift:       in.Shift,
		Status:      1,
	}
	id, err := u.employees.Create(ctx, e)
	if err != nil {
		return model.Employee{}, err
	}
	e.ID = id
	return e, nil
}

func (u *EmployeeUsecase) Update(ctx context.Context, ownerID int64, employeeID int64, in EmployeeInput) (model.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return model.Employee{}, err
	}

	current, err := u.employees.FindByID(ctx, ownerID, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Employee{}, NewHTTPError(http.StatusNotFound, "employee not found")
	}
	if err != nil {
		return model.Employee{}, err
	}

	exists, err := u.employees.EmpCodeExists(ctx, ownerID, in.EmpCode, employeeID)
	if err != nil {
		return model.Employee{}, err
	}
	if exists {
		return model.Employee{}, NewHTTPError(http.StatusConflict, "employee code already exists")
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.EmpCode = in.EmpCode
	current.Email = in.Email
	current.Phone = in.Phone
	current.Department = in.Department
	current.Designation = in.Designation
	current.Shift = in.Shift

	if err := u.employees.Update(ctx, current); err != nil {
		return model.Employee{}, err
	}
	return current, nil
}

func (u *EmployeeUsecase) Delete(ctx context.Context, ownerID int64, employeeID int64) error {
	err := u.employees.Delete(ctx, ownerID, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "employee not found")
	}
	return err
}

func validateEmployeeInput(in EmployeeInput) error {
	if in.FirstName == "" || in.LastName == "" {
		return NewHTTPError(http.StatusBadRequest, "firstName and lastName are required")
	}
	if in.EmpCode == "" {
		return NewHTTPError(http.StatusBadRequest, "empCode is required")
	}
	return nil
}
