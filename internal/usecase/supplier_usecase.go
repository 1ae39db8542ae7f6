package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type SupplierInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type SupplierUsecase struct {
	suppliers repository.SupplierRepository
}

func NewSupplierUsecase(suppliers repository.SupplierRepository) *SupplierUsecase {
	return &SupplierUsecase{suppliers: suppliers}
}

func (u *SupplierUsecase) List(ctx context.Context, ownerID int64) ([]model.Supplier, error) {
	return u.suppliers.ListByOwner(ctx, ownerID)
}

func (u *SupplierUsecase) Get(ctx context.Context, ownerID int64, supplierID int64) (model.Supplier, error) {
	s, err := u.suppliers.FindByID(ctx, ownerID, supplierID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	return s, err
}

func (u *SupplierUsecase) Create(ctx context.Context, ownerID int64, plan model.Plan, in SupplierInput) (model.Supplier, error) {
	if in.Name == "" {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	count, err := u.suppliers.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Supplier{}, err
	}
	if !withinCap(plan.MaxSuppliers, count) {
		return model.Supplier{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	s := model.Supplier{
		OwnerID: ownerID,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Status:  1,
	}
	id, err := u.suppliers.Create(ctx, s)
	if err != nil {
		return model.Supplier{}, err
	}
	s.ID = id
	return s, nil
}

func (u *SupplierUsecase) Update(ctx context.Context, ownerID int64, supplierID int64, in SupplierInput) (model.Supplier, error) {
	if in.Name == "" {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	current, err := u.suppliers.FindByID(ctx, ownerID, supplierID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	if err != nil {
		return model.Supplier{}, err
	}

	current.Name = in.Name
	current.Phone = in.Phone
	current.Email = in.Email
	current.Address = in.Address
	current.City = in.City

	if err := u.suppliers.Update(ctx, current); err != nil {
		return model.Supplier{}, err
	}
	return current, nil
}

func (u *SupplierUsecase) Delete(ctx context.Context, ownerID int64, supplierID int64) error {
	err := u.suppliers.Delete(ctx, ownerID, supplierID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	return err
}
