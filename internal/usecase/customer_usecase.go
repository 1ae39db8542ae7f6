package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type CustomerUsecase struct {
	customers repository.CustomerRepository
}

func NewCustomerUsecase(customers repository.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

func (u *CustomerUsecase) List(ctx context.Context, ownerID int64) ([]model.Customer, error) {
	return u.customers.ListByOwner(ctx, ownerID)
}

func (u *CustomerUsecase) Get(ctx context.Context, ownerID int64, customerID int64) (model.Customer, error) {
	c, err := u.customers.FindByID(ctx, ownerID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c, err
}

func (u *CustomerUsecase) Create(ctx context.Context, ownerID int64, plan model.Plan, in CustomerInput) (model.Customer, error) {
	if in.Name == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	count, err := u.customers.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Customer{}, err
	}
	if !withinCap(plan.MaxCustomers, count) {
		return model.Customer{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	c := model.Customer{
		OwnerID: ownerID,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Status:  1,
	}
	id, err := u.customers.Create(ctx, c)
	if err != nil {
		return model.Customer{}, err
	}
	c.ID = id
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, ownerID int64, customerID int64, in CustomerInput) (model.Customer, error) {
	if in.Name == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	current, err := u.customers.FindByID(ctx, ownerID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return model.Customer{}, err
	}

	current.Name = in.Name
	current.Phone = in.Phone
	current.Email = in.Email
	current.Address = in.Address
	current.City = in.City

	if err := u.customers.Update(ctx, current); err != nil {
		return model.Customer{}, err
	}
	return current, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, ownerID int64, customerID int64) error {
	err := u.customers.Delete(ctx, ownerID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return err
}
