package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type ProductInput struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	Quantity      int64   `json:"quantity"`
	QuantityAlert int64   `json:"quantityAlert"`
	ProductType   string  `json:"productType"`
	CreatedBy     string  `json:"createdBy"`
}

type ProductUsecase struct {
	products repository.ProductRepository
}

func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

func (u *ProductUsecase) List(ctx context.Context, ownerID int64) ([]model.Product, error) {
	return u.products.ListByOwner(ctx, ownerID)
}

func (u *ProductUsecase) Get(ctx context.Context, ownerID int64, productID int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, ownerID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	return p, err
}

func (u *ProductUsecase) Create(ctx context.Context, ownerID int64, plan model.Plan, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	count, err := u.products.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Product{}, err
	}
	if !withinCap(plan.MaxProducts, count) {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	exists, err := u.products.SKUExists(ctx, ownerID, in.SKU, 0)
	if err != nil {
		return model.Product{}, err
	}
	if exists {
		return model.Product{}, NewHTTPError(http.StatusConflict, "sku already exists")
	}

	p := model.Product{
		OwnerID:       ownerID,
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		Brand:         in.Brand,
		Price:         in.Price,
		Unit:          in.Unit,
		Quantity:      in.Quantity,
		QuantityAlert: in.QuantityAlert,
		ProductType:   in.ProductType,
		Status:        1,
		CreatedBy:     in.CreatedBy,
	}
	id, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, ownerID int64, productID int64, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	current, err := u.products.FindByID(ctx, ownerID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, err
	}

	exists, err := u.products.SKUExists(ctx, ownerID, in.SKU, productID)
	if err != nil {
		return model.Product{}, err
	}
	if exists {
		return model.Product{}, NewHTTPError(http.StatusConflict, "sku already exists")
	}

	current.Name = in.Name
	current.SKU = in.SKU
	current.Category = in.Category
	current.Brand = in.Brand
	current.Price = in.Price
	current.Unit = in.Unit
	current.Quantity = in.Quantity
	current.QuantityAlert = in.QuantityAlert
	current.ProductType = in.ProductType

	if err := u.products.Update(ctx, current); err != nil {
		return model.Product{}, err
	}
	return current, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, ownerID int64, productID int64) error {
	err := u.products.Delete(ctx, ownerID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	return err
}

func validateProductInput(in ProductInput) error {
	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.SKU == "" {
		return NewHTTPError(http.StatusBadRequest, "sku is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must not be negative")
	}
	return nil
}
