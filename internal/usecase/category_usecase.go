package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

type CategoryInput struct {
	Name string `json:"name"`
}

type CategoryUsecase struct {
	categories repository.CategoryRepository
}

func NewCategoryUsecase(categories repository.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

func (u *CategoryUsecase) List(ctx context.Context, ownerID int64) ([]model.Category, error) {
	return u.categories.ListByOwner(ctx, ownerID)
}

func (u *CategoryUsecase) Create(ctx context.Context, ownerID int64, plan model.Plan, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	count, err := u.categories.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Category{}, err
	}
	if !withinCap(plan.MaxCategories, count) {
		return model.Category{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	// 名前のテナント内一意はDBのunique indexで担保。重複は先に弾いて409にする
	existing, err := u.categories.ListByOwner(ctx, ownerID)
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return model.Category{}, NewHTTPError(http.StatusConflict, "category already exists")
		}
	}

	c := model.Category{OwnerID: ownerID, Name: name, Status: 1}
	id, err := u.categories.Create(ctx, c)
	if err != nil {
		return model.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, ownerID int64, categoryID int64, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	current, err := u.categories.FindByID(ctx, ownerID, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, err
	}

	current.Name = name
	if err := u.categories.Update(ctx, current); err != nil {
		return model.Category{}, err
	}
	return current, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, ownerID int64, categoryID int64) error {
	err := u.categories.Delete(ctx, ownerID, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	return err
}
