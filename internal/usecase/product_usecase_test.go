package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)

	products.On("CountByOwner", mock.Anything, int64(1)).Return(int64(3), nil)
	products.On("SKUExists", mock.Anything, int64(1), "SKU-1", int64(0)).Return(false, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.OwnerID == 1 && p.SKU == "SKU-1" && p.Status == 1
	})).Return(int64(9), nil)

	u := NewProductUsecase(products)

	maxProducts := int64(100)
	out, err := u.Create(ctx, 1, model.Plan{MaxProducts: &maxProducts}, ProductInput{
		Name: "Coffee", SKU: "SKU-1", Price: 100, Quantity: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	products.AssertExpectations(t)
}

func TestProductUsecase_Create_PlanLimit(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	products.On("CountByOwner", mock.Anything, int64(1)).Return(int64(100), nil)

	u := NewProductUsecase(products)

	maxProducts := int64(100)
	_, err := u.Create(ctx, 1, model.Plan{MaxProducts: &maxProducts}, ProductInput{
		Name: "Coffee", SKU: "SKU-1",
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	assert.Equal(t, "plan limit reached", he.Message)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_Create_DuplicateSKU(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	products.On("CountByOwner", mock.Anything, int64(1)).Return(int64(0), nil)
	products.On("SKUExists", mock.Anything, int64(1), "SKU-1", int64(0)).Return(true, nil)

	u := NewProductUsecase(products)

	_, err := u.Create(ctx, 1, model.Plan{}, ProductInput{Name: "Coffee", SKU: "SKU-1"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestProductUsecase_Update_KeepingOwnSKU(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)

	products.On("FindByID", mock.Anything, int64(1), int64(9)).Return(model.Product{
		ID: 9, OwnerID: 1, Name: "Coffee", SKU: "SKU-1", Status: 1,
	}, nil)
	// 自分のIDを除外して重複を見る
	products.On("SKUExists", mock.Anything, int64(1), "SKU-1", int64(9)).Return(false, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 9 && p.Name == "Espresso"
	})).Return(nil)

	u := NewProductUsecase(products)

	out, err := u.Update(ctx, 1, 9, ProductInput{Name: "Espresso", SKU: "SKU-1", Price: 120})
	assert.NoError(t, err)
	assert.Equal(t, "Espresso", out.Name)
	products.AssertExpectations(t)
}
