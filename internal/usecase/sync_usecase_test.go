package usecase

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSyncUC() (*SyncUsecase, *MockUserRepository, *MockProductRepository, *MockCategoryRepository, *MockCustomerRepository, *MockSupplierRepository, *MockEmployeeRepository, *MockOrderRepository, *MockPurchaseRepository, *MockShiftRepository, *MockPermissionRepository, *MockBarcodeRepository) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	customers := new(MockCustomerRepository)
	suppliers := new(MockSupplierRepository)
	employees := new(MockEmployeeRepository)
	orders := new(MockOrderRepository)
	purchases := new(MockPurchaseRepository)
	shifts := new(MockShiftRepository)
	perms := new(MockPermissionRepository)
	barcodes := new(MockBarcodeRepository)

	orderUC := NewOrderUsecase(orders, newMockTxManager())
	uc := NewSyncUsecase(users, products, categories, customers, suppliers, employees, orderUC, purchases, shifts, perms, barcodes)
	return uc, users, products, categories, customers, suppliers, employees, orders, purchases, shifts, perms, barcodes
}

func TestSyncUsecase_Export_IncludesAllCollections(t *testing.T) {
	uc, users, products, categories, customers, suppliers, employees, orders, purchases, shifts, perms, barcodes := newSyncUC()

	ownerID := int64(1)
	users.On("ListByTenant", mock.Anything, ownerID).Return([]model.User{
		{ID: 1, Name: "Owner", Email: "owner@example.com", Role: "owner", PasswordHash: "secret"},
		{ID: 2, Name: "Staff", Email: "staff@example.com", Role: "staff", PasswordHash: "secret"},
	}, nil)
	products.On("ListByOwner", mock.Anything, ownerID).Return([]model.Product{{ID: 10, Name: "Coffee"}}, nil)
	categories.On("ListByOwner", mock.Anything, ownerID).Return([]model.Category{{ID: 20, Name: "Drinks"}}, nil)
	customers.On("ListByOwner", mock.Anything, ownerID).Return([]model.Customer{{ID: 30}}, nil)
	suppliers.On("ListByOwner", mock.Anything, ownerID).Return([]model.Supplier{{ID: 40}}, nil)
	employees.On("ListByOwner", mock.Anything, ownerID).Return([]model.Employee{{ID: 50}}, nil)
	orders.On("ListByOwner", mock.Anything, ownerID).Return([]model.Order{{ID: 60, OrderNumber: "ORD-1", Items: `[]`}}, nil)
	purchases.On("ListByOwner", mock.Anything, ownerID).Return([]model.Purchase{{ID: 70}}, nil)
	purchases.On("ListItemsByOwner", mock.Anything, ownerID).Return([]model.PurchaseItem{{ID: 71, PurchaseID: 70}}, nil)
	shifts.On("ListByOwner", mock.Anything, ownerID).Return([]model.Shift{{ID: 80}}, nil)
	perms.On("ListByOwner", mock.Anything, ownerID).Return([]model.Permission{{ID: 90, Module: "products"}}, nil)
	barcodes.On("ListByOwner", mock.Anything, ownerID).Return([]model.Barcode{{ID: 100, BarcodeValue: "abc"}}, nil)

	out, err := uc.Export(context.Background(), ownerID)
	assert.NoError(t, err)

	assert.Len(t, out.Users, 2)
	assert.Equal(t, "owner@example.com", out.Users[0].Email)
	assert.Len(t, out.Products, 1)
	assert.Len(t, out.Categories, 1)
	assert.Len(t, out.Customers, 1)
	assert.Len(t, out.Suppliers, 1)
	assert.Len(t, out.Employees, 1)
	assert.Len(t, out.Orders, 1)
	assert.Len(t, out.Purchases, 1)
	assert.Len(t, out.Items, 1)
	assert.Len(t, out.Shifts, 1)
	assert.Len(t, out.Permissions, 1)
	assert.Len(t, out.Barcodes, 1)
	assert.False(t, out.ExportedAt.IsZero())
}

func TestSyncUsecase_Export_RepoError(t *testing.T) {
	uc, users, products, _, _, _, _, _, _, _, _, _ := newSyncUC()

	users.On("ListByTenant", mock.Anything, int64(1)).Return([]model.User{}, nil)
	products.On("ListByOwner", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

	_, err := uc.Export(context.Background(), 1)
	assert.Error(t, err)
}
