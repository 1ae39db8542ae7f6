package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Category, error)
	FindByID(ctx context.Context, ownerID int64, categoryID int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (int64, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, ownerID int64, categoryID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type CustomerRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Customer, error)
	FindByID(ctx context.Context, ownerID int64, customerID int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (int64, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, ownerID int64, customerID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type SupplierRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Supplier, error)
	FindByID(ctx context.Context, ownerID int64, supplierID int64) (model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (int64, error)
	Update(ctx context.Context, s model.Supplier) error
	Delete(ctx context.Context, ownerID int64, supplierID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type EmployeeRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Employee, error)
	FindByID(ctx context.Context, ownerID int64, employeeID int64) (model.Employee, error)
	Create(ctx context.Context, e model.Employee) (int64, error)
	Update(ctx context.Context, e model.Employee) error
	Delete(ctx context.Context, ownerID int64, employeeID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	EmpCodeExists(ctx context.Context, ownerID int64, empCode string, excludeID int64) (bool, error)
}
