package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// SyncExport はテナントの全データの一括エクスポート。
// オフライン端末の初期同期とオンラインバックアップに使う。
type SyncExport struct {
	ExportedAt  time.Time            `json:"exportedAt"`
	Users       []UserOutput         `json:"users"`
	Products    []model.Product      `json:"products"`
	Categories  []model.Category     `json:"categories"`
	Customers   []model.Customer     `json:"customers"`
	Suppliers   []model.Supplier     `json:"suppliers"`
	Employees   []model.Employee     `json:"employees"`
	Orders      []OrderOutput        `json:"orders"`
	Purchases   []model.Purchase     `json:"purchases"`
	Items       []model.PurchaseItem `json:"purchaseItems"`
	Shifts      []model.Shift        `json:"shifts"`
	Permissions []model.Permission   `json:"permissions"`
	Barcodes    []model.Barcode      `json:"barcodes"`
}

type SyncUsecase struct {
	users       repository.UserRepository
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	customers   repository.CustomerRepository
	suppliers   repository.SupplierRepository
	employees   repository.EmployeeRepository
	orders      *OrderUsecase
	purchases   repository.PurchaseRepository
	shifts      repository.ShiftRepository
	permissions repository.PermissionRepository
	barcodes    repository.BarcodeRepository
}

func NewSyncUsecase(
	users repository.UserRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	employees repository.EmployeeRepository,
	orders *OrderUsecase,
	purchases repository.PurchaseRepository,
	shifts repository.ShiftRepository,
	permissions repository.PermissionRepository,
	barcodes repository.BarcodeRepository,
) *SyncUsecase {
	return &SyncUsecase{
		users:       users,
		products:    products,
		categories:  categories,
		customers:   customers,
		suppliers:   suppliers,
		employees:   employees,
		orders:      orders,
		purchases:   purchases,
		shifts:      shifts,
		permissions: permissions,
		barcodes:    barcodes,
	}
}

func (u *SyncUsecase) Export(ctx context.Context, ownerID int64) (SyncExport, error) {
	out := SyncExport{ExportedAt: time.Now()}

	users, err := u.users.ListByTenant(ctx, ownerID)
	if err != nil {
		return SyncExport{}, err
	}
	out.Users = make([]UserOutput, 0, len(users))
	for i := range users {
		out.Users = append(out.Users, toUserOutput(&users[i]))
	}

	if out.Products, err = u.products.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Categories, err = u.categories.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Customers, err = u.customers.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Suppliers, err = u.suppliers.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Employees, err = u.employees.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Orders, err = u.orders.List(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Purchases, err = u.purchases.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Items, err = u.purchases.ListItemsByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Shifts, err = u.shifts.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Permissions, err = u.permissions.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	if out.Barcodes, err = u.barcodes.ListByOwner(ctx, ownerID); err != nil {
		return SyncExport{}, err
	}
	return out, nil
}
