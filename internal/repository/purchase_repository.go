package repository

import (
	"context"

	"app/internal/domain/model"
)

type PurchaseRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Purchase, error)
	FindByID(ctx context.Context, ownerID int64, purchaseID int64) (model.Purchase, error)
	Create(ctx context.Context, p model.Purchase) (int64, error)
	CreateItems(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error
	ListItems(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error)
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.PurchaseItem, error)
	DeleteItems(ctx context.Context, purchaseID int64) error
	Delete(ctx context.Context, ownerID int64, purchaseID int64) error
}
