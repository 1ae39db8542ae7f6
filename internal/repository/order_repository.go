package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Order, error)
	FindByID(ctx context.Context, ownerID int64, orderID int64) (model.Order, error)
	Create(ctx context.Context, o model.Order) (int64, error)
	// id+ownerで全フィールドを置き換える（在庫・シフトの再調整はしない）
	Update(ctx context.Context, o model.Order) error
	Delete(ctx context.Context, ownerID int64, orderID int64) error
}
