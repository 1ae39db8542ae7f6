package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error)
	FindByID(ctx context.Context, ownerID int64, productID int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, ownerID int64, productID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)

	// SKUはテナント内で一意。更新時はexcludeIDで自分を除外する。
	SKUExists(ctx context.Context, ownerID int64, sku string, excludeID int64) (bool, error)

	// 在庫が足りるときだけ減算する（条件付きUPDATE1発。read-then-writeの競合を避ける）
	DecreaseStockIfEnough(ctx context.Context, ownerID int64, productID int64, qty int64) (bool, error)

	// 在庫戻し（注文削除・仕入）
	IncreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error

	// 無条件減算（仕入削除の巻き戻し。マイナス在庫を許す）
	DecreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error
}
