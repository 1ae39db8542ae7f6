package repository

import (
	"context"

	"app/internal/domain/model"
)

type PermissionRepository interface {
	ListBySubUser(ctx context.Context, ownerID int64, subUserID int64) ([]model.Permission, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Permission, error)
	// 旧フラグを消してから入れ直す（安全な更新パターン）。1トランザクションで行う
	Replace(ctx context.Context, ownerID int64, subUserID int64, perms []model.Permission) error
	Find(ctx context.Context, ownerID int64, subUserID int64, module string) (model.Permission, error)
	Update(ctx context.Context, p model.Permission) error
	Delete(ctx context.Context, ownerID int64, permissionID int64) error
}
