package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// オーナー本人＋配下のサブユーザー
	ListByTenant(ctx context.Context, ownerID int64) ([]model.User, error)
	CountSubUsers(ctx context.Context, ownerID int64) (int64, error)
}
