package repository

import (
	"context"

	"app/internal/domain/model"
)

type SubscriptionRepository interface {
	// 最新行（= 現在の契約）。無ければErrNotFound
	FindLatest(ctx context.Context, ownerID int64) (model.Subscription, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Subscription, error)
	Create(ctx context.Context, s model.Subscription) (int64, error)
	// Active/Pendingの行をまとめてExpiredにする（新しい行を入れる前に必ず呼ぶ）
	ExpireLive(ctx context.Context, ownerID int64) error
}
