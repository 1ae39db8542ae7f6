package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

// 最新行 = 現在の契約（台帳は追記専用）
func (r *SubscriptionGormRepository) FindLatest(ctx context.Context, ownerID int64) (model.Subscription, error) {
	var s model.Subscription
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Subscription{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&subs).Error
	if err != nil {
		return []model.Subscription{}, err
	}
	return subs, nil
}

func (r *SubscriptionGormRepository) Create(ctx context.Context, s model.Subscription) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

// 生きている行（Active/Pending）をまとめてExpiredへ。
// 新しい行のINSERTと同じトランザクションで呼ぶこと。
func (r *SubscriptionGormRepository) ExpireLive(ctx context.Context, ownerID int64) error {
	return scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Subscription{}).
		Where("status IN ?", []model.SubscriptionStatus{
			model.SubscriptionActive,
			model.SubscriptionPending,
		}).
		Update("status", model.SubscriptionExpired).Error
}
