package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&purchases).Error
	if err != nil {
		return []model.Purchase{}, err
	}
	return purchases, nil
}

func (r *PurchaseGormRepository) FindByID(ctx context.Context, ownerID int64, purchaseID int64) (model.Purchase, error) {
	var p model.Purchase
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", purchaseID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Purchase{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *PurchaseGormRepository) CreateItems(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].PurchaseID = purchaseID
		items[i].ID = 0
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PurchaseGormRepository) ListItems(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.PurchaseItem{}, err
	}
	return items, nil
}

// テナントの全仕入明細（フル同期用）
func (r *PurchaseGormRepository) ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem
	err := r.db.WithContext(ctx).
		Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
		Where("purchases.owner_id = ?", ownerID).
		Order("purchase_items.id asc").
		Find(&items).Error
	if err != nil {
		return []model.PurchaseItem{}, err
	}
	return items, nil
}

func (r *PurchaseGormRepository) DeleteItems(ctx context.Context, purchaseID int64) error {
	return r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Delete(&model.PurchaseItem{}).Error
}

func (r *PurchaseGormRepository) Delete(ctx context.Context, ownerID int64, purchaseID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", purchaseID).
		Delete(&model.Purchase{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
