package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BarcodeGormRepository struct {
	db *gorm.DB
}

func NewBarcodeGormRepository(db *gorm.DB) *BarcodeGormRepository {
	return &BarcodeGormRepository{db: db}
}

func (r *BarcodeGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Barcode, error) {
	var barcodes []model.Barcode
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&barcodes).Error
	if err != nil {
		return []model.Barcode{}, err
	}
	return barcodes, nil
}

func (r *BarcodeGormRepository) Create(ctx context.Context, b model.Barcode) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return 0, err
	}
	return b.ID, nil
}

func (r *BarcodeGormRepository) CreateBulk(ctx context.Context, barcodes []model.Barcode) error {
	if len(barcodes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&barcodes).Error
}

func (r *BarcodeGormRepository) Delete(ctx context.Context, ownerID int64, barcodeID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", barcodeID).
		Delete(&model.Barcode{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
