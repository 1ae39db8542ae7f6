package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&suppliers).Error
	if err != nil {
		return []model.Supplier{}, err
	}
	return suppliers, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, ownerID int64, supplierID int64) (model.Supplier, error) {
	var s model.Supplier
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", supplierID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := scoped(r.db.WithContext(ctx), s.OwnerID).
		Model(&model.Supplier{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"name":    s.Name,
			"phone":   s.Phone,
			"email":   s.Email,
			"address": s.Address,
			"city":    s.City,
			"status":  s.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Delete(ctx context.Context, ownerID int64, supplierID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", supplierID).
		Delete(&model.Supplier{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Supplier{}).
		Count(&n).Error
	return n, err
}
