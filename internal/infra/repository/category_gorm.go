package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Category, error) {
	var categories []model.Category
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&categories).Error
	if err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, ownerID int64, categoryID int64) (model.Category, error) {
	var c model.Category
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", categoryID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	res := scoped(r.db.WithContext(ctx), c.OwnerID).
		Model(&model.Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":   c.Name,
			"status": c.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) Delete(ctx context.Context, ownerID int64, categoryID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", categoryID).
		Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Category{}).
		Count(&n).Error
	return n, err
}
