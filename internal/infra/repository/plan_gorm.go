package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PlanGormRepository struct {
	db *gorm.DB
}

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

func (r *PlanGormRepository) ListEnabled(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	err := r.db.WithContext(ctx).
		Where("status = ?", 1).
		Order("price asc").
		Find(&plans).Error
	if err != nil {
		return []model.Plan{}, err
	}
	return plans, nil
}

func (r *PlanGormRepository) FindByID(ctx context.Context, planID int64) (model.Plan, error) {
	var p model.Plan
	err := r.db.WithContext(ctx).First(&p, planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Plan{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func (r *PlanGormRepository) FindEnabledByID(ctx context.Context, planID int64) (model.Plan, error) {
	var p model.Plan
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", planID, 1).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Plan{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func (r *PlanGormRepository) FindEnabledByName(ctx context.Context, name string) (model.Plan, error) {
	var p model.Plan
	err := r.db.WithContext(ctx).
		Where("name = ? AND status = ?", name, 1).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Plan{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func (r *PlanGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Plan{}).Count(&n).Error
	return n, err
}

func (r *PlanGormRepository) Create(ctx context.Context, p model.Plan) error {
	return r.db.WithContext(ctx).Create(&p).Error
}
