package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftGormRepository struct {
	db *gorm.DB
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{db: db}
}

func (r *ShiftGormRepository) FindActive(ctx context.Context, ownerID int64) (model.Shift, error) {
	var s model.Shift
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("status = ?", model.ShiftStatusActive).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shift{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shift{}, err
	}
	return s, nil
}

// SELECT ... FOR UPDATE。トランザクションの中で呼ぶこと。
// 同時にopenが2本走っても片方がロック待ちになり、二重activeを防げる。
func (r *ShiftGormRepository) FindActiveForUpdate(ctx context.Context, ownerID int64) (model.Shift, error) {
	var s model.Shift
	err := scoped(r.db.WithContext(ctx), ownerID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", model.ShiftStatusActive).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shift{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shift{}, err
	}
	return s, nil
}

func (r *ShiftGormRepository) Create(ctx context.Context, s model.Shift) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *ShiftGormRepository) Close(ctx context.Context, shiftID int64, endTime time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("id = ? AND status = ?", shiftID, model.ShiftStatusActive).
		Updates(map[string]interface{}{
			"status":   model.ShiftStatusClosed,
			"end_time": endTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShiftGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Shift, error) {
	var shifts []model.Shift
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&shifts).Error
	if err != nil {
		return []model.Shift{}, err
	}
	return shifts, nil
}

// activeなシフトへ売上を積む。activeが無いときは0行更新で終わる（仕様）。
func (r *ShiftGormRepository) AccrueActive(ctx context.Context, ownerID int64, amount float64) error {
	return scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Shift{}).
		Where("status = ?", model.ShiftStatusActive).
		Updates(map[string]interface{}{
			"total_sales":  gorm.Expr("total_sales + ?", amount),
			"total_orders": gorm.Expr("total_orders + 1"),
		}).Error
}
