package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Customer, error) {
	var customers []model.Customer
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&customers).Error
	if err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, ownerID int64, customerID int64) (model.Customer, error) {
	var c model.Customer
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", customerID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := scoped(r.db.WithContext(ctx), c.OwnerID).
		Model(&model.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":    c.Name,
			"phone":   c.Phone,
			"email":   c.Email,
			"address": c.Address,
			"city":    c.City,
			"status":  c.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, ownerID int64, customerID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", customerID).
		Delete(&model.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Customer{}).
		Count(&n).Error
	return n, err
}
