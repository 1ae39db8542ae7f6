package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Order, error) {
	var orders []model.Order
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, ownerID int64, orderID int64) (model.Order, error) {
	var o model.Order
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := scoped(r.db.WithContext(ctx), o.OwnerID).
		Model(&model.Order{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"customer_id":    o.CustomerID,
			"customer_name":  o.CustomerName,
			"items":          o.Items,
			"subtotal":       o.Subtotal,
			"shipping":       o.Shipping,
			"tax":            o.Tax,
			"discount":       o.Discount,
			"roundoff":       o.Roundoff,
			"total_amount":   o.TotalAmount,
			"cash_received":  o.CashReceived,
			"change_amount":  o.ChangeAmount,
			"payment_method": o.PaymentMethod,
			"status":         o.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, ownerID int64, orderID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", orderID).
		Delete(&model.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
