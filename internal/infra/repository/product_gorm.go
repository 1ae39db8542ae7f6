package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	var products []model.Product
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, ownerID int64, productID int64) (model.Product, error) {
	var p model.Product
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", productID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := scoped(r.db.WithContext(ctx), p.OwnerID).
		Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":           p.Name,
			"sku":            p.SKU,
			"category":       p.Category,
			"brand":          p.Brand,
			"price":          p.Price,
			"unit":           p.Unit,
			"quantity":       p.Quantity,
			"quantity_alert": p.QuantityAlert,
			"product_type":   p.ProductType,
			"status":         p.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, ownerID int64, productID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", productID).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Product{}).
		Count(&n).Error
	return n, err
}

func (r *ProductGormRepository) SKUExists(ctx context.Context, ownerID int64, sku string, excludeID int64) (bool, error) {
	var n int64
	tx := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Product{}).
		Where("sku = ?", sku)
	if excludeID > 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// 在庫が足りるときだけ減らす
func (r *ProductGormRepository) DecreaseStockIfEnough(ctx context.Context, ownerID int64, productID int64, qty int64) (bool, error) {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（注文削除・仕入計上）
func (r *ProductGormRepository) IncreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 仕入削除の巻き戻し。こちらは在庫チェックなし（マイナスを許す）
func (r *ProductGormRepository) DecreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
