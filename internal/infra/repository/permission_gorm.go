package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PermissionGormRepository struct {
	db *gorm.DB
}

func NewPermissionGormRepository(db *gorm.DB) *PermissionGormRepository {
	return &PermissionGormRepository{db: db}
}

func (r *PermissionGormRepository) ListBySubUser(ctx context.Context, ownerID int64, subUserID int64) ([]model.Permission, error) {
	var perms []model.Permission
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("sub_user_id = ?", subUserID).
		Find(&perms).Error
	if err != nil {
		return []model.Permission{}, err
	}
	return perms, nil
}

func (r *PermissionGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Permission, error) {
	var perms []model.Permission
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id asc").
		Find(&perms).Error
	if err != nil {
		return []model.Permission{}, err
	}
	return perms, nil
}

// delete->insertを1トランザクションで。途中で失敗したら旧フラグが残る
func (r *PermissionGormRepository) Replace(ctx context.Context, ownerID int64, subUserID int64, perms []model.Permission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scoped(tx, ownerID).
			Where("sub_user_id = ?", subUserID).
			Delete(&model.Permission{}).Error; err != nil {
			return err
		}
		if len(perms) == 0 {
			return nil
		}
		for i := range perms {
			perms[i].ID = 0
			perms[i].OwnerID = ownerID
			perms[i].SubUserID = subUserID
		}
		return tx.Create(&perms).Error
	})
}

func (r *PermissionGormRepository) Find(ctx context.Context, ownerID int64, subUserID int64, module string) (model.Permission, error) {
	var p model.Permission
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("sub_user_id = ? AND module = ?", subUserID, module).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Permission{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Permission{}, err
	}
	return p, nil
}

func (r *PermissionGormRepository) Update(ctx context.Context, p model.Permission) error {
	res := scoped(r.db.WithContext(ctx), p.OwnerID).
		Model(&model.Permission{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"can_view":   p.CanView,
			"can_add":    p.CanAdd,
			"can_edit":   p.CanEdit,
			"can_delete": p.CanDelete,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PermissionGormRepository) Delete(ctx context.Context, ownerID int64, permissionID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", permissionID).
		Delete(&model.Permission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
