package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Employee, error) {
	var employees []model.Employee
	err := scoped(r.db.WithContext(ctx), ownerID).
		Order("id desc").
		Find(&employees).Error
	if err != nil {
		return []model.Employee{}, err
	}
	return employees, nil
}

func (r *EmployeeGormRepository) FindByID(ctx context.Context, ownerID int64, employeeID int64) (model.Employee, error) {
	var e model.Employee
	err := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", employeeID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e model.Employee) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (r *EmployeeGormRepository) Update(ctx context.Context, e model.Employee) error {
	res := scoped(r.db.WithContext(ctx), e.OwnerID).
		Model(&model.Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"first_name":  e.FirstName,
			"last_name":   e.LastName,
			"emp_code":    e.EmpCode,
			"email":       e.Email,
			"phone":       e.Phone,
			"department":  e.Department,
			"designation": e.Designation,
			"shift":       e.Shift,
			"status":      e.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *EmployeeGormRepository) Delete(ctx context.Context, ownerID int64, employeeID int64) error {
	res := scoped(r.db.WithContext(ctx), ownerID).
		Where("id = ?", employeeID).
		Delete(&model.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *EmployeeGormRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Employee{}).
		Count(&n).Error
	return n, err
}

func (r *EmployeeGormRepository) EmpCodeExists(ctx context.Context, ownerID int64, empCode string, excludeID int64) (bool, error) {
	var n int64
	tx := scoped(r.db.WithContext(ctx), ownerID).
		Model(&model.Employee{}).
		Where("emp_code = ?", empCode)
	if excludeID > 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
