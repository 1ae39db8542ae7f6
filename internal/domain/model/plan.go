package model

// Plan は参照データ。上限のnilは無制限を意味する。
type Plan struct {
	ID                      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                    string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Price                   float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	DurationDays            int     `gorm:"not null" json:"duration_days"`
	MaxProducts             *int64  `json:"max_products"`
	MaxCategories           *int64  `json:"max_categories"`
	MaxCustomers            *int64  `json:"max_customers"`
	MaxEmployees            *int64  `json:"max_employees"`
	MaxSuppliers            *int64  `json:"max_suppliers"`
	MaxUsers                *int64  `json:"max_users"`
	HasOnlineBackup         bool    `gorm:"not null;default:false" json:"has_online_backup"`
	HasFullBackupWithImages bool    `gorm:"not null;default:false" json:"has_full_backup_with_images"`
	Status                  int     `gorm:"not null;default:1" json:"status"` // 1=有効
}
