package model

import "time"

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   int64     `gorm:"not null;index:idx_categories_owner_name,unique" json:"owner_id"`
	Name      string    `gorm:"type:varchar(255);not null;index:idx_categories_owner_name,unique" json:"name"`
	Status    int       `gorm:"not null;default:1" json:"status"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}
