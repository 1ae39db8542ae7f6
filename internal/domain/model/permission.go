package model

import "time"

// Permission はサブユーザー1人のモジュール別の操作可否。
type Permission struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   int64     `gorm:"not null;index" json:"owner_id"`
	SubUserID int64     `gorm:"not null;index" json:"sub_user_id"`
	Module    string    `gorm:"type:varchar(50);not null" json:"module"`
	CanView   bool      `gorm:"not null;default:false" json:"can_view"`
	CanAdd    bool      `gorm:"not null;default:false" json:"can_add"`
	CanEdit   bool      `gorm:"not null;default:false" json:"can_edit"`
	CanDelete bool      `gorm:"not null;default:false" json:"can_delete"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}
