package model

import "time"

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      *int64 `gorm:"index" json:"owner_id,omitempty"` // サブユーザーは親オーナーのID、オーナーはnil
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'owner'" json:"role"`
	Status       int    `gorm:"not null;default:1" json:"status"`
	CreatedOn    time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}

// TenantID はこのユーザーのデータが属するテナント（オーナー）のID
func (u *User) TenantID() int64 {
	if u.OwnerID != nil {
		return *u.OwnerID
	}
	return u.ID
}
