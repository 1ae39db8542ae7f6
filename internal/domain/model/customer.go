package model

import "time"

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   int64     `gorm:"not null;index" json:"owner_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Address   string    `gorm:"type:varchar(512)" json:"address"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	Status    int       `gorm:"not null;default:1" json:"status"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}
