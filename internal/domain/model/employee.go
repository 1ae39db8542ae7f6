package model

import "time"

type Employee struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     int64     `gorm:"not null;index:idx_employees_owner_code,unique" json:"owner_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	EmpCode     string    `gorm:"type:varchar(50);not null;index:idx_employees_owner_code,unique" json:"emp_code"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	Department  string    `gorm:"type:varchar(100)" json:"department"`
	Designation string    `gorm:"type:varchar(100)" json:"designation"`
	Shift       string    `gorm:"type:varchar(50)" json:"shift"`
	Status      int       `gorm:"not null;default:1" json:"status"`
	CreatedOn   time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}
