package model

import "time"

type ShiftStatus string

const (
	ShiftStatusActive ShiftStatus = "active"
	ShiftStatusClosed ShiftStatus = "closed"
)

// Shift はレジの1セッション。テナントごとにactiveは常に0件か1件。
type Shift struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     int64       `gorm:"not null;index" json:"owner_id"`
	UserName    string      `gorm:"type:varchar(255);not null" json:"user_name"`
	CashInHand  float64     `gorm:"type:decimal(12,2);not null;default:0" json:"cash_in_hand"`
	StartTime   time.Time   `gorm:"not null" json:"start_time"`
	EndTime     *time.Time  `json:"end_time,omitempty"`
	TotalSales  float64     `gorm:"type:decimal(12,2);not null;default:0" json:"total_sales"`
	TotalOrders int64       `gorm:"not null;default:0" json:"total_orders"`
	Status      ShiftStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedOn   time.Time   `gorm:"not null;autoCreateTime" json:"created_on"`
}
