package model

import "time"

type Purchase struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      int64     `gorm:"not null;index" json:"owner_id"`
	SupplierID   *int64    `json:"supplier_id,omitempty"`
	SupplierName string    `gorm:"type:varchar(255)" json:"supplier_name"`
	Reference    string    `gorm:"type:varchar(100)" json:"reference"`
	TotalAmount  float64   `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaidAmount   float64   `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	DueAmount    float64   `gorm:"type:decimal(12,2);not null;default:0" json:"due_amount"`
	Status       string    `gorm:"type:varchar(50)" json:"status"`
	CreatedOn    time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}

// PurchaseItem は仕入明細。注文と違い正規化した行で持つ（仕入は後から個別参照する）。
type PurchaseItem struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID    int64   `gorm:"not null;index" json:"purchase_id"`
	ProductID     int64   `gorm:"not null" json:"product_id"`
	ProductName   string  `gorm:"type:varchar(255)" json:"product_name"`
	Quantity      int64   `gorm:"not null" json:"quantity"`
	PurchasePrice float64 `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	TotalCost     float64 `gorm:"type:decimal(12,2);not null" json:"total_cost"`
}
