package model

import "time"

type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       int64     `gorm:"not null;index:idx_products_owner_sku,unique" json:"owner_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	SKU           string    `gorm:"type:varchar(100);not null;index:idx_products_owner_sku,unique" json:"sku"`
	Category      string    `gorm:"type:varchar(100)" json:"category"`
	Brand         string    `gorm:"type:varchar(100)" json:"brand"`
	Price         float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	Unit          string    `gorm:"type:varchar(50)" json:"unit"`
	Quantity      int64     `gorm:"not null;default:0" json:"quantity"`
	QuantityAlert int64     `gorm:"not null;default:0" json:"quantity_alert"`
	ProductType   string    `gorm:"type:varchar(50)" json:"product_type"`
	Status        int       `gorm:"not null;default:1" json:"status"`
	CreatedBy     string    `gorm:"type:varchar(255)" json:"created_by"`
	CreatedOn     time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}
