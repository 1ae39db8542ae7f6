package model

import "time"

// Barcode は印刷用に生成したラベルの記録。
type Barcode struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID        int64     `gorm:"not null;index" json:"owner_id"`
	ProductID      int64     `gorm:"not null" json:"product_id"`
	ProductName    string    `gorm:"type:varchar(255)" json:"product_name"`
	SKU            string    `gorm:"type:varchar(100)" json:"sku"`
	BarcodeValue   string    `gorm:"type:varchar(100);not null" json:"barcode_value"`
	BarcodeFormat  string    `gorm:"type:varchar(50);not null" json:"barcode_format"`
	Price          float64   `gorm:"type:decimal(12,2)" json:"price"`
	SequenceNumber int       `gorm:"not null" json:"sequence_number"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	PaperSize      string    `gorm:"type:varchar(50)" json:"paper_size"`
	GeneratedAt    time.Time `gorm:"not null;autoCreateTime" json:"generated_at"`
}
