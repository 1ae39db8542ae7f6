package model

import "time"

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// OrderItem は注文時点のスナップショット。ordersのitems列にJSONで保存する。
// ProductIDがnilの行は手入力のサービス項目（在庫対象外）。
type OrderItem struct {
	ProductID *int64  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       int64       `gorm:"not null;index" json:"owner_id"`
	OrderNumber   string      `gorm:"type:varchar(100);not null;index" json:"order_number"`
	CustomerID    *int64      `json:"customer_id,omitempty"`
	CustomerName  string      `gorm:"type:varchar(255)" json:"customer_name"`
	Items         string      `gorm:"type:jsonb;not null" json:"-"` // OrderItemのJSON配列
	Subtotal      float64     `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	Shipping      float64     `gorm:"type:decimal(12,2);not null;default:0" json:"shipping"`
	Tax           float64     `gorm:"type:decimal(12,2);not null;default:0" json:"tax"`
	Discount      float64     `gorm:"type:decimal(12,2);not null;default:0" json:"discount"`
	Roundoff      float64     `gorm:"type:decimal(12,2);not null;default:0" json:"roundoff"`
	TotalAmount   float64     `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CashReceived  float64     `gorm:"type:decimal(12,2);not null;default:0" json:"cash_received"`
	ChangeAmount  float64     `gorm:"type:decimal(12,2);not null;default:0" json:"change_amount"`
	PaymentMethod string      `gorm:"type:varchar(50)" json:"payment_method"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedOn     time.Time   `gorm:"not null;autoCreateTime" json:"created_on"`
}
