package model

import "time"

// 台帳に保存するステータス。Grace/Lockedは保存せずリクエスト時に導出する。
type SubscriptionStatus string

const (
	SubscriptionPending SubscriptionStatus = "Pending"
	SubscriptionActive  SubscriptionStatus = "Active"
	SubscriptionExpired SubscriptionStatus = "Expired"
)

// Subscription は追記専用の台帳。現在の契約は最新行（id降順の先頭）。
type Subscription struct {
	ID           int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      int64              `gorm:"not null;index" json:"owner_id"`
	PlanID       int64              `gorm:"not null" json:"plan_id"`
	Status       SubscriptionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	StartDate    time.Time          `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time          `gorm:"type:date;not null" json:"end_date"`
	CreatedAt    time.Time          `gorm:"not null;autoCreateTime" json:"created_at"`
	PaymentProof string             `gorm:"type:varchar(512)" json:"payment_proof,omitempty"`
}
