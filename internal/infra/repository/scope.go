package repository

import "gorm.io/gorm"

// テナント絞り込みは全テーブル共通なのでここに寄せる。
// 全クエリがこれを通ることで他テナントの行に触れないことを保証する。
func scoped(db *gorm.DB, ownerID int64) *gorm.DB {
	return db.Where("owner_id = ?", ownerID)
}
