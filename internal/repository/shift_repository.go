package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type ShiftRepository interface {
	FindActive(ctx context.Context, ownerID int64) (model.Shift, error)
	// トランザクション内で行ロックを取って読む（同時openの二重作成防止）
	FindActiveForUpdate(ctx context.Context, ownerID int64) (model.Shift, error)
	Create(ctx context.Context, s model.Shift) (int64, error)
	Close(ctx context.Context, shiftID int64, endTime time.Time) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Shift, error)

	// activeなシフトへ売上を積む。activeが無ければ何もしない（エラーにしない）
	AccrueActive(ctx context.Context, ownerID int64, amount float64) error
}
