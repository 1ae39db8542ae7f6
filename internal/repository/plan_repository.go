package repository

import (
	"context"

	"app/internal/domain/model"
)

type PlanRepository interface {
	// 有効なプランを価格の安い順で返す
	ListEnabled(ctx context.Context) ([]model.Plan, error)
	FindByID(ctx context.Context, planID int64) (model.Plan, error)
	FindEnabledByID(ctx context.Context, planID int64) (model.Plan, error)
	FindEnabledByName(ctx context.Context, name string) (model.Plan, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p model.Plan) error
}
