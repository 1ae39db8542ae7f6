package seeder

import (
	"context"

	"app/internal/domain/model"
	"app/internal/repository"

	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 { return &v }

// SeedPlans は初回起動時にプランの参照データを入れる。既に行があれば何もしない。
func SeedPlans(ctx context.Context, plans repository.PlanRepository) error {
	count, err := plans.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.Plan{
		{
			Name:          "Basic",
			Price:         0,
			DurationDays:  30,
			MaxProducts:   int64Ptr(100),
			MaxCategories: int64Ptr(20),
			MaxCustomers:  int64Ptr(100),
			MaxEmployees:  int64Ptr(5),
			MaxSuppliers:  int64Ptr(10),
			MaxUsers:      int64Ptr(2),
			Status:        1,
		},
		{
			Name:            "Standard",
			Price:           29.99,
			DurationDays:    30,
			MaxProducts:     int64Ptr(1000),
			MaxCategories:   int64Ptr(100),
			MaxCustomers:    int64Ptr(1000),
			MaxEmployees:    int64Ptr(20),
			MaxSuppliers:    int64Ptr(50),
			MaxUsers:        int64Ptr(5),
			HasOnlineBackup: true,
			Status:          1,
		},
		{
			Name:                    "Premium",
			Price:                   59.99,
			DurationDays:            30,
			HasOnlineBackup:         true,
			HasFullBackupWithImages: true,
			Status:                  1,
		},
	}

	for _, p := range defaults {
		if err := plans.Create(ctx, p); err != nil {
			return err
		}
	}
	zap.L().Info("seeded default plans", zap.Int("count", len(defaults)))
	return nil
}
