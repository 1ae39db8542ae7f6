package middleware

import (
	"errors"
	"net/http"

	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SubscriptionGuard は契約状態を見てLockedなテナントを遮断する。
// 通過時は解決済みプランをcontextへ入れて、各ハンドラの上限チェックに使わせる。
// /authと/subscriptions配下には掛けない（Lockedでも更新手続きはできる必要がある）。
func SubscriptionGuard(subs *usecase.SubscriptionUsecase, plans repository.PlanRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenantID, ok := c.Get(CtxTenantIDKey).(int64)
			if !ok || tenantID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			snap, err := subs.ResolveAccess(c.Request().Context(), tenantID)
			if err != nil {
				zap.L().Error("resolve subscription state", zap.Int64("tenant_id", tenantID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			if snap.State == usecase.AccessLocked {
				msg := snap.Message
				if msg == "" {
					msg = "subscription required"
				}
				return c.JSON(http.StatusForbidden, errorJSON(msg))
			}

			plan, err := plans.FindByID(c.Request().Context(), snap.PlanID)
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusForbidden, errorJSON("subscription required"))
			}
			if err != nil {
				zap.L().Error("load plan", zap.Int64("plan_id", snap.PlanID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			c.Set(CtxPlanKey, plan)
			return next(c)
		}
	}
}
