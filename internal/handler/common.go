package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500。中身はログにだけ出す
	zap.L().Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// contextからテナントID（= オーナーのuser id）を取り出す
func tenantID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxTenantIDKey).(int64)
	if !ok || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

func currentUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

// SubscriptionGuardが入れた解決済みプラン
func currentPlan(c echo.Context) (model.Plan, error) {
	plan, ok := c.Get(middleware.CtxPlanKey).(model.Plan)
	if !ok {
		return model.Plan{}, usecase.NewHTTPError(http.StatusForbidden, "subscription required")
	}
	return plan, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
