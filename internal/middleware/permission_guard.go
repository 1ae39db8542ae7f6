package middleware

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PermissionGuard はstaffのモジュール別権限を確認する。
// owner/adminは素通し。staffはHTTPメソッドに対応するフラグが立っていないと403。
func PermissionGuard(perms *usecase.PermissionUsecase, module string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if role == string(model.RoleOwner) || role == string(model.RoleAdmin) {
				return next(c)
			}

			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			tenantID, ok := c.Get(CtxTenantIDKey).(int64)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			p, err := perms.Check(c.Request().Context(), tenantID, userID, module)
			if err != nil {
				zap.L().Error("check permission", zap.Int64("user_id", userID), zap.String("module", module), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			if !allowed(c.Request().Method, p) {
				return c.JSON(http.StatusForbidden, errorJSON("permission denied"))
			}
			return next(c)
		}
	}
}

func allowed(method string, p model.Permission) bool {
	switch method {
	case http.MethodGet, http.MethodHead:
		return p.CanView
	case http.MethodPost:
		return p.CanAdd
	case http.MethodPut, http.MethodPatch:
		return p.CanEdit
	case http.MethodDelete:
		return p.CanDelete
	default:
		return false
	}
}
