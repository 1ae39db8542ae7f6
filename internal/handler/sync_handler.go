package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SyncHandler struct {
	uc *usecase.SyncUsecase
}

func NewSyncHandler(uc *usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// バックアップ用の一括エクスポート。オーナー専用で、プランのバックアップ機能を見る。
func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/full", h.export)
}

func (h *SyncHandler) export(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}
	plan, err := currentPlan(c)
	if err != nil {
		return writeError(c, err)
	}
	if !plan.HasOnlineBackup {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "plan does not include online backup"})
	}

	out, err := h.uc.Export(c.Request().Context(), tid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
