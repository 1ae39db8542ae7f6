package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ShiftHandler struct {
	uc *usecase.ShiftUsecase
}

func NewShiftHandler(uc *usecase.ShiftUsecase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

type activeShiftResponse struct {
	Active bool         `json:"active"`
	Shift  *model.Shift `json:"shift,omitempty"`
}

func (h *ShiftHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.history)
	g.GET("/active", h.active)
	g.POST("/open", h.open)
	g.POST("/close", h.close)
}

func (h *ShiftHandler) active(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	shift, err := h.uc.Active(c.Request().Context(), tid)
	if err != nil {
		return writeError(c, err)
	}
	if shift == nil {
		return c.JSON(http.StatusOK, activeShiftResponse{Active: false})
	}
	return c.JSON(http.StatusOK, activeShiftResponse{Active: true, Shift: shift})
}

func (h *ShiftHandler) history(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.History(c.Request().Context(), tid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShiftHandler) open(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}
	uid, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.OpenShiftInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Open(c.Request().Context(), tid, uid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ShiftHandler) close(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.CloseShiftInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Close(c.Request().Context(), tid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
