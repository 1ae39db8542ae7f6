package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BarcodeHandler struct {
	uc *usecase.BarcodeUsecase
}

func NewBarcodeHandler(uc *usecase.BarcodeUsecase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

func (h *BarcodeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.list)
	g.POST("", h.generate)
	g.DELETE("/:id", h.delete)
}

func (h *BarcodeHandler) list(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), tid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BarcodeHandler) generate(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.BarcodeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Generate(c.Request().Context(), tid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BarcodeHandler) delete(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), tid, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
