package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PermissionHandler struct {
	uc *usecase.PermissionUsecase
}

func NewPermissionHandler(uc *usecase.PermissionUsecase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// オーナー専用。server側でOwnerRoleGuardを掛ける。
func (h *PermissionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.listAll)
	g.GET("/:subUserId", h.listForSubUser)
	g.PUT("", h.replace)
}

func (h *PermissionHandler) listAll(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListAll(c.Request().Context(), tid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PermissionHandler) listForSubUser(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	subUserID, err := strconv.ParseInt(c.Param("subUserId"), 10, 64)
	if err != nil || subUserID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sub user id"})
	}

	out, err := h.uc.ListForSubUser(c.Request().Context(), tid, subUserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PermissionHandler) replace(c echo.Context) error {
	tid, err := tenantID(c)
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.ReplacePermissionsInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if in.SubUserID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "subUserId is required"})
	}

	out, err := h.uc.Replace(c.Request().Context(), tid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
