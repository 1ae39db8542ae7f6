package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPermRepoForGuard struct {
	mock.Mock
}

func (m *MockPermRepoForGuard) ListBySubUser(ctx context.Context, ownerID int64, subUserID int64) ([]model.Permission, error) {
	args := m.Called(ctx, ownerID, subUserID)
	ps, _ := args.Get(0).([]model.Permission)
	return ps, args.Error(1)
}

func (m *MockPermRepoForGuard) ListByOwner(ctx context.Context, ownerID int64) ([]model.Permission, error) {
	args := m.Called(ctx, ownerID)
	ps, _ := args.Get(0).([]model.Permission)
	return ps, args.Error(1)
}

func (m *MockPermRepoForGuard) Replace(ctx context.Context, ownerID int64, subUserID int64, perms []model.Permission) error {
	args := m.Called(ctx, ownerID, subUserID, perms)
	return args.Error(0)
}

func (m *MockPermRepoForGuard) Find(ctx context.Context, ownerID int64, subUserID int64, module string) (model.Permission, error) {
	args := m.Called(ctx, ownerID, subUserID, module)
	p, _ := args.Get(0).(model.Permission)
	return p, args.Error(1)
}

func (m *MockPermRepoForGuard) Update(ctx context.Context, p model.Permission) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPermRepoForGuard) Delete(ctx context.Context, ownerID int64, permissionID int64) error {
	args := m.Called(ctx, ownerID, permissionID)
	return args.Error(0)
}

var _ repository.PermissionRepository = (*MockPermRepoForGuard)(nil)

func newGuardContext(method, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserIDKey, int64(2))
	c.Set(middleware.CtxTenantIDKey, int64(1))
	c.Set(middleware.CtxUserRoleKey, role)
	return c, rec
}

func TestPermissionGuard_OwnerBypasses(t *testing.T) {
	perms := new(MockPermRepoForGuard)
	uc := usecase.NewPermissionUsecase(perms, nil)

	c, rec := newGuardContext(http.MethodDelete, "owner")
	h := middleware.PermissionGuard(uc, "products")(okHandler)

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	perms.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPermissionGuard_StaffAllowedByFlag(t *testing.T) {
	perms := new(MockPermRepoForGuard)
	perms.On("Find", mock.Anything, int64(1), int64(2), "products").Return(model.Permission{
		OwnerID: 1, SubUserID: 2, Module: "products", CanView: true,
	}, nil)
	uc := usecase.NewPermissionUsecase(perms, nil)

	c, rec := newGuardContext(http.MethodGet, "staff")
	h := middleware.PermissionGuard(uc, "products")(okHandler)

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPermissionGuard_StaffDeniedWrite(t *testing.T) {
	perms := new(MockPermRepoForGuard)
	// 閲覧だけ許可されたstaffがPOSTすると403
	perms.On("Find", mock.Anything, int64(1), int64(2), "products").Return(model.Permission{
		OwnerID: 1, SubUserID: 2, Module: "products", CanView: true,
	}, nil)
	uc := usecase.NewPermissionUsecase(perms, nil)

	c, rec := newGuardContext(http.MethodPost, "staff")
	h := middleware.PermissionGuard(uc, "products")(okHandler)

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPermissionGuard_StaffNoRowDeniesAll(t *testing.T) {
	perms := new(MockPermRepoForGuard)
	perms.On("Find", mock.Anything, int64(1), int64(2), "products").Return(model.Permission{}, repository.ErrNotFound)
	uc := usecase.NewPermissionUsecase(perms, nil)

	c, rec := newGuardContext(http.MethodGet, "staff")
	h := middleware.PermissionGuard(uc, "products")(okHandler)

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
