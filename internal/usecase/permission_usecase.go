package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 権限を設定できるモジュール名
var knownModules = map[string]bool{
	"products":   true,
	"categories": true,
	"customers":  true,
	"suppliers":  true,
	"employees":  true,
	"purchases":  true,
	"orders":     true,
	"shifts":     true,
	"barcodes":   true,
	"reports":    true,
}

type PermissionInput struct {
	Module    string `json:"module"`
	CanView   bool   `json:"canView"`
	CanAdd    bool   `json:"canAdd"`
	CanEdit   bool   `json:"canEdit"`
	CanDelete bool   `json:"canDelete"`
}

type ReplacePermissionsInput struct {
	SubUserID   int64             `json:"subUserId"`
	Permissions []PermissionInput `json:"permissions"`
}

// PermissionUsecase はサブユーザーのモジュール別権限を管理する。
// 権限はゲートミドルウェアがstaffのリクエストごとに参照する。
type PermissionUsecase struct {
	perms repository.PermissionRepository
	users repository.UserRepository
}

func NewPermissionUsecase(perms repository.PermissionRepository, users repository.UserRepository) *PermissionUsecase {
	return &PermissionUsecase{perms: perms, users: users}
}

func (u *PermissionUsecase) ListForSubUser(ctx context.Context, ownerID int64, subUserID int64) ([]model.Permission, error) {
	if err := u.ensureSubUser(ctx, ownerID, subUserID); err != nil {
		return nil, err
	}
	return u.perms.ListBySubUser(ctx, ownerID, subUserID)
}

func (u *PermissionUsecase) ListAll(ctx context.Context, ownerID int64) ([]model.Permission, error) {
	return u.perms.ListByOwner(ctx, ownerID)
}

// Replace は指定サブユーザーの権限を丸ごと入れ替える。
func (u *PermissionUsecase) Replace(ctx context.Context, ownerID int64, in ReplacePermissionsInput) ([]model.Permission, error) {
	if err := u.ensureSubUser(ctx, ownerID, in.SubUserID); err != nil {
		return nil, err
	}

	perms := make([]model.Permission, 0, len(in.Permissions))
	for _, p := range in.Permissions {
		if !knownModules[p.Module] {
			return nil, NewHTTPError(http.StatusBadRequest, "unknown module: "+p.Module)
		}
		perms = append(perms, model.Permission{
			OwnerID:   ownerID,
			SubUserID: in.SubUserID,
			Module:    p.Module,
			CanView:   p.CanView,
			CanAdd:    p.CanAdd,
			CanEdit:   p.CanEdit,
			CanDelete: p.CanDelete,
		})
	}

	if err := u.perms.Replace(ctx, ownerID, in.SubUserID, perms); err != nil {
		return nil, err
	}
	return u.perms.ListBySubUser(ctx, ownerID, in.SubUserID)
}

// Check はstaffの操作可否を返す。行が無ければ全部不可。
func (u *PermissionUsecase) Check(ctx context.Context, ownerID int64, subUserID int64, module string) (model.Permission, error) {
	p, err := u.perms.Find(ctx, ownerID, subUserID, module)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Permission{OwnerID: ownerID, SubUserID: subUserID, Module: module}, nil
	}
	return p, err
}

func (u *PermissionUsecase) ensureSubUser(ctx context.Context, ownerID int64, subUserID int64) error {
	user, err := u.users.FindByID(ctx, subUserID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return err
	}
	if user.OwnerID == nil || *user.OwnerID != ownerID {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	return nil
}
