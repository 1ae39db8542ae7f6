package usecase

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const tokenTTL = 7 * 24 * time.Hour

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSubUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserOutput struct {
	ID       int64  `json:"id"`
	OwnerID  *int64 `json:"ownerId,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID int64  `json:"tenantId"`
}

type AuthOutput struct {
	Token        string                   `json:"token"`
	User         UserOutput               `json:"user"`
	Subscription SubscriptionStatusOutput `json:"subscription"`
}

// AuthUsecase は登録・ログイン・サブユーザー管理を扱う。
// 登録はオーナー作成とBasicプランのActive契約を同一トランザクションで行う。
type AuthUsecase struct {
	cfg   config.Config
	users repository.UserRepository
	subs  *SubscriptionUsecase
	tx    repository.TransactionManager
}

func NewAuthUsecase(
	cfg config.Config,
	users repository.UserRepository,
	subs *SubscriptionUsecase,
	tx repository.TransactionManager,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:   cfg,
		users: users,
		subs:  subs,
		tx:    tx,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	if err := validateCredentials(in.Name, in.Email, in.Password); err != nil {
		return AuthOutput{}, err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return AuthOutput{}, NewHTTPError(http.StatusConflict, "email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return AuthOutput{}, err
	}

	// パスワードは必ずハッシュ化して保存
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthOutput{}, err
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
		Role:         model.RoleOwner,
		Status:       1,
	}

	// オーナー作成とBasic契約の付与は不可分。プランのseed漏れなら登録ごと失敗させる。
	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		plan, err := r.Plans().FindEnabledByName(ctx, DefaultPlanName)
		if err != nil {
			return err
		}
		today := dateOnly(time.Now())
		_, err = r.Subscriptions().Create(ctx, model.Subscription{
			OwnerID:   user.ID,
			PlanID:    plan.ID,
			Status:    model.SubscriptionActive,
			StartDate: today,
			EndDate:   today.AddDate(0, 0, plan.DurationDays),
		})
		return err
	})
	if err != nil {
		return AuthOutput{}, err
	}

	return u.authOutput(ctx, user)
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	if in.Email == "" || in.Password == "" {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return AuthOutput{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if user.Status != 1 {
		return AuthOutput{}, NewHTTPError(http.StatusForbidden, "account is disabled")
	}

	return u.authOutput(ctx, user)
}

// CreateSubUser はオーナーが店舗スタッフのアカウントを作る。プランのユーザー上限を見る。
func (u *AuthUsecase) CreateSubUser(ctx context.Context, ownerID int64, plan model.Plan, in CreateSubUserInput) (UserOutput, error) {
	if err := validateCredentials(in.Name, in.Email, in.Password); err != nil {
		return UserOutput{}, err
	}
	role := model.Role(in.Role)
	if role != model.RoleAdmin && role != model.RoleStaff {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "role must be admin or staff")
	}

	count, err := u.users.CountSubUsers(ctx, ownerID)
	if err != nil {
		return UserOutput{}, err
	}
	if !withinCap(plan.MaxUsers, count) {
		return UserOutput{}, NewHTTPError(http.StatusForbidden, "plan limit reached")
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return UserOutput{}, NewHTTPError(http.StatusConflict, "email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return UserOutput{}, err
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserOutput{}, err
	}

	user := &model.User{
		OwnerID:      &ownerID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
		Role:         role,
		Status:       1,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (u *AuthUsecase) ListUsers(ctx context.Context, ownerID int64) ([]UserOutput, error) {
	users, err := u.users.ListByTenant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]UserOutput, 0, len(users))
	for i := range users {
		out = append(out, toUserOutput(&users[i]))
	}
	return out, nil
}

func (u *AuthUsecase) authOutput(ctx context.Context, user *model.User) (AuthOutput, error) {
	token, err := u.issueToken(user)
	if err != nil {
		return AuthOutput{}, err
	}
	status, err := u.subs.Status(ctx, user.TenantID())
	if err != nil {
		return AuthOutput{}, err
	}
	return AuthOutput{
		Token:        token,
		User:         toUserOutput(user),
		Subscription: status,
	}, nil
}

func (u *AuthUsecase) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"tid":  user.TenantID(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.cfg.JWTSecret))
}

func validateCredentials(name, email, password string) error {
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if !emailRe.MatchString(email) {
		return NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if len(password) < 6 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	return nil
}

// nilの上限は無制限
func withinCap(max *int64, current int64) bool {
	return max == nil || current < *max
}

func toUserOutput(u *model.User) UserOutput {
	return UserOutput{
		ID:       u.ID,
		OwnerID:  u.OwnerID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		TenantID: u.TenantID(),
	}
}
