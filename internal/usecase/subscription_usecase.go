package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/cache"
	"app/internal/repository"
)

// 失効後の猶予日数。日付単位で数える。
const GraceDays = 5

// 新規登録時に自動付与するプラン
const DefaultPlanName = "Basic"

const accessStateTTL = 30 * time.Second

type AccessState string

const (
	AccessActive AccessState = "Active"
	AccessGrace  AccessState = "Grace"
	AccessLocked AccessState = "Locked"
)

// AccessSnapshot はゲートが見るサブスク状態の最小形。redisに30秒キャッシュする。
type AccessSnapshot struct {
	State         AccessState `json:"state"`
	PlanID        int64       `json:"planId,omitempty"`
	RemainingDays int         `json:"remainingDays,omitempty"`
	Message       string      `json:"message,omitempty"`
}

type SubscriptionStatusOutput struct {
	State         AccessState         `json:"state"`
	Subscription  *model.Subscription `json:"subscription,omitempty"`
	Plan          *model.Plan         `json:"plan,omitempty"`
	RemainingDays int                 `json:"remainingDays,omitempty"`
	Message       string              `json:"message,omitempty"`
}

type SubscriptionHistoryEntry struct {
	model.Subscription
	PlanName string `json:"plan_name"`
}

type UpgradeInput struct {
	PlanID       int64  `json:"planId"`
	PaymentProof string `json:"paymentProof"`
}

type RenewInput struct {
	PaymentProof string `json:"paymentProof"`
}

// SubscriptionUsecase はテナントの契約状態を管理する。
// 台帳は追記専用で、現在の契約は常に最新行。Grace/Lockedは保存せず毎回導出する。
type SubscriptionUsecase struct {
	subs  repository.SubscriptionRepository
	plans repository.PlanRepository
	tx    repository.TransactionManager
	cache cache.Store

	// テスト用に差し替え可能にしておく
	now func() time.Time
}

func NewSubscriptionUsecase(
	subs repository.SubscriptionRepository,
	plans repository.PlanRepository,
	tx repository.TransactionManager,
	store cache.Store,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subs:  subs,
		plans: plans,
		tx:    tx,
		cache: store,
		now:   time.Now,
	}
}

// deriveState は最新行と今日の日付から状態を導出する。時刻は見ない。
func deriveState(sub model.Subscription, today time.Time) (AccessState, int, string) {
	if sub.Status == model.SubscriptionPending {
		return AccessLocked, 0, "subscription pending approval"
	}
	end := dateOnly(sub.EndDate)
	day := dateOnly(today)
	if !day.After(end) {
		return AccessActive, 0, ""
	}
	diff := int(day.Sub(end).Hours() / 24)
	if diff <= GraceDays {
		return AccessGrace, GraceDays - diff, fmt.Sprintf("subscription expired, %d grace day(s) remaining", GraceDays-diff)
	}
	return AccessLocked, 0, "subscription expired"
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func accessStateKey(ownerID int64) string {
	return fmt.Sprintf("sub:state:%d", ownerID)
}

// ResolveAccess はゲートミドルウェアが毎リクエスト呼ぶ。redisのスナップショットを
// 先に見て、missのときだけDBから導出してキャッシュする。
func (u *SubscriptionUsecase) ResolveAccess(ctx context.Context, ownerID int64) (AccessSnapshot, error) {
	key := accessStateKey(ownerID)
	if raw, err := u.cache.Get(ctx, key); err == nil {
		var snap AccessSnapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return snap, nil
		}
	}

	snap, err := u.resolveFromDB(ctx, ownerID)
	if err != nil {
		return AccessSnapshot{}, err
	}

	if raw, err := json.Marshal(snap); err == nil {
		_ = u.cache.Set(ctx, key, raw, accessStateTTL) // キャッシュ失敗は無視
	}
	return snap, nil
}

func (u *SubscriptionUsecase) resolveFromDB(ctx context.Context, ownerID int64) (AccessSnapshot, error) {
	sub, err := u.subs.FindLatest(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return AccessSnapshot{State: AccessLocked, Message: "no subscription found"}, nil
	}
	if err != nil {
		return AccessSnapshot{}, err
	}
	state, remaining, msg := deriveState(sub, u.now())
	return AccessSnapshot{
		State:         state,
		PlanID:        sub.PlanID,
		RemainingDays: remaining,
		Message:       msg,
	}, nil
}

func (u *SubscriptionUsecase) Status(ctx context.Context, ownerID int64) (SubscriptionStatusOutput, error) {
	sub, err := u.subs.FindLatest(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return SubscriptionStatusOutput{
			State:   AccessLocked,
			Message: "no subscription found",
		}, nil
	}
	if err != nil {
		return SubscriptionStatusOutput{}, err
	}

	state, remaining, msg := deriveState(sub, u.now())
	out := SubscriptionStatusOutput{
		State:         state,
		Subscription:  &sub,
		RemainingDays: remaining,
		Message:       msg,
	}
	if plan, err := u.plans.FindByID(ctx, sub.PlanID); err == nil {
		out.Plan = &plan
	}
	return out, nil
}

func (u *SubscriptionUsecase) Plans(ctx context.Context) ([]model.Plan, error) {
	return u.plans.ListEnabled(ctx)
}

func (u *SubscriptionUsecase) History(ctx context.Context, ownerID int64) ([]SubscriptionHistoryEntry, error) {
	subs, err := u.subs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	entries := make([]SubscriptionHistoryEntry, 0, len(subs))
	for _, s := range subs {
		name, ok := names[s.PlanID]
		if !ok {
			if plan, err := u.plans.FindByID(ctx, s.PlanID); err == nil {
				name = plan.Name
			}
			names[s.PlanID] = name
		}
		entries = append(entries, SubscriptionHistoryEntry{Subscription: s, PlanName: name})
	}
	return entries, nil
}

// Upgrade は生きている行（Active/Pending）を全部Expiredに倒してから
// 新しいPending行を積む。承認フローが無いので即時Pending止まり。
func (u *SubscriptionUsecase) Upgrade(ctx context.Context, ownerID int64, in UpgradeInput) (model.Subscription, error) {
	plan, err := u.plans.FindEnabledByID(ctx, in.PlanID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Subscription{}, NewHTTPError(http.StatusNotFound, "plan not found")
	}
	if err != nil {
		return model.Subscription{}, err
	}
	return u.replaceLive(ctx, ownerID, plan, in.PaymentProof)
}

// Renew は最新行のプランをそのまま使う。Upgradeと同じexpire+insertの原子処理。
func (u *SubscriptionUsecase) Renew(ctx context.Context, ownerID int64, in RenewInput) (model.Subscription, error) {
	latest, err := u.subs.FindLatest(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Subscription{}, NewHTTPError(http.StatusNotFound, "no subscription found")
	}
	if err != nil {
		return model.Subscription{}, err
	}
	plan, err := u.plans.FindEnabledByID(ctx, latest.PlanID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Subscription{}, NewHTTPError(http.StatusNotFound, "plan not found")
	}
	if err != nil {
		return model.Subscription{}, err
	}
	return u.replaceLive(ctx, ownerID, plan, in.PaymentProof)
}

func (u *SubscriptionUsecase) replaceLive(ctx context.Context, ownerID int64, plan model.Plan, proof string) (model.Subscription, error) {
	today := dateOnly(u.now())
	sub := model.Subscription{
		OwnerID:      ownerID,
		PlanID:       plan.ID,
		Status:       model.SubscriptionPending,
		StartDate:    today,
		EndDate:      today.AddDate(0, 0, plan.DurationDays),
		PaymentProof: proof,
	}

	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Subscriptions().ExpireLive(ctx, ownerID); err != nil {
			return err
		}
		id, err := r.Subscriptions().Create(ctx, sub)
		if err != nil {
			return err
		}
		sub.ID = id
		return nil
	})
	if err != nil {
		return model.Subscription{}, err
	}

	_ = u.cache.Delete(ctx, accessStateKey(ownerID))
	return sub, nil
}
