package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

type OpenShiftInput struct {
	CashInHand float64 `json:"cashInHand"`
}

type CloseShiftInput struct {
	ClosingCash float64 `json:"closingCash"`
}

// ShiftSummary はclose時に返す集計。total系は注文作成時に積んだ値。
type ShiftSummary struct {
	ShiftID     int64   `json:"shiftId"`
	UserName    string  `json:"userName"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	OpeningCash float64 `json:"openingCash"`
	ClosingCash float64 `json:"closingCash"`
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int64   `json:"totalOrders"`
}

// ShiftUsecase はレジセッションの開閉を扱う。activeはテナントごとに最大1本。
type ShiftUsecase struct {
	shifts repository.ShiftRepository
	tx     repository.TransactionManager
}

func NewShiftUsecase(shifts repository.ShiftRepository, tx repository.TransactionManager) *ShiftUsecase {
	return &ShiftUsecase{shifts: shifts, tx: tx}
}

// Open は行ロック付きでactiveの有無を確認してから作る（同時openの二重作成防止）
func (u *ShiftUsecase) Open(ctx context.Context, ownerID int64, userID int64, in OpenShiftInput) (model.Shift, error) {
	if in.CashInHand < 0 {
		return model.Shift{}, NewHTTPError(http.StatusBadRequest, "cashInHand must not be negative")
	}

	var created model.Shift
	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Shifts().FindActiveForUpdate(ctx, ownerID); err == nil {
			return NewHTTPError(http.StatusConflict, "shift already active")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		user, err := r.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}

		created = model.Shift{
			OwnerID:    ownerID,
			UserName:   user.Name,
			CashInHand: in.CashInHand,
			StartTime:  time.Now(),
			Status:     model.ShiftStatusActive,
		}
		id, err := r.Shifts().Create(ctx, created)
		if err != nil {
			return err
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return model.Shift{}, err
	}
	return created, nil
}

// Close も行ロック付きで読む。注文のAccrueActiveと競合してもサマリの値が
// 確定後のものになるようにするため。
func (u *ShiftUsecase) Close(ctx context.Context, ownerID int64, in CloseShiftInput) (ShiftSummary, error) {
	var shift model.Shift
	var end time.Time
	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		var err error
		shift, err = r.Shifts().FindActiveForUpdate(ctx, ownerID)
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "no active shift found")
		}
		if err != nil {
			return err
		}

		end = time.Now()
		return r.Shifts().Close(ctx, shift.ID, end)
	})
	if err != nil {
		return ShiftSummary{}, err
	}

	return ShiftSummary{
		ShiftID:     shift.ID,
		UserName:    shift.UserName,
		StartTime:   shift.StartTime.Format(time.RFC3339),
		EndTime:     end.Format(time.RFC3339),
		OpeningCash: shift.CashInHand,
		ClosingCash: in.ClosingCash,
		TotalSales:  shift.TotalSales,
		TotalOrders: shift.TotalOrders,
	}, nil
}

// Active はactiveなシフトを返す。無いときはnil（エラーではない）。
func (u *ShiftUsecase) Active(ctx context.Context, ownerID int64) (*model.Shift, error) {
	shift, err := u.shifts.FindActive(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (u *ShiftUsecase) History(ctx context.Context, ownerID int64) ([]model.Shift, error) {
	return u.shifts.ListByOwner(ctx, ownerID)
}
