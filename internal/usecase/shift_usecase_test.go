package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShiftUsecase_Open_Success(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.ShiftsRepo.On("FindActiveForUpdate", mock.Anything, int64(1)).Return(model.Shift{}, repository.ErrNotFound)
	tx.Repos.UsersRepo.On("FindByID", mock.Anything, int64(2)).Return(&model.User{ID: 2, Name: "Taro"}, nil)
	tx.Repos.ShiftsRepo.On("Create", mock.Anything, mock.MatchedBy(func(s model.Shift) bool {
		return s.OwnerID == 1 && s.UserName == "Taro" && s.Status == model.ShiftStatusActive && s.CashInHand == 500
	})).Return(int64(7), nil)

	u := NewShiftUsecase(new(MockShiftRepository), tx)

	shift, err := u.Open(ctx, 1, 2, OpenShiftInput{CashInHand: 500})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), shift.ID)
	assert.Equal(t, model.ShiftStatusActive, shift.Status)

	tx.Repos.ShiftsRepo.AssertExpectations(t)
}

func TestShiftUsecase_Open_AlreadyActive(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.ShiftsRepo.On("FindActiveForUpdate", mock.Anything, int64(1)).Return(model.Shift{ID: 3, Status: model.ShiftStatusActive}, nil)

	u := NewShiftUsecase(new(MockShiftRepository), tx)

	_, err := u.Open(ctx, 1, 2, OpenShiftInput{})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, 1, tx.RolledBack)
	tx.Repos.ShiftsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// closeはopenと同じく行ロック付きで読む。積算途中の値を見ないため。
func TestShiftUsecase_Close_Success(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	start := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	tx.Repos.ShiftsRepo.On("FindActiveForUpdate", mock.Anything, int64(1)).Return(model.Shift{
		ID: 7, OwnerID: 1, UserName: "Taro", CashInHand: 500,
		StartTime: start, TotalSales: 1234.5, TotalOrders: 12,
		Status: model.ShiftStatusActive,
	}, nil)
	tx.Repos.ShiftsRepo.On("Close", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil)

	u := NewShiftUsecase(new(MockShiftRepository), tx)

	sum, err := u.Close(ctx, 1, CloseShiftInput{ClosingCash: 1700})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), sum.ShiftID)
	assert.Equal(t, 500.0, sum.OpeningCash)
	assert.Equal(t, 1700.0, sum.ClosingCash)
	assert.Equal(t, 1234.5, sum.TotalSales)
	assert.Equal(t, int64(12), sum.TotalOrders)
	assert.Equal(t, 0, tx.RolledBack)

	tx.Repos.ShiftsRepo.AssertExpectations(t)
}

func TestShiftUsecase_Close_NoActive(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()
	tx.Repos.ShiftsRepo.On("FindActiveForUpdate", mock.Anything, int64(1)).Return(model.Shift{}, repository.ErrNotFound)

	u := NewShiftUsecase(new(MockShiftRepository), tx)

	_, err := u.Close(ctx, 1, CloseShiftInput{})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "no active shift found", he.Message)
	assert.Equal(t, 1, tx.RolledBack)
	tx.Repos.ShiftsRepo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything)
}
