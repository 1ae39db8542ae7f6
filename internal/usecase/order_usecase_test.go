package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64p(v int64) *int64 { return &v }

func TestOrderUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.OrdersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.OwnerID == int64(1) && o.OrderNumber == "ORD-001" && o.Status == model.OrderStatusCompleted
	})).Return(int64(10), nil)

	// 商品行だけ在庫が減る
	tx.Repos.ProductsRepo.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(5), int64(2)).Return(true, nil)
	tx.Repos.ShiftsRepo.On("AccrueActive", mock.Anything, int64(1), 300.0).Return(nil)

	u := NewOrderUsecase(new(MockOrderRepository), tx)

	out, err := u.Create(ctx, 1, OrderInput{
		OrderNumber: "ORD-001",
		Items: []model.OrderItem{
			{ProductID: int64p(5), Name: "Coffee", Quantity: 2, UnitPrice: 100},
			{Name: "Delivery", Quantity: 1, UnitPrice: 100}, // 手入力行。在庫は触らない
		},
		TotalAmount: 300,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 0, tx.RolledBack)

	tx.Repos.OrdersRepo.AssertExpectations(t)
	tx.Repos.ProductsRepo.AssertExpectations(t)
	tx.Repos.ShiftsRepo.AssertExpectations(t)
}

func TestOrderUsecase_Create_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.OrdersRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(10), nil)
	tx.Repos.ProductsRepo.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(5), int64(99)).Return(false, nil)
	// 商品はあるので在庫不足 => 409
	tx.Repos.ProductsRepo.On("FindByID", mock.Anything, int64(1), int64(5)).Return(model.Product{ID: 5, Name: "Coffee"}, nil)

	u := NewOrderUsecase(new(MockOrderRepository), tx)

	_, err := u.Create(ctx, 1, OrderInput{
		OrderNumber: "ORD-002",
		Items:       []model.OrderItem{{ProductID: int64p(5), Name: "Coffee", Quantity: 99, UnitPrice: 100}},
		TotalAmount: 9900,
	})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Contains(t, he.Message, "Coffee")
	// 注文insertごとロールバックされる
	assert.Equal(t, 1, tx.RolledBack)
}

func TestOrderUsecase_Create_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.OrdersRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(10), nil)
	tx.Repos.ProductsRepo.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(404), int64(1)).Return(false, nil)
	tx.Repos.ProductsRepo.On("FindByID", mock.Anything, int64(1), int64(404)).Return(model.Product{}, repository.ErrNotFound)

	u := NewOrderUsecase(new(MockOrderRepository), tx)

	_, err := u.Create(ctx, 1, OrderInput{
		OrderNumber: "ORD-003",
		Items:       []model.OrderItem{{ProductID: int64p(404), Name: "Ghost", Quantity: 1, UnitPrice: 10}},
		TotalAmount: 10,
	})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, 1, tx.RolledBack)
}

func TestOrderUsecase_Create_Validation(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()
	u := NewOrderUsecase(new(MockOrderRepository), tx)

	cases := []struct {
		name string
		in   OrderInput
	}{
		{"missing order number", OrderInput{Items: []model.OrderItem{{Name: "x", Quantity: 1}}}},
		{"empty items", OrderInput{OrderNumber: "ORD-1"}},
		{"zero quantity", OrderInput{OrderNumber: "ORD-1", Items: []model.OrderItem{{Name: "x", Quantity: 0}}}},
		{"zero total", OrderInput{OrderNumber: "ORD-1", Items: []model.OrderItem{{Name: "x", Quantity: 1, UnitPrice: 1}}}},
		{"negative total", OrderInput{OrderNumber: "ORD-1", Items: []model.OrderItem{{Name: "x", Quantity: 1}}, TotalAmount: -1}},
		{"unknown status", OrderInput{OrderNumber: "ORD-1", Items: []model.OrderItem{{Name: "x", Quantity: 1}}, TotalAmount: 100, Status: "complete"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.Create(ctx, 1, tc.in)
			he, ok := AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
		})
	}

	// validationで落ちたらトランザクションに入らない
	assert.Equal(t, 0, tx.RolledBack)
	tx.Repos.OrdersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderStatusOrDefault(t *testing.T) {
	assert.Equal(t, model.OrderStatusCompleted, orderStatusOrDefault(""))
	assert.Equal(t, model.OrderStatusPending, orderStatusOrDefault("pending"))
	assert.Equal(t, model.OrderStatusCanceled, orderStatusOrDefault("canceled"))
}

func TestOrderUsecase_Delete_RestoresStock(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	// productId 5は2個戻る。productId 7は商品が消えているのでスキップ。手入力行は対象外。
	stored := `[{"productId":5,"name":"Coffee","quantity":2,"unitPrice":100},` +
		`{"productId":7,"name":"Tea","quantity":1,"unitPrice":50},` +
		`{"name":"Delivery","quantity":1,"unitPrice":100}]`

	tx.Repos.OrdersRepo.On("FindByID", mock.Anything, int64(1), int64(10)).Return(model.Order{
		ID: 10, OwnerID: 1, OrderNumber: "ORD-001", Items: stored, TotalAmount: 350,
	}, nil)
	tx.Repos.ProductsRepo.On("IncreaseStock", mock.Anything, int64(1), int64(5), int64(2)).Return(nil)
	tx.Repos.ProductsRepo.On("IncreaseStock", mock.Anything, int64(1), int64(7), int64(1)).Return(repository.ErrNotFound)
	tx.Repos.OrdersRepo.On("Delete", mock.Anything, int64(1), int64(10)).Return(nil)

	u := NewOrderUsecase(new(MockOrderRepository), tx)

	err := u.Delete(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, tx.RolledBack)

	// 削除はシフトの累計を巻き戻さない
	tx.Repos.ShiftsRepo.AssertNotCalled(t, "AccrueActive", mock.Anything, mock.Anything, mock.Anything)
	tx.Repos.OrdersRepo.AssertExpectations(t)
	tx.Repos.ProductsRepo.AssertExpectations(t)
}

func TestOrderUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	tx := newMockTxManager()

	tx.Repos.OrdersRepo.On("FindByID", mock.Anything, int64(1), int64(99)).Return(model.Order{}, repository.ErrNotFound)

	u := NewOrderUsecase(new(MockOrderRepository), tx)

	err := u.Delete(ctx, 1, 99)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
