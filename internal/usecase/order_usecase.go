package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type OrderInput struct {
	OrderNumber   string            `json:"orderNumber"`
	CustomerID    *int64            `json:"customerId,omitempty"`
	CustomerName  string            `json:"customerName"`
	Items         []model.OrderItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Shipping      float64           `json:"shipping"`
	Tax           float64           `json:"tax"`
	Discount      float64           `json:"discount"`
	Roundoff      float64           `json:"roundoff"`
	TotalAmount   float64           `json:"totalAmount"`
	CashReceived  float64           `json:"cashReceived"`
	ChangeAmount  float64           `json:"changeAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        string            `json:"status"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	OrderNumber   string            `json:"orderNumber"`
	CustomerID    *int64            `json:"customerId,omitempty"`
	CustomerName  string            `json:"customerName"`
	Items         []model.OrderItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Shipping      float64           `json:"shipping"`
	Tax           float64           `json:"tax"`
	Discount      float64           `json:"discount"`
	Roundoff      float64           `json:"roundoff"`
	TotalAmount   float64           `json:"totalAmount"`
	CashReceived  float64           `json:"cashReceived"`
	ChangeAmount  float64           `json:"changeAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        string            `json:"status"`
	CreatedOn     string            `json:"createdOn"`
}

// OrderUsecase は注文の作成・削除を在庫・シフトと同一トランザクションで扱う。
// 作成: 注文insert + 在庫減算 + activeシフトへ売上加算。どれかが失敗したら全部戻す。
// 削除: 注文deleteと在庫戻し。シフトの累計は過去の売上記録として戻さない。
type OrderUsecase struct {
	orders repository.OrderRepository
	tx     repository.TransactionManager
}

func NewOrderUsecase(orders repository.OrderRepository, tx repository.TransactionManager) *OrderUsecase {
	return &OrderUsecase{orders: orders, tx: tx}
}

func (u *OrderUsecase) List(ctx context.Context, ownerID int64) ([]OrderOutput, error) {
	orders, err := u.orders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		dto, err := toOrderOutput(o)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

func (u *OrderUsecase) Get(ctx context.Context, ownerID int64, orderID int64) (OrderOutput, error) {
	o, err := u.orders.FindByID(ctx, ownerID, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(o)
}

func (u *OrderUsecase) Create(ctx context.Context, ownerID int64, in OrderInput) (OrderOutput, error) {
	if err := validateOrderInput(in); err != nil {
		return OrderOutput{}, err
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return OrderOutput{}, err
	}

	order := model.Order{
		OwnerID:       ownerID,
		OrderNumber:   in.OrderNumber,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		Items:         string(itemsJSON),
		Subtotal:      in.Subtotal,
		Shipping:      in.Shipping,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Roundoff:      in.Roundoff,
		TotalAmount:   in.TotalAmount,
		CashReceived:  in.CashReceived,
		ChangeAmount:  in.ChangeAmount,
		PaymentMethod: in.PaymentMethod,
		Status:        orderStatusOrDefault(in.Status),
	}

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		order.ID = id

		for _, item := range in.Items {
			if item.ProductID == nil {
				continue // 手入力行は在庫対象外
			}
			ok, err := r.Products().DecreaseStockIfEnough(ctx, ownerID, *item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// 減算0行 = 商品が無いか在庫不足。どちらかを見分けて返す。
				if _, err := r.Products().FindByID(ctx, ownerID, *item.ProductID); errors.Is(err, repository.ErrNotFound) {
					return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", *item.ProductID))
				} else if err != nil {
					return err
				}
				return NewHTTPError(http.StatusConflict, fmt.Sprintf("insufficient stock for %s", item.Name))
			}
		}

		// activeシフトが無ければ何も起きない
		return r.Shifts().AccrueActive(ctx, ownerID, in.TotalAmount)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(order)
}

// Update は注文レコードをそのまま置き換える。在庫・シフトの再調整はしない。
func (u *OrderUsecase) Update(ctx context.Context, ownerID int64, orderID int64, in OrderInput) (OrderOutput, error) {
	if err := validateOrderInput(in); err != nil {
		return OrderOutput{}, err
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return OrderOutput{}, err
	}

	order := model.Order{
		ID:            orderID,
		OwnerID:       ownerID,
		OrderNumber:   in.OrderNumber,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		Items:         string(itemsJSON),
		Subtotal:      in.Subtotal,
		Shipping:      in.Shipping,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Roundoff:      in.Roundoff,
		TotalAmount:   in.TotalAmount,
		CashReceived:  in.CashReceived,
		ChangeAmount:  in.ChangeAmount,
		PaymentMethod: in.PaymentMethod,
		Status:        orderStatusOrDefault(in.Status),
	}

	if err := u.orders.Update(ctx, order); errors.Is(err, repository.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	} else if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(order)
}

func (u *OrderUsecase) Delete(ctx context.Context, ownerID int64, orderID int64) error {
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, ownerID, orderID)
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return err
		}

		var items []model.OrderItem
		if err := json.Unmarshal([]byte(order.Items), &items); err != nil {
			return err
		}
		for _, item := range items {
			if item.ProductID == nil {
				continue
			}
			err := r.Products().IncreaseStock(ctx, ownerID, *item.ProductID, item.Quantity)
			if errors.Is(err, repository.ErrNotFound) {
				continue // 注文後に削除された商品は戻し先が無い
			}
			if err != nil {
				return err
			}
		}

		return r.Orders().Delete(ctx, ownerID, orderID)
	})
}

func validateOrderInput(in OrderInput) error {
	if in.OrderNumber == "" {
		return NewHTTPError(http.StatusBadRequest, "orderNumber is required")
	}
	if len(in.Items) == 0 {
		return NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return NewHTTPError(http.StatusBadRequest, "item quantity must be positive")
		}
	}
	if in.TotalAmount <= 0 {
		return NewHTTPError(http.StatusBadRequest, "totalAmount must be positive")
	}
	switch model.OrderStatus(in.Status) {
	case "", model.OrderStatusCompleted, model.OrderStatusPending, model.OrderStatusCanceled:
	default:
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown order status %q", in.Status))
	}
	return nil
}

// 省略時のみcompletedにする。不正値はvalidateOrderInputで弾いてある。
func orderStatusOrDefault(s string) model.OrderStatus {
	if s == "" {
		return model.OrderStatusCompleted
	}
	return model.OrderStatus(s)
}

func toOrderOutput(o model.Order) (OrderOutput, error) {
	var items []model.OrderItem
	if o.Items != "" {
		if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
			return OrderOutput{}, err
		}
	}
	return OrderOutput{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Items:         items,
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Tax:           o.Tax,
		Discount:      o.Discount,
		Roundoff:      o.Roundoff,
		TotalAmount:   o.TotalAmount,
		CashReceived:  o.CashReceived,
		ChangeAmount:  o.ChangeAmount,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		CreatedOn:     o.CreatedOn.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
