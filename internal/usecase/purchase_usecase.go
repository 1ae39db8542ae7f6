package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type PurchaseItemInput struct {
	ProductID     int64   `json:"productId"`
	Quantity      int64   `json:"quantity"`
	PurchasePrice float64 `json:"purchasePrice"`
}

type PurchaseInput struct {
	SupplierID   *int64              `json:"supplierId,omitempty"`
	SupplierName string              `json:"supplierName"`
	Reference    string              `json:"reference"`
	PaidAmount   float64             `json:"paidAmount"`
	Status       string              `json:"status"`
	Items        []PurchaseItemInput `json:"items"`
}

type PurchaseOutput struct {
	model.Purchase
	Items []model.PurchaseItem `json:"items"`
}

// PurchaseUsecase は仕入を扱う。仕入は入庫なので作成で在庫が増え、削除で戻る。
// 注文と同じく在庫の増減は明細の保存と同一トランザクション。
type PurchaseUsecase struct {
	purchases repository.PurchaseRepository
	tx        repository.TransactionManager
}

func NewPurchaseUsecase(purchases repository.PurchaseRepository, tx repository.TransactionManager) *PurchaseUsecase {
	return &PurchaseUsecase{purchases: purchases, tx: tx}
}

func (u *PurchaseUsecase) List(ctx context.Context, ownerID int64) ([]PurchaseOutput, error) {
	purchases, err := u.purchases.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]PurchaseOutput, 0, len(purchases))
	for _, p := range purchases {
		items, err := u.purchases.ListItems(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PurchaseOutput{Purchase: p, Items: items})
	}
	return out, nil
}

func (u *PurchaseUsecase) Get(ctx context.Context, ownerID int64, purchaseID int64) (PurchaseOutput, error) {
	p, err := u.purchases.FindByID(ctx, ownerID, purchaseID)
	if errors.Is(err, repository.ErrNotFound) {
		return PurchaseOutput{}, NewHTTPError(http.StatusNotFound, "purchase not found")
	}
	if err != nil {
		return PurchaseOutput{}, err
	}
	items, err := u.purchases.ListItems(ctx, p.ID)
	if err != nil {
		return PurchaseOutput{}, err
	}
	return PurchaseOutput{Purchase: p, Items: items}, nil
}

func (u *PurchaseUsecase) Create(ctx context.Context, ownerID int64, in PurchaseInput) (PurchaseOutput, error) {
	if len(in.Items) == 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "item quantity must be positive")
		}
		if item.PurchasePrice < 0 {
			return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "purchasePrice must not be negative")
		}
	}

	var out PurchaseOutput
	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		var total float64
		items := make([]model.PurchaseItem, 0, len(in.Items))

		for _, item := range in.Items {
			product, err := r.Products().FindByID(ctx, ownerID, item.ProductID)
			if errors.Is(err, repository.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", item.ProductID))
			}
			if err != nil {
				return err
			}

			cost := item.PurchasePrice * float64(item.Quantity)
			total += cost
			items = append(items, model.PurchaseItem{
				ProductID:     item.ProductID,
				ProductName:   product.Name,
				Quantity:      item.Quantity,
				PurchasePrice: item.PurchasePrice,
				TotalCost:     cost,
			})

			if err := r.Products().IncreaseStock(ctx, ownerID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		p := model.Purchase{
			OwnerID:      ownerID,
			SupplierID:   in.SupplierID,
			SupplierName: in.SupplierName,
			Reference:    in.Reference,
			TotalAmount:  total,
			PaidAmount:   in.PaidAmount,
			DueAmount:    total - in.PaidAmount,
			Status:       in.Status,
		}
		id, err := r.Purchases().Create(ctx, p)
		if err != nil {
			return err
		}
		p.ID = id

		if err := r.Purchases().CreateItems(ctx, id, items); err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseID = id
		}
		out = PurchaseOutput{Purchase: p, Items: items}
		return nil
	})
	if err != nil {
		return PurchaseOutput{}, err
	}
	return out, nil
}

// Delete は入庫済みの在庫を引き戻してから仕入を消す。
// 既に売れて在庫が足りない場合でもマイナスまで引く（台帳の整合を優先）。
func (u *PurchaseUsecase) Delete(ctx context.Context, ownerID int64, purchaseID int64) error {
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Purchases().FindByID(ctx, ownerID, purchaseID); errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "purchase not found")
		} else if err != nil {
			return err
		}

		items, err := r.Purchases().ListItems(ctx, purchaseID)
		if err != nil {
			return err
		}
		for _, item := range items {
			err := r.Products().DecreaseStock(ctx, ownerID, item.ProductID, item.Quantity)
			if errors.Is(err, repository.ErrNotFound) {
				continue // 商品が消えていれば戻し先なし
			}
			if err != nil {
				return err
			}
		}

		if err := r.Purchases().DeleteItems(ctx, purchaseID); err != nil {
			return err
		}
		return r.Purchases().Delete(ctx, ownerID, purchaseID)
	})
}
