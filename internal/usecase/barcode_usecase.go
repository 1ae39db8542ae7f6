package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/google/uuid"
)

type BarcodeInput struct {
	ProductID     int64  `json:"productId"`
	BarcodeValue  string `json:"barcodeValue"`
	BarcodeFormat string `json:"barcodeFormat"`
	Quantity      int    `json:"quantity"`
	PaperSize     string `json:"paperSize"`
}

// BarcodeUsecase はラベル生成の記録を扱う。印刷自体はクライアントの仕事。
type BarcodeUsecase struct {
	barcodes repository.BarcodeRepository
	products repository.ProductRepository
}

func NewBarcodeUsecase(barcodes repository.BarcodeRepository, products repository.ProductRepository) *BarcodeUsecase {
	return &BarcodeUsecase{barcodes: barcodes, products: products}
}

func (u *BarcodeUsecase) List(ctx context.Context, ownerID int64) ([]model.Barcode, error) {
	return u.barcodes.ListByOwner(ctx, ownerID)
}

// Generate は1商品ぶんのラベルをquantity枚記録する。値が未指定ならサーバーで採番。
func (u *BarcodeUsecase) Generate(ctx context.Context, ownerID int64, in BarcodeInput) ([]model.Barcode, error) {
	if in.Quantity <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "quantity must be positive")
	}
	format := in.BarcodeFormat
	if format == "" {
		format = "CODE128"
	}

	product, err := u.products.FindByID(ctx, ownerID, in.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return nil, err
	}

	value := in.BarcodeValue
	if value == "" {
		value = uuid.NewString()
	}

	barcodes := make([]model.Barcode, 0, in.Quantity)
	for i := 0; i < in.Quantity; i++ {
		barcodes = append(barcodes, model.Barcode{
			OwnerID:        ownerID,
			ProductID:      product.ID,
			ProductName:    product.Name,
			SKU:            product.SKU,
			BarcodeValue:   value,
			BarcodeFormat:  format,
			Price:          product.Price,
			SequenceNumber: i + 1,
			Quantity:       in.Quantity,
			PaperSize:      in.PaperSize,
		})
	}
	if err := u.barcodes.CreateBulk(ctx, barcodes); err != nil {
		return nil, err
	}
	return barcodes, nil
}

func (u *BarcodeUsecase) Delete(ctx context.Context, ownerID int64, barcodeID int64) error {
	err := u.barcodes.Delete(ctx, ownerID, barcodeID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "barcode not found")
	}
	return err
}
