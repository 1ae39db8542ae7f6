package repository

import (
	"context"

	"app/internal/domain/model"
)

type BarcodeRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Barcode, error)
	Create(ctx context.Context, b model.Barcode) (int64, error)
	CreateBulk(ctx context.Context, barcodes []model.Barcode) error
	Delete(ctx context.Context, ownerID int64, barcodeID int64) error
}
