package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// 仕入先に紐づく商品数（削除ガード用）
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}
