package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type SupplierListQuery struct {
	Page      int
	PageSize  int
	Order     string
	Direction string
}

// 仕入先の永続化（保存・取得）だけを約束。
type SupplierRepository interface {
	List(ctx context.Context, q SupplierListQuery) ([]model.Supplier, int64, error)
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	FindByEmail(ctx context.Context, email string) (model.Supplier, error)

	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, s model.Supplier) error
	Delete(ctx context.Context, id int64) error
}
