package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Tx内で起きたエラーをHTTPErrorに揃える。業務エラーはそのまま、DB起因は500。
func asUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

// unit_priceはnumeric(8,2)：0より大きく、小数2桁まで、10^6未満
var maxUnitPrice = decimal.New(1, 6)

func validateUnitPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return NewHTTPError(http.StatusBadRequest, "unit price must be greater than 0")
	}
	if !price.Equal(price.Round(2)) {
		return NewHTTPError(http.StatusBadRequest, "unit price must have at most 2 decimal places")
	}
	if price.GreaterThanOrEqual(maxUnitPrice) {
		return NewHTTPError(http.StatusBadRequest, "unit price must have at most 8 digits")
	}
	return nil
}

type ProductUsecase struct {
	products  repo.ProductRepository
	suppliers repo.SupplierRepository
	tx        repo.TransactionManager
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	suppliers repo.SupplierRepository,
	tx repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		products:  products,
		suppliers: suppliers,
		tx:        tx,
	}
}

type ProductCreateInput struct {
	Name            string
	QuantityInStock int64
	QuantitySold    int64
	UnitPrice       decimal.Decimal
	SupplierID      int64
}

// 部分更新：nilのフィールドは「未指定」
type ProductPatchInput struct {
	Name            *string
	QuantityInStock *int64
	QuantitySold    *int64
	UnitPrice       *decimal.Decimal
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductCreateInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 30 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name must be 3-30 characters")
	}
	if in.QuantityInStock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity in stock cannot be negative")
	}
	if in.QuantitySold < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity sold cannot be negative")
	}
	if err := validateUnitPrice(in.UnitPrice); err != nil {
		return model.Product{}, err
	}

	// 在庫より多くは売れない
	if in.QuantitySold > in.QuantityInStock {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity sold cannot exceed quantity in stock")
	}

	var created model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 仕入先が存在しなければ作らない
		if _, err := r.Suppliers().FindByID(ctx, in.SupplierID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "supplier does not exist")
			}
			return err
		}

		// revenue = quantity_sold × unit_price（decimalで厳密に）
		revenue := decimal.NewFromInt(in.QuantitySold).Mul(in.UnitPrice)

		p, err := r.Products().Create(ctx, model.Product{
			Name:            name,
			QuantityInStock: in.QuantityInStock,
			QuantitySold:    in.QuantitySold,
			UnitPrice:       in.UnitPrice,
			Revenue:         revenue,
			SupplierID:      in.SupplierID,
		})
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return model.Product{}, asUsecaseError(err)
	}
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductPatchInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 指定されたフィールドだけをマージ
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 3 || len(name) > 30 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "name must be 3-30 characters")
		}
		p.Name = name
	}
	if in.QuantityInStock != nil {
		p.QuantityInStock = *in.QuantityInStock
	}
	if in.QuantitySold != nil {
		p.QuantitySold = *in.QuantitySold
	}
	if in.UnitPrice != nil {
		p.UnitPrice = *in.UnitPrice
	}

	// マージ後の状態で再検証
	if p.QuantityInStock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity in stock cannot be negative")
	}
	if p.QuantitySold < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity sold cannot be negative")
	}
	if err := validateUnitPrice(p.UnitPrice); err != nil {
		return model.Product{}, err
	}

	// sold<=stockは数量が今回のpatchに含まれたときだけ再チェック
	if (in.QuantitySold != nil || in.QuantityInStock != nil) && p.QuantitySold > p.QuantityInStock {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity sold cannot exceed quantity in stock")
	}

	// revenueはsoldかpriceが変わったときだけ再計算
	if in.QuantitySold != nil || in.UnitPrice != nil {
		p.Revenue = decimal.NewFromInt(p.QuantitySold).Mul(p.UnitPrice)
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Update(ctx, p); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Product{}, asUsecaseError(err)
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			return err
		}
		return r.Products().Delete(ctx, productID)
	})
	return asUsecaseError(err)
}
