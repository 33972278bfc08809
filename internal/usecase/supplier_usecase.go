package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type SupplierUsecase struct {
	suppliers repo.SupplierRepository
	tx        repo.TransactionManager
}

// DI
func NewSupplierUsecase(suppliers repo.SupplierRepository, tx repo.TransactionManager) *SupplierUsecase {
	return &SupplierUsecase{
		suppliers: suppliers,
		tx:        tx,
	}
}

// GET /suppliersの入力DTO
type ListSuppliersInput struct {
	Page      int
	PageSize  int
	Order     string
	Direction string
}

type SupplierListOutput struct {
	Items    []model.Supplier `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Pages    int              `json:"pages"`
}

func (u *SupplierUsecase) ListSuppliers(ctx context.Context, in ListSuppliersInput) (SupplierListOutput, error) {
	if in.Page < 1 {
		return SupplierListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		return SupplierListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page_size")
	}

	// order/directionは不正値ならデフォルトに倒す
	order := in.Order
	switch order {
	case "name", "email", "company":
	default:
		order = "name"
	}
	direction := in.Direction
	if direction != "desc" {
		direction = "asc"
	}

	items, total, err := u.suppliers.List(ctx, repo.SupplierListQuery{
		Page:      in.Page,
		PageSize:  in.PageSize,
		Order:     order,
		Direction: direction,
	})
	if err != nil {
		return SupplierListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		// 範囲外ページでもitemsは空配列で返す
		items = []model.Supplier{}
	}

	// pages = ceil(total / page_size)
	pages := int((total + int64(in.PageSize) - 1) / int64(in.PageSize))

	return SupplierListOutput{
		Items:    items,
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
		Pages:    pages,
	}, nil
}

func (u *SupplierUsecase) GetSupplier(ctx context.Context, supplierID int64) (model.Supplier, error) {
	if supplierID <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	s, err := u.suppliers.FindByID(ctx, supplierID)
	if err == repo.ErrNotFound {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

type SupplierCreateInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// 部分更新：nilのフィールドは「未指定」
type SupplierPatchInput struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
}

func (u *SupplierUsecase) CreateSupplier(ctx context.Context, in SupplierCreateInput) (model.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 20 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "name must be 3-20 characters")
	}
	company := strings.TrimSpace(in.Company)
	if len(company) < 3 || len(company) > 20 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "company must be 3-20 characters")
	}
	email := strings.TrimSpace(in.Email)
	if !validator.IsEmailLike(email) {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if !validator.IsPhoneLike(in.Phone) {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid phone number format. must be 7-15 digits, optional +")
	}

	var created model.Supplier
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// email重複チェック
		if _, err := r.Suppliers().FindByEmail(ctx, email); err == nil {
			return NewHTTPError(http.StatusConflict, "email already registered")
		} else if err != repo.ErrNotFound {
			return err
		}

		s, err := r.Suppliers().Create(ctx, model.Supplier{
			Name:    name,
			Company: company,
			Email:   email,
			Phone:   in.Phone,
		})
		if err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return model.Supplier{}, asUsecaseError(err)
	}
	return created, nil
}

func (u *SupplierUsecase) PatchSupplier(ctx context.Context, supplierID int64, in SupplierPatchInput) (model.Supplier, error) {
	if supplierID <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	s, err := u.suppliers.FindByID(ctx, supplierID)
	if err == repo.ErrNotFound {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 指定されたフィールドだけを検証してマージ
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 3 || len(name) > 20 {
			return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "name must be 3-20 characters")
		}
		s.Name = name
	}
	if in.Company != nil {
		company := strings.TrimSpace(*in.Company)
		if len(company) < 3 || len(company) > 20 {
			return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "company must be 3-20 characters")
		}
		s.Company = company
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validator.IsEmailLike(email) {
			return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid email format")
		}
		s.Email = email
	}
	if in.Phone != nil {
		if !validator.IsPhoneLike(*in.Phone) {
			return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid phone number format. must be 7-15 digits, optional +")
		}
		s.Phone = *in.Phone
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// emailを変えるなら他の仕入先との重複を許さない
		if in.Email != nil {
			other, err := r.Suppliers().FindByEmail(ctx, s.Email)
			if err == nil && other.ID != s.ID {
				return NewHTTPError(http.StatusConflict, "email already registered")
			}
			if err != nil && err != repo.ErrNotFound {
				return err
			}
		}

		if err := r.Suppliers().Update(ctx, s); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "supplier not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Supplier{}, asUsecaseError(err)
	}
	return s, nil
}

func (u *SupplierUsecase) DeleteSupplier(ctx context.Context, supplierID int64) error {
	if supplierID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Suppliers().FindByID(ctx, supplierID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "supplier not found")
			}
			return err
		}

		// 商品が残っている間は削除できない
		count, err := r.Products().CountBySupplier(ctx, supplierID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewHTTPError(http.StatusBadRequest, "cannot delete supplier with products")
		}

		return r.Suppliers().Delete(ctx, supplierID)
	})
	return asUsecaseError(err)
}
