package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

// 並び替え可能なカラムのホワイトリスト
var supplierOrderColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"company": "company",
}

// 仕入先を、ソート/ページング付きで返す。
func (r *SupplierGormRepository) List(ctx context.Context, q repo.SupplierListQuery) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Supplier{})

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Supplier{}, 0, err
	}

	//sort（不明なカラムはnameにフォールバック）
	column, ok := supplierOrderColumns[q.Order]
	if !ok {
		column = "name"
	}
	direction := "asc"
	if q.Direction == "desc" {
		direction = "desc"
	}
	tx = tx.Order(column + " " + direction).Order("id asc")

	offset := (q.Page - 1) * q.PageSize
	if err := tx.Offset(offset).Limit(q.PageSize).Find(&suppliers).Error; err != nil {
		return []model.Supplier{}, 0, err
	}

	return suppliers, total, nil
}

// IDで仕入先を取得
func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

// emailで仕入先を取得（重複チェック用）
func (r *SupplierGormRepository) FindByEmail(ctx context.Context, email string) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

// 仕入先の作成
func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

// 仕入先の更新
func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":    s.Name,
		"company": s.Company,
		"email":   s.Email,
		"phone":   s.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 仕入先の削除
func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
