package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(30);not null" json:"name"`
	QuantityInStock int64           `gorm:"not null" json:"quantity_in_stock"`
	QuantitySold    int64           `gorm:"not null" json:"quantity_sold"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"unit_price"`
	Revenue         decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"revenue"`
	SupplierID      int64           `gorm:"not null;index" json:"supplier_id"`
}
