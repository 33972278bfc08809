package model

type Supplier struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(30);not null" json:"name"`
	Company string `gorm:"type:varchar(30);not null" json:"company"`
	Email   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone   string `gorm:"type:varchar(16);not null" json:"phone"`
}
