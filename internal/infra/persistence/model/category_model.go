package model

import (
	"time"
)

// CategoryModel mirrors the 'categories' table. Each category carries its
// name in the three supported languages.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	NamePT    string `gorm:"column:name_pt;type:varchar(100);not null"`
	NameEN    string `gorm:"column:name_en;type:varchar(100);not null"`
	NameES    string `gorm:"column:name_es;type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Recipes []RecipeModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
