package model

import (
	"time"
)

// RecipeModel mirrors the 'recipes' table. CategoryID references categories.id.
type RecipeModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	TitlePT         string `gorm:"column:title_pt;type:varchar(200);not null"`
	TitleEN         string `gorm:"column:title_en;type:varchar(200);not null"`
	TitleES         string `gorm:"column:title_es;type:varchar(200);not null"`
	DescriptionPT   string `gorm:"column:description_pt;type:text;not null"`
	DescriptionEN   string `gorm:"column:description_en;type:text;not null"`
	DescriptionES   string `gorm:"column:description_es;type:text;not null"`
	ImageURL        string `gorm:"type:varchar(500)"`
	Difficulty      int    `gorm:"not null"`
	PrepTimeMinutes int    `gorm:"not null"`
	CategoryID      int64  `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
