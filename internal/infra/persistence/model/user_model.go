// Package model defines the GORM models mirroring the PostgreSQL schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are plain bigserial values.
type UserModel struct {
	ID                   int64   `gorm:"primaryKey;autoIncrement"`
	Email                string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                 string  `gorm:"type:varchar(100);not null"`
	PasswordHash         string  `gorm:"type:varchar(255);not null"`
	IsAdmin              bool    `gorm:"not null;default:false"`
	IsActive             bool    `gorm:"not null;default:true"`
	HotmartTransactionID *string `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
