package model

import (
	"time"

	"gorm.io/gorm"
)

// カタログ商品。カートは追加時に name/price/image を
// スナップショットとして写し取るだけで、このテーブルを後から参照しない。
type Product struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"product_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	Stock       int64          `gorm:"not null" json:"stock"`
	Category    string         `gorm:"type:varchar(100)" json:"category"`
	Image       string         `gorm:"type:text" json:"image"`
	Featured    bool           `gorm:"not null;default:false" json:"featured"`
	IsActive    bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
