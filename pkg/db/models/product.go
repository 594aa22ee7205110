package models

import (
	"time"

	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
	"gorm.io/gorm"
)

// Product represents one catalog entry. Tags are stored JSON-serialized so
// the same model works on postgres and the sqlite test binding.
type Product struct {
	ID          string    `gorm:"column:id;type:char(24);primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null;default:''"`
	Price       float64   `gorm:"column:price;not null"`
	InStock     bool      `gorm:"column:in_stock;not null;default:true"`
	Tags        []string  `gorm:"column:tags;serializer:json"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = identifier.New()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return nil
}
