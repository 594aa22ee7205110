package models

import (
	"time"

	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
	"gorm.io/gorm"
)

// Item represents one inventory line. Every business field is validated at
// the boundary, so persisted rows are always within bounds.
type Item struct {
	ID          string    `gorm:"column:id;type:char(24);primaryKey"`
	ItemName    string    `gorm:"column:item_name;not null;uniqueIndex"`
	Quantity    int       `gorm:"column:quantity;not null"`
	Price       float64   `gorm:"column:price;not null"`
	Description string    `gorm:"column:description;not null"`
	Category    string    `gorm:"column:category;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the 24-hex identifier when none was supplied.
func (i *Item) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = identifier.New()
	}
	return nil
}
