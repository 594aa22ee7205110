package items

import (
	"strings"
	"time"

	"github.com/stockroomhq/stockroom-backend/api/validators"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
)

// CreateItemRequest is the payload for POST /api/items. Numeric fields are
// pointers so an explicit zero passes the required check.
type CreateItemRequest struct {
	ItemName    string   `json:"itemName" validate:"required,min=2,max=100"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description" validate:"required,min=5,max=500"`
	Category    string   `json:"category" validate:"required,min=2,max=50"`
}

func (r *CreateItemRequest) Trim() {
	r.ItemName = strings.TrimSpace(r.ItemName)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
}

func (r CreateItemRequest) model() *models.Item {
	return &models.Item{
		ItemName:    r.ItemName,
		Quantity:    *r.Quantity,
		Price:       *r.Price,
		Description: r.Description,
		Category:    r.Category,
	}
}

// UpdateItemRequest is the partial payload for PUT /api/items/{id}. Absent
// fields stay untouched; present fields obey the create bounds.
type UpdateItemRequest struct {
	ItemName    *string  `json:"itemName" validate:"omitempty,min=2,max=100"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,min=5,max=500"`
	Category    *string  `json:"category" validate:"omitempty,min=2,max=50"`
}

func (r *UpdateItemRequest) Trim() {
	validators.TrimPtr(r.ItemName)
	validators.TrimPtr(r.Description)
	validators.TrimPtr(r.Category)
}

func (r UpdateItemRequest) changes() Changes {
	return Changes{
		ItemName:    r.ItemName,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
	}
}

// ItemDTO is the wire shape of an inventory item.
type ItemDTO struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"itemName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromModel converts a stored item to its wire shape.
func FromModel(item *models.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		ItemName:    item.ItemName,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// FromModels converts a page of stored items, never returning nil so the
// list envelope marshals as [] rather than null.
func FromModels(rows []models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
