package products

import (
	"strings"
	"time"

	"github.com/stockroomhq/stockroom-backend/api/validators"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
)

// CreateProductRequest is the payload for POST /api/products. Price is a
// pointer so an explicit zero passes the required check; inStock defaults
// to true when omitted.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	InStock     *bool    `json:"inStock"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

func (r *CreateProductRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}
}

func (r CreateProductRequest) model() *models.Product {
	product := &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		InStock:     true,
		Tags:        r.Tags,
	}
	if r.InStock != nil {
		product.InStock = *r.InStock
	}
	return product
}

// UpdateProductRequest is the partial payload for PUT /api/products/{id}.
type UpdateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=2"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	InStock     *bool     `json:"inStock"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,required"`
}

func (r *UpdateProductRequest) Trim() {
	validators.TrimPtr(r.Name)
	validators.TrimPtr(r.Description)
	if r.Tags != nil {
		for i := range *r.Tags {
			(*r.Tags)[i] = strings.TrimSpace((*r.Tags)[i])
		}
	}
}

func (r UpdateProductRequest) changes() Changes {
	return Changes{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		InStock:     r.InStock,
		Tags:        r.Tags,
	}
}

// ProductDTO is the wire shape of a catalog product.
type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	InStock     bool      `json:"inStock"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromModel converts a stored product to its wire shape.
func FromModel(product *models.Product) ProductDTO {
	tags := product.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		InStock:     product.InStock,
		Tags:        tags,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// FromModels converts a page of stored products, never returning nil.
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
