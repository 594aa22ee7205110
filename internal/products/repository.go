package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
	"gorm.io/gorm"
)

// DefaultPageLimit applies when the caller sends no limit.
const DefaultPageLimit = 12

const notFoundMessage = "Product not found"

// ListFilter narrows a product listing. Zero values mean "no constraint".
type ListFilter struct {
	// Search matches name or description, case-insensitively.
	Search string
	// Tag matches products whose tag list contains the exact value.
	Tag string
}

// Changes carries a partial update. Nil fields are left untouched.
type Changes struct {
	Name        *string
	Description *string
	Price       *float64
	InStock     *bool
	Tags        *[]string
}

// Repository exposes product persistence bound to a GORM DB.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{db: conn}
}

// Create persists a new product, assigning its id via the model hook.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

// FindByID retrieves one product by its already-validated id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	return &product, nil
}

// List returns one page of products matching the filter plus the total
// matching count.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}

	var rows []models.Product
	err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return rows, total, nil
}

func (r *Repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array of strings, so membership is a
		// substring match on the quoted element.
		q = q.Where("tags LIKE ?", fmt.Sprintf(`%%"%s"%%`, filter.Tag))
	}
	return q
}

// Update loads the product, applies the non-nil fields, and saves it back.
func (r *Repository) Update(ctx context.Context, id string, changes Changes) (*models.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		product.Name = *changes.Name
	}
	if changes.Description != nil {
		product.Description = *changes.Description
	}
	if changes.Price != nil {
		product.Price = *changes.Price
	}
	if changes.InStock != nil {
		product.InStock = *changes.InStock
	}
	if changes.Tags != nil {
		product.Tags = *changes.Tags
		if product.Tags == nil {
			product.Tags = []string{}
		}
	}

	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return product, nil
}

// Delete removes the product, reporting NotFound when nothing matched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return nil
}
