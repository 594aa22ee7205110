package items

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockroomhq/stockroom-backend/pkg/db"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
	"gorm.io/gorm"
)

const (
	// DefaultPageLimit applies when the caller sends no limit.
	DefaultPageLimit = 10
	// LowStockThreshold flags items in statistics when quantity falls below it.
	LowStockThreshold = 10
)

const notFoundMessage = "Item not found"

// ListFilter narrows a listing. Zero values mean "no constraint".
type ListFilter struct {
	// Search matches item_name or description, case-insensitively.
	Search string
	// Category matches the category column exactly.
	Category string
}

// Changes carries a partial update. Nil fields are left untouched.
type Changes struct {
	ItemName    *string
	Quantity    *int
	Price       *float64
	Description *string
	Category    *string
}

// CategoryStat is one row of the statistics category breakdown.
type CategoryStat struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// Statistics summarizes the whole inventory for the dashboard.
type Statistics struct {
	TotalItems        int64          `json:"totalItems"`
	TotalValue        float64        `json:"totalValue"`
	LowStockCount     int64          `json:"lowStockCount"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
}

// Repository exposes item persistence bound to a GORM DB.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an items repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{db: conn}
}

// Create persists a new item, assigning its id via the model hook.
func (r *Repository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeDuplicate, "Item with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
	}
	return item, nil
}

// FindByID retrieves one item. Callers validate the id shape first, so a
// miss here always means the record does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find item")
	}
	return &item, nil
}

// List returns one page of items matching the filter plus the total
// matching count. Count and fetch are two sequential round-trips.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Item, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count items")
	}

	var rows []models.Item
	err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list items")
	}
	return rows, total, nil
}

func (r *Repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Item{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(item_name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	return q
}

// Update loads the item, applies the non-nil fields, and saves it back,
// which refreshes updated_at.
func (r *Repository) Update(ctx context.Context, id string, changes Changes) (*models.Item, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.ItemName != nil {
		item.ItemName = *changes.ItemName
	}
	if changes.Quantity != nil {
		item.Quantity = *changes.Quantity
	}
	if changes.Price != nil {
		item.Price = *changes.Price
	}
	if changes.Description != nil {
		item.Description = *changes.Description
	}
	if changes.Category != nil {
		item.Category = *changes.Category
	}

	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeDuplicate, "Item with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update item")
	}
	return item, nil
}

// Delete removes the item, reporting NotFound when nothing matched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, res.Error, "delete item")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return nil
}

// DistinctCategories returns every category in use, sorted ascending.
func (r *Repository) DistinctCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "distinct categories")
	}
	return categories, nil
}

type statsRow struct {
	Quantity int
	Price    float64
	Category string
}

// AggregateStatistics computes the dashboard summary in one pass over the
// table. Value sums use decimal arithmetic so the 2-decimal rounding is
// exact regardless of float accumulation order.
func (r *Repository) AggregateStatistics(ctx context.Context) (*Statistics, error) {
	var rows []statsRow
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Select("quantity, price, category").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item statistics")
	}

	type bucket struct {
		count int64
		value decimal.Decimal
	}

	total := decimal.Zero
	buckets := map[string]*bucket{}
	stats := &Statistics{CategoryBreakdown: []CategoryStat{}}

	for _, row := range rows {
		value := decimal.NewFromFloat(row.Price).Mul(decimal.NewFromInt(int64(row.Quantity)))
		total = total.Add(value)
		stats.TotalItems++
		if row.Quantity < LowStockThreshold {
			stats.LowStockCount++
		}

		b, ok := buckets[row.Category]
		if !ok {
			b = &bucket{}
			buckets[row.Category] = b
		}
		b.count++
		b.value = b.value.Add(value)
	}

	for category, b := range buckets {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, CategoryStat{
			Category:   category,
			Count:      b.count,
			TotalValue: b.value.Round(2).InexactFloat64(),
		})
	}
	sort.Slice(stats.CategoryBreakdown, func(i, j int) bool {
		a, b := stats.CategoryBreakdown[i], stats.CategoryBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	stats.TotalValue = total.Round(2).InexactFloat64()
	return stats, nil
}
