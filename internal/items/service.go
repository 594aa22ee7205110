package items

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
)

// ListQuery bundles the listing inputs parsed by the controller.
type ListQuery struct {
	Search   string
	Category string
	Page     pagination.Params
}

// Service is the item operations surface consumed by the controllers.
type Service interface {
	Create(ctx context.Context, req CreateItemRequest) (*ItemDTO, error)
	Get(ctx context.Context, id string) (*ItemDTO, error)
	List(ctx context.Context, query ListQuery) ([]ItemDTO, pagination.Meta, error)
	Update(ctx context.Context, id string, req UpdateItemRequest) (*ItemDTO, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type service struct {
	repo *Repository
}

// NewService constructs the item service over its repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateItemRequest) (*ItemDTO, error) {
	stored, err := s.repo.Create(ctx, req.model())
	if err != nil {
		return nil, err
	}
	dto := FromModel(stored)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id string) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromModel(item)
	return &dto, nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]ItemDTO, pagination.Meta, error) {
	page := pagination.Normalize(query.Page, DefaultPageLimit)
	rows, total, err := s.repo.List(ctx, ListFilter{
		Search:   query.Search,
		Category: query.Category,
	}, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return FromModels(rows), pagination.NewMeta(total, page), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateItemRequest) (*ItemDTO, error) {
	item, err := s.repo.Update(ctx, id, req.changes())
	if err != nil {
		return nil, err
	}
	dto := FromModel(item)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	return s.repo.AggregateStatistics(ctx)
}
