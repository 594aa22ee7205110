package products

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
)

// ListQuery bundles the listing inputs parsed by the controller.
type ListQuery struct {
	Search string
	Tag    string
	Page   pagination.Params
}

// Service is the product operations surface consumed by the controllers.
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
	Get(ctx context.Context, id string) (*ProductDTO, error)
	List(ctx context.Context, query ListQuery) ([]ProductDTO, pagination.Meta, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*ProductDTO, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo *Repository
}

// NewService constructs the product service over its repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	stored, err := s.repo.Create(ctx, req.model())
	if err != nil {
		return nil, err
	}
	dto := FromModel(stored)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id string) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromModel(product)
	return &dto, nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]ProductDTO, pagination.Meta, error) {
	page := pagination.Normalize(query.Page, DefaultPageLimit)
	rows, total, err := s.repo.List(ctx, ListFilter{
		Search: query.Search,
		Tag:    query.Tag,
	}, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return FromModels(rows), pagination.NewMeta(total, page), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProductRequest) (*ProductDTO, error) {
	product, err := s.repo.Update(ctx, id, req.changes())
	if err != nil {
		return nil, err
	}
	dto := FromModel(product)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
