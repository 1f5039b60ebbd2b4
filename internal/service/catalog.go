package service

import (
	"context"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
)

// CatalogService serves the merchandise catalog and the sitemap.
type CatalogService interface {
	ListProducts(ctx context.Context, query, category, sortKey string) (*dto.ProductListResponse, error)
	ListPages(ctx context.Context, query, section string) *dto.PageListResponse
	GetPage(ctx context.Context, route string) (*dto.PageResponse, error)
}

type catalogService struct {
	content domain.ContentStore
}

// NewCatalogService creates a catalog service over the static content.
func NewCatalogService(content domain.ContentStore) CatalogService {
	return &catalogService{content: content}
}

// ListProducts filters then sorts. An empty result is not an error.
func (s *catalogService) ListProducts(ctx context.Context, query, category, sortKey string) (*dto.ProductListResponse, error) {
	key, err := domain.ParseSortKey(sortKey)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = domain.CategoryAll
	}

	sorted, err := domain.SortProducts(domain.Filter(s.content.Products(), query, category), key)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(sorted))
	for _, p := range sorted {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:    items,
		Total:    len(items),
		Empty:    len(items) == 0,
		Query:    query,
		Category: category,
		Sort:     string(key),
	}, nil
}

func (s *catalogService) ListPages(ctx context.Context, query, section string) *dto.PageListResponse {
	pages := domain.Filter(s.content.Pages(), query, section)
	items := make([]dto.PageResponse, 0, len(pages))
	for _, p := range pages {
		items = append(items, toPageResponse(p))
	}
	return &dto.PageListResponse{Items: items, Total: len(items), Empty: len(items) == 0}
}

func (s *catalogService) GetPage(ctx context.Context, route string) (*dto.PageResponse, error) {
	p, ok := s.content.Page(route)
	if !ok {
		return nil, domain.NewPageNotFoundError(route)
	}
	resp := toPageResponse(p)
	return &resp, nil
}

func toProductResponse(p domain.Product) dto.ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Featured:    p.Featured,
		New:         p.New,
		InStock:     p.InStock,
		Tags:        tags,
	}
}

func toPageResponse(p domain.SitePage) dto.PageResponse {
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return dto.PageResponse{
		Route:       p.Route,
		Title:       p.Title,
		Description: p.Description,
		Section:     p.Section,
		Keywords:    keywords,
	}
}
