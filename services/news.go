package services

import (
	"context"
	"fmt"

	"github.com/cinedesk/v2/internal/types"
)

// NewsService handles platform news reads. All routes are public.
type NewsService struct {
	api *ApiClient
}

// NewNewsService creates a new instance of NewsService.
func NewNewsService(api *ApiClient) *NewsService {
	return &NewsService{api: api}
}

// List fetches all news entries, newest first as the API orders them.
func (s *NewsService) List(ctx context.Context) ([]types.NewsItem, error) {
	var items []types.NewsItem
	if err := s.api.Get(ctx, "/api/news", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	return items, nil
}

// Get fetches one news entry by id.
func (s *NewsService) Get(ctx context.Context, id int) (*types.NewsItem, error) {
	var item types.NewsItem
	if err := s.api.Get(ctx, fmt.Sprintf("/api/news/%d", id), &item); err != nil {
		return nil, fmt.Errorf("failed to fetch news item %d: %w", id, err)
	}
	return &item, nil
}
