// ABOUTME: Shared test doubles for the handler tests
// ABOUTME: In-memory stores, a silent logger and a stubbed feed fetcher

package handlers

import (
	"context"
	"errors"

	"newsdesk-api/core/domain"
)

type memStore struct {
	items []domain.Item
}

func (s *memStore) Load(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore) Save(_ context.Context, items []domain.Item) error {
	s.items = make([]domain.Item, len(items))
	copy(s.items, items)
	return nil
}

type stubLogger struct{}

func (stubLogger) Debug(_ string, _ map[string]interface{}) {}
func (stubLogger) Info(_ string, _ map[string]interface{})  {}
func (stubLogger) Warn(_ string, _ map[string]interface{})  {}
func (stubLogger) Error(_ string, _ map[string]interface{}) {}

type stubFetcher struct {
	feeds map[string]*domain.SourceFeed
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*domain.SourceFeed, error) {
	if feed, ok := f.feeds[url]; ok {
		return feed, nil
	}
	return nil, errors.New("fetch failed")
}
