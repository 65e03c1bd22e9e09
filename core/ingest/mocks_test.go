package ingest

import (
	"context"
	"time"

	"newsdesk-api/core/domain"
)

// mockFetcher is a mock implementation of the FeedFetcher interface
type mockFetcher struct {
	feeds map[string]*domain.SourceFeed
	errs  map[string]error
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*domain.SourceFeed, error) {
	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	if feed, ok := m.feeds[url]; ok {
		return feed, nil
	}
	return &domain.SourceFeed{URL: url}, nil
}

// memStore is an in-memory ItemStore for tests
type memStore struct {
	items []domain.Item
	saves int
}

func (m *memStore) Load(ctx context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memStore) Save(ctx context.Context, items []domain.Item) error {
	m.items = make([]domain.Item, len(items))
	copy(m.items, items)
	m.saves++
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	errorMsgs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}

func timePtr(t time.Time) *time.Time { return &t }
