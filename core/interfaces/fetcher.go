package interfaces

import (
	"context"

	"newsdesk-api/core/domain"
)

// FeedFetcher retrieves and parses a single remote feed. The ingestion
// engine depends on this capability rather than on a concrete parser so
// tests can substitute deterministic fixtures.
type FeedFetcher interface {
	// Fetch downloads and parses the feed at the given URL.
	Fetch(ctx context.Context, url string) (*domain.SourceFeed, error)
}
