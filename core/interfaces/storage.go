// ABOUTME: Storage interface for persisting item sequences
// ABOUTME: Backed by flat JSON files, one store per file

package interfaces

import (
	"context"

	"newsdesk-api/core/domain"
)

// ItemStore persists an ordered sequence of items. A missing or unreadable
// backing file loads as an empty sequence; Save replaces the whole content.
type ItemStore interface {
	// Load returns the stored items, or an empty slice when the backing
	// file is missing or corrupt.
	Load(ctx context.Context) ([]domain.Item, error)

	// Save overwrites the store with the given sequence.
	Save(ctx context.Context, items []domain.Item) error
}
