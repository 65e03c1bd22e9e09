// ABOUTME: Mutation operations over the saved-items store
// ABOUTME: Save from the transient store, delete, and relevance adjustment

package saved

import (
	"context"
	"sync"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
)

// Service implements the user-facing mutations. All operations are full
// load-modify-save cycles over the flat-file stores; the mutex keeps two
// concurrent browser requests from interleaving them.
type Service struct {
	mu              sync.Mutex
	saved           interfaces.ItemStore
	recent          interfaces.ItemStore
	defaultCategory string
	logger          interfaces.Logger
}

// NewService creates the mutation service over the two stores.
func NewService(saved, recent interfaces.ItemStore, defaultCategory string, logger interfaces.Logger) *Service {
	return &Service{
		saved:           saved,
		recent:          recent,
		defaultCategory: defaultCategory,
		logger:          logger,
	}
}

// Save promotes the transient item with the given link into the saved store:
// the trend flag is stripped, relevance starts at zero, and the item is
// removed from the transient store. Returns the item's category for the UI
// redirect and whether a save actually happened. Saving a link that is
// absent from the transient store, or already saved, is a no-op.
func (s *Service) Save(ctx context.Context, link string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recentItems, err := s.recent.Load(ctx)
	if err != nil {
		return s.defaultCategory, false
	}

	var found *domain.Item
	for i := range recentItems {
		if recentItems[i].Link == link {
			item := recentItems[i].Clone()
			found = &item
			break
		}
	}
	if found == nil {
		return s.defaultCategory, false
	}

	category := found.Category
	if category == "" {
		category = s.defaultCategory
	}

	savedItems, err := s.saved.Load(ctx)
	if err != nil {
		return category, false
	}
	for _, item := range savedItems {
		if item.Link == link {
			// already saved
			return category, false
		}
	}

	savedItems = append(savedItems, found.AsSaved())
	if err := s.saved.Save(ctx, savedItems); err != nil {
		s.logError("Failed to persist saved items", err)
		return category, false
	}

	remaining := make([]domain.Item, 0, len(recentItems))
	for _, item := range recentItems {
		if item.Link != link {
			remaining = append(remaining, item)
		}
	}
	if err := s.recent.Save(ctx, remaining); err != nil {
		s.logError("Failed to rewrite transient store", err)
	}

	return category, true
}

// Delete removes the saved item with the given link. Returns the removed
// item's category (the default category when not found) and whether a
// removal occurred.
func (s *Service) Delete(ctx context.Context, link string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedItems, err := s.saved.Load(ctx)
	if err != nil {
		return s.defaultCategory, false
	}

	category := s.defaultCategory
	found := false
	remaining := make([]domain.Item, 0, len(savedItems))
	for _, item := range savedItems {
		if !found && item.Link == link {
			found = true
			if item.Category != "" {
				category = item.Category
			}
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		return category, false
	}

	if err := s.saved.Save(ctx, remaining); err != nil {
		s.logError("Failed to persist saved items", err)
		return category, false
	}
	return category, true
}

// AdjustRelevance sets or shifts the relevance of the saved item with the
// given link. When abs is non-nil the value is set absolutely, otherwise
// delta is added to the current relevance (missing counts as zero). The
// result is clamped to a minimum of zero. Returns the resulting relevance
// and whether a matching item was found.
func (s *Service) AdjustRelevance(ctx context.Context, link string, abs *int, delta int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedItems, err := s.saved.Load(ctx)
	if err != nil {
		return 0, false
	}

	for i := range savedItems {
		if savedItems[i].Link != link {
			continue
		}

		var next int
		if abs != nil {
			next = *abs
		} else {
			next = savedItems[i].RelevanceValue() + delta
		}
		result := savedItems[i].SetRelevance(next)

		if err := s.saved.Save(ctx, savedItems); err != nil {
			s.logError("Failed to persist saved items", err)
			return 0, false
		}
		return result, true
	}

	return 0, false
}

func (s *Service) logError(msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg, map[string]interface{}{"error": err.Error()})
}
