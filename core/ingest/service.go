// ABOUTME: Feed ingestion engine: fetches configured sources, filters by
// ABOUTME: recency and dedup, computes trend flags and rewrites the transient store

package ingest

import (
	"context"
	"strings"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/config"
	"newsdesk-api/pkg/utils/htmltext"
)

// summaryLimit is the maximum summary length in runes.
const summaryLimit = 300

// Service runs the refresh pipeline over the configured categories.
type Service struct {
	deps       interfaces.Dependencies
	categories config.Categories
	saved      interfaces.ItemStore
	recent     interfaces.ItemStore
	now        func() time.Time
}

// NewService creates an ingestion service. The categories value carries the
// feed sources and trend keywords; saved and recent are the persistent and
// transient stores.
func NewService(deps interfaces.Dependencies, categories config.Categories, saved, recent interfaces.ItemStore) *Service {
	return &Service{
		deps:       deps,
		categories: categories,
		saved:      saved,
		recent:     recent,
		now:        time.Now,
	}
}

// Refresh runs one full ingestion cycle: every configured source of every
// category is fetched in order, entries are filtered and flagged, and the
// transient store is replaced wholesale with the cycle's results. The count
// of collected items is returned. A failing source is logged and skipped;
// Refresh only fails when a store operation fails.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	savedItems, err := s.saved.Load(ctx)
	if err != nil {
		return 0, err
	}
	savedLinks := make(map[string]bool, len(savedItems))
	for _, item := range savedItems {
		savedLinks[item.Link] = true
	}

	cutoff := s.now().UTC().Add(-s.categories.RecentWindow())

	var collected []domain.Item
	seen := make(map[string]bool)

	for _, category := range s.categories.List {
		keywords := lowerAll(category.TrendKeywords)

		for _, feedURL := range category.Feeds {
			feed, err := s.deps.Fetcher.Fetch(ctx, feedURL)
			if err != nil {
				s.logError("Failed to fetch feed", feedURL, err)
				continue
			}

			source := feed.Title
			if source == "" {
				source = feedURL
			}

			for _, entry := range feed.Entries {
				item, ok := buildItem(entry, source, category.Name, keywords, cutoff)
				if !ok {
					continue
				}
				if savedLinks[item.Link] || seen[item.Link] {
					continue
				}
				seen[item.Link] = true
				collected = append(collected, item)
			}
		}
	}

	if err := s.recent.Save(ctx, collected); err != nil {
		return 0, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Feed refresh completed", map[string]interface{}{
			"collected": len(collected),
		})
	}
	return len(collected), nil
}

// buildItem turns a raw entry into a transient item, applying the per-entry
// skip rules: no link, no timestamp, or older than the cutoff.
func buildItem(entry domain.SourceEntry, source, category string, keywords []string, cutoff time.Time) (domain.Item, bool) {
	if entry.Link == "" {
		return domain.Item{}, false
	}

	published, ok := entry.PublishedOrUpdated()
	if !ok {
		return domain.Item{}, false
	}
	if published.Before(cutoff) {
		return domain.Item{}, false
	}

	summary := htmltext.Summarize(entry.Text(), summaryLimit)
	trend := 0
	if matchesKeyword(entry.Title, summary, keywords) {
		trend = 1
	}

	item := domain.NewItem(entry.Title, entry.Link, summary, source, category, published, trend)
	item.Image = entry.Image
	return item, true
}

// matchesKeyword reports whether any keyword occurs in title+summary,
// case-insensitively. Keywords are expected pre-lowered.
func matchesKeyword(title, summary string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	haystack := strings.ToLower(title + " " + summary)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func (s *Service) logError(msg, feedURL string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"url":   feedURL,
		"error": err.Error(),
	})
}
