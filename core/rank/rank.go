// ABOUTME: Ordering policies for saved items and fresh feed items
// ABOUTME: Both descending, ties broken by published timestamp

package rank

import (
	"sort"

	"newsdesk-api/core/domain"
)

// ByRelevance orders saved items by relevance (missing counts as 0), then by
// published timestamp, both descending. The input is not modified.
func ByRelevance(items []domain.Item) []domain.Item {
	out := copyItems(items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.RelevanceValue() != b.RelevanceValue() {
			return a.RelevanceValue() > b.RelevanceValue()
		}
		return a.PublishedAtTS > b.PublishedAtTS
	})
	return out
}

// ByTrend orders feed items by trend flag (missing counts as 0), then by
// published timestamp, both descending. The input is not modified.
func ByTrend(items []domain.Item) []domain.Item {
	out := copyItems(items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TrendFlagValue() != b.TrendFlagValue() {
			return a.TrendFlagValue() > b.TrendFlagValue()
		}
		return a.PublishedAtTS > b.PublishedAtTS
	})
	return out
}

// Top returns at most n leading items of the given slice.
func Top(items []domain.Item, n int) []domain.Item {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func copyItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
