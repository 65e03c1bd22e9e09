// ABOUTME: Item domain model represents a news item in the transient or saved store
// ABOUTME: Trend flag and relevance are mutually exclusive depending on the store

package domain

import "time"

// PlaceholderTitle is used when a feed entry carries no title.
const PlaceholderTitle = "Sem título"

// DisplayTimeLayout is the layout used for the human-readable published time.
const DisplayTimeLayout = "02/01/2006 15:04"

// Item represents a single news item. Transient items (fresh from a feed
// refresh) carry a trend flag; saved items carry a relevance score instead.
type Item struct {
	// Title is the item's headline, PlaceholderTitle when the source had none
	Title string `json:"title"`

	// Link is the URL to the full article and the unique key within a store
	Link string `json:"link"`

	// Summary is the HTML-stripped, truncated description
	Summary string `json:"summary"`

	// PublishedAtTS is the published-or-updated time as unix seconds (UTC)
	PublishedAtTS int64 `json:"published_at_ts"`

	// PublishedAtStr is the display form of the published time
	PublishedAtStr string `json:"published_at_str"`

	// Source is the feed's declared title, falling back to the feed URL
	Source string `json:"source"`

	// Category is the configured category key assigned during ingestion
	Category string `json:"category"`

	// TrendFlag is 1 when the item matched a trend keyword, 0 otherwise.
	// Present only on transient items.
	TrendFlag *int `json:"trend_flag,omitempty"`

	// Relevance is the user-adjusted score, never negative.
	// Present only on saved items.
	Relevance *int `json:"relevance,omitempty"`

	// Image is an optional thumbnail URL discovered from the entry
	Image string `json:"image,omitempty"`
}

// NewItem builds a transient item from resolved entry data.
func NewItem(title, link, summary, source, category string, published time.Time, trendFlag int) Item {
	if title == "" {
		title = PlaceholderTitle
	}
	published = published.UTC()
	return Item{
		Title:          title,
		Link:           link,
		Summary:        summary,
		PublishedAtTS:  published.Unix(),
		PublishedAtStr: published.Format(DisplayTimeLayout),
		Source:         source,
		Category:       category,
		TrendFlag:      &trendFlag,
	}
}

// TrendFlagValue returns the trend flag, defaulting to 0 when absent.
func (i Item) TrendFlagValue() int {
	if i.TrendFlag == nil {
		return 0
	}
	return *i.TrendFlag
}

// RelevanceValue returns the relevance score, defaulting to 0 when absent.
func (i Item) RelevanceValue() int {
	if i.Relevance == nil {
		return 0
	}
	return *i.Relevance
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	out := i
	if i.TrendFlag != nil {
		v := *i.TrendFlag
		out.TrendFlag = &v
	}
	if i.Relevance != nil {
		v := *i.Relevance
		out.Relevance = &v
	}
	return out
}

// AsSaved returns a copy prepared for the saved store: the trend flag is
// stripped and relevance starts at zero.
func (i Item) AsSaved() Item {
	out := i.Clone()
	out.TrendFlag = nil
	zero := 0
	out.Relevance = &zero
	return out
}

// SetRelevance stores the given score, clamped to a minimum of zero.
func (i *Item) SetRelevance(v int) int {
	if v < 0 {
		v = 0
	}
	i.Relevance = &v
	return v
}
