// ABOUTME: SourceFeed and SourceEntry model raw fetched feed data
// ABOUTME: Keeps the parser library out of the core ingestion logic

package domain

import "time"

// SourceFeed is the parsed form of a single remote feed.
type SourceFeed struct {
	// Title is the feed's declared title, may be empty
	Title string

	// URL is the feed source URL that was fetched
	URL string

	// Entries holds the feed's entries in document order
	Entries []SourceEntry
}

// SourceEntry is a single raw entry from a fetched feed. All fields are
// optional; the ingestion engine decides what is usable.
type SourceEntry struct {
	Title       string
	Link        string
	Summary     string
	Description string
	Published   *time.Time
	Updated     *time.Time
	Image       string
}

// PublishedOrUpdated resolves the entry time, preferring the published time
// and falling back to the updated time. The second return is false when the
// entry carries neither.
func (e SourceEntry) PublishedOrUpdated() (time.Time, bool) {
	if e.Published != nil {
		return e.Published.UTC(), true
	}
	if e.Updated != nil {
		return e.Updated.UTC(), true
	}
	return time.Time{}, false
}

// Text returns the entry's summary, falling back to its description.
func (e SourceEntry) Text() string {
	if e.Summary != "" {
		return e.Summary
	}
	return e.Description
}
