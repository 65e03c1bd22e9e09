// ABOUTME: FeedFetcher implementation using gofeed over the retrying HTTP client
// ABOUTME: Caches fetched source feeds briefly so back-to-back refreshes stay cheap

package gofeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdesk-api/core/domain"
	coreerrors "newsdesk-api/core/errors"
	"newsdesk-api/core/interfaces"
)

const cacheTTL = 10 * time.Minute

// Fetcher downloads and parses remote feeds into domain.SourceFeed values.
type Fetcher struct {
	client interfaces.HTTPClient
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewFetcher creates a fetcher. The cache is optional; when present, parsed
// source feeds are cached for a short TTL keyed by URL.
func NewFetcher(client interfaces.HTTPClient, cache interfaces.Cache, logger interfaces.Logger) *Fetcher {
	return &Fetcher{client: client, cache: cache, logger: logger}
}

// Fetch downloads and parses the feed at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*domain.SourceFeed, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	if cached := f.getCached(ctx, feedURL); cached != nil {
		return cached, nil
	}

	if f.client == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := f.client.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.FeedSourceError{URL: feedURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	feed, err := parseContent(body, feedURL)
	if err != nil {
		return nil, err
	}

	f.setCached(ctx, feedURL, feed)
	return feed, nil
}

// parseContent parses raw feed bytes into a SourceFeed.
func parseContent(content []byte, feedURL string) (*domain.SourceFeed, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &coreerrors.FeedParseError{URL: feedURL, Err: err}
	}

	src := &domain.SourceFeed{
		Title:   parsed.Title,
		URL:     feedURL,
		Entries: make([]domain.SourceEntry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		src.Entries = append(src.Entries, convertItem(item))
	}
	return src, nil
}

// convertItem maps a gofeed item onto a raw source entry.
func convertItem(item *gofeed.Item) domain.SourceEntry {
	entry := domain.SourceEntry{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Published:   item.PublishedParsed,
		Updated:     item.UpdatedParsed,
		Image:       findThumbnail(item),
	}

	// gofeed folds <summary>/<description> into Description; the content
	// block is the fallback when that is empty.
	if item.Description != "" {
		entry.Summary = item.Description
	} else {
		entry.Summary = item.Content
	}

	return entry
}

// findThumbnail picks a thumbnail from the entry's media, in priority order.
func findThumbnail(item *gofeed.Item) string {
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}
	for _, enc := range item.Enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	return ""
}

func (f *Fetcher) getCached(ctx context.Context, feedURL string) *domain.SourceFeed {
	if f.cache == nil {
		return nil
	}
	data, err := f.cache.Get(ctx, cacheKey(feedURL))
	if err != nil || data == nil {
		return nil
	}
	var feed domain.SourceFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil
	}
	return &feed
}

func (f *Fetcher) setCached(ctx context.Context, feedURL string, feed *domain.SourceFeed) {
	if f.cache == nil {
		return
	}
	data, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := f.cache.Set(ctx, cacheKey(feedURL), data, cacheTTL); err != nil && f.logger != nil {
		f.logger.Debug("Failed to cache feed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
	}
}

func cacheKey(feedURL string) string {
	return "feed:" + feedURL
}
