// ABOUTME: Plain-text helpers for feed entry summaries
// ABOUTME: Strips HTML tags and truncates to a display length

package htmltext

import (
	"regexp"
	"strings"
)

// Ellipsis marks a truncated summary.
const Ellipsis = "..."

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Strip removes all tag-like sequences from the given HTML in a single
// regex pass. HTML entities are left as-is.
func Strip(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

// Truncate shortens s to at most max runes, appending the ellipsis marker
// when anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}

// Summarize strips tags from html, truncates to max runes and trims
// surrounding whitespace. This is the summary form stored on items.
func Summarize(html string, max int) string {
	return strings.TrimSpace(Truncate(Strip(html), max))
}
