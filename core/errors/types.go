// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for feed sources and parsing

package errors

import (
	"errors"
	"fmt"
)

// FeedSourceError represents a failed download from a remote feed source.
type FeedSourceError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *FeedSourceError) Error() string {
	return fmt.Sprintf("feed source %s returned status %d", e.URL, e.StatusCode)
}

// FeedParseError represents a feed document that could not be parsed.
type FeedParseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *FeedParseError) Error() string {
	return fmt.Sprintf("failed to parse feed %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying parser error.
func (e *FeedParseError) Unwrap() error {
	return e.Err
}

// IsFeedSource checks if an error is a FeedSourceError
func IsFeedSource(err error) bool {
	var sourceErr *FeedSourceError
	return errors.As(err, &sourceErr)
}

// IsFeedParse checks if an error is a FeedParseError
func IsFeedParse(err error) bool {
	var parseErr *FeedParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
