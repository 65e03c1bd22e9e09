// Package core contains the business logic for the newsdesk service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Item, SourceFeed, SourceEntry)
// - ingest: Feed collection service (recency window, trend flags, dedup)
// - saved: Saved-item lifecycle and relevance mutations
// - rank: Sorting and truncation of item lists for display
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, fetcher, storage, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newsdesk-api/core/ingest"
//	    "newsdesk-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:   myCache,   // implements interfaces.Cache
//	    Fetcher: myFetcher, // implements interfaces.FeedFetcher
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := ingest.NewService(deps, categories, savedStore, recentStore)
//
//	// Run one collection cycle
//	count, err := svc.Refresh(ctx)
//
package core
