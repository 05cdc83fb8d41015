// Package store defines the persistence collaborator of the pipeline:
// raw postings in, processed results out. The pipeline itself performs no
// I/O; everything here sits at its boundary.
package store

import (
	"context"
	"time"

	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
)

// Posting is one raw job posting supplied by the crawling collaborator,
// keyed by its URL.
type Posting struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Source      string    `json:"source"`
	Description string    `json:"description"`
	FetchedAt   time.Time `json:"fetched_at"`
	Processed   bool      `json:"processed"`
}

// Store persists postings and their processed results.
type Store interface {
	Close() error

	UpsertPosting(ctx context.Context, p Posting) error
	GetPosting(ctx context.Context, url string) (Posting, bool, error)
	ListUnprocessed(ctx context.Context, limit int) ([]Posting, error)
	MarkProcessed(ctx context.Context, url string) error

	// UpsertResult stores a result keyed by its metadata URL and flags
	// the matching posting as processed.
	UpsertResult(ctx context.Context, res pipeline.Result) error
	GetResultByURL(ctx context.Context, url string) (pipeline.Result, bool, error)
}
