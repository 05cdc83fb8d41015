// Package hirelens is the extraction engine facade: it wires the
// configured pipeline to a posting store and drives processing of single
// documents, stored postings and the unprocessed queue.
package hirelens

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/pkg/hirelens/config"
	"github.com/hirelens/hirelens/pkg/hirelens/internalerr"
	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
	"github.com/hirelens/hirelens/pkg/hirelens/store"
)

// Engine is the main extraction facade.
type Engine struct {
	processor *pipeline.Processor
	store     store.Store
	log       *zap.Logger
}

// Options configures an Engine instance.
type Options struct {
	Config config.Config
	Store  store.Store
	Logger *zap.Logger
}

// New builds an engine from configuration. A nil Store leaves the engine
// usable for pure in-memory processing; store-backed methods then fail
// with ErrStoreUnavailable.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		processor: opts.Config.Build(log).Processor,
		store:     opts.Store,
		log:       log,
	}
}

// Close shuts the engine down, releasing the store.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Process runs the pipeline over one description without persistence.
func (e *Engine) Process(description string) pipeline.Result {
	return e.processor.Process(description)
}

// ProcessPosting processes one stored posting by URL and persists the
// result.
func (e *Engine) ProcessPosting(ctx context.Context, url string) (pipeline.Result, error) {
	if e.store == nil {
		return pipeline.Result{}, internalerr.ErrStoreUnavailable
	}

	p, found, err := e.store.GetPosting(ctx, url)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("load posting: %w", err)
	}
	if !found {
		return pipeline.Result{}, fmt.Errorf("posting %s: %w", url, internalerr.ErrNotFound)
	}

	res := e.process(p)
	if err := e.store.UpsertResult(ctx, res); err != nil {
		return pipeline.Result{}, fmt.Errorf("store result: %w", err)
	}
	return res, nil
}

// ProcessPending drains the unprocessed queue, processing and persisting
// up to limit postings (zero or less means all). A store failure on one
// posting stops the run; extraction failures do not, per the pipeline's
// failure policy.
func (e *Engine) ProcessPending(ctx context.Context, limit int) ([]pipeline.Result, error) {
	if e.store == nil {
		return nil, internalerr.ErrStoreUnavailable
	}

	pending, err := e.store.ListUnprocessed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed: %w", err)
	}

	results := make([]pipeline.Result, 0, len(pending))
	for _, p := range pending {
		res := e.process(p)
		if err := e.store.UpsertResult(ctx, res); err != nil {
			return results, fmt.Errorf("store result for %s: %w", p.URL, err)
		}
		e.log.Debug("posting processed",
			zap.String("url", p.URL),
			zap.Int("keyword_matches", res.Keywords.TotalMatches),
			zap.Duration("duration", res.Duration))
		results = append(results, res)
	}
	return results, nil
}

func (e *Engine) process(p store.Posting) pipeline.Result {
	return e.processor.ProcessWithMeta(p.Description, pipeline.Metadata{
		Title:    p.Title,
		Company:  p.Company,
		Location: p.Location,
		URL:      p.URL,
		Source:   p.Source,
	})
}
