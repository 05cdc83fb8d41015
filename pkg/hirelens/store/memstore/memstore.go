// Package memstore is the in-memory Store implementation, used in tests
// and for one-shot processing runs that don't need persistence.
package memstore

import (
	"context"
	"sync"

	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
	"github.com/hirelens/hirelens/pkg/hirelens/store"
)

type memStore struct {
	mu       sync.RWMutex
	postings map[string]store.Posting
	results  map[string]pipeline.Result
	order    []string // posting insertion order, for stable listings
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		postings: make(map[string]store.Posting),
		results:  make(map[string]pipeline.Result),
	}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) UpsertPosting(_ context.Context, p store.Posting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.postings[p.URL]; !exists {
		m.order = append(m.order, p.URL)
	}
	m.postings[p.URL] = p
	return nil
}

func (m *memStore) GetPosting(_ context.Context, url string) (store.Posting, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.postings[url]
	return p, ok, nil
}

func (m *memStore) ListUnprocessed(_ context.Context, limit int) ([]store.Posting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []store.Posting
	for _, url := range m.order {
		if limit > 0 && len(out) >= limit {
			break
		}
		if p := m.postings[url]; !p.Processed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) MarkProcessed(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.postings[url]; ok {
		p.Processed = true
		m.postings[url] = p
	}
	return nil
}

func (m *memStore) UpsertResult(ctx context.Context, res pipeline.Result) error {
	m.mu.Lock()
	m.results[res.Metadata.URL] = res
	m.mu.Unlock()
	return m.MarkProcessed(ctx, res.Metadata.URL)
}

func (m *memStore) GetResultByURL(_ context.Context, url string) (pipeline.Result, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.results[url]
	return res, ok, nil
}
