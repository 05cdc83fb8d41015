// Package entity extracts skills, roles, technologies, responsibilities
// and qualifications from cleaned posting text. Recognition runs through a
// capability interface: a token-sequence matching backend when the
// configured model is available, a keyword-substring fallback otherwise.
package entity

import (
	"fmt"
	"sync"

	"github.com/hirelens/hirelens/pkg/hirelens/internalerr"
)

// ModelTokenMatcher is the default recognition backend identifier.
const ModelTokenMatcher = "token-matcher"

// Span is a typed entity occurrence in the source text. Spans are kept
// as-is: they are not deduplicated by text.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Extraction holds every string-valued category plus named-entity spans.
// String categories are lowercased and deduplicated in insertion order.
type Extraction struct {
	Skills           []string `json:"skills"`
	Roles            []string `json:"roles"`
	Technologies     []string `json:"technologies"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
	Benefits         []string `json:"benefits"`
	Entities         []Span   `json:"entities"`

	// Confidence is a heuristic coverage signal in [0, 1], not a
	// calibrated probability. Compare it across documents, nothing more.
	Confidence float64 `json:"confidence"`
}

// Recognizer is the recognition capability behind the extractor.
type Recognizer interface {
	Name() string
	Recognize(text string) Extraction
}

// Backends are expensive to construct relative to a Recognize call, so
// each named backend is built once and shared read-only.
var (
	backendsMu sync.Mutex
	backends   = map[string]Recognizer{}
)

// LoadBackend returns the process-wide recognizer for the given model
// name, constructing it on first use. Unknown names report
// internalerr.ErrBackendUnavailable.
func LoadBackend(name string) (Recognizer, error) {
	if name == "" {
		name = ModelTokenMatcher
	}

	backendsMu.Lock()
	defer backendsMu.Unlock()

	if rec, ok := backends[name]; ok {
		return rec, nil
	}

	switch name {
	case ModelTokenMatcher:
		rec := NewTokenMatcher(DefaultContextRules())
		backends[name] = rec
		return rec, nil
	default:
		return nil, fmt.Errorf("%w: unknown model %q", internalerr.ErrBackendUnavailable, name)
	}
}

// CloseBackends drops every constructed backend. Subsequent LoadBackend
// calls rebuild them.
func CloseBackends() {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends = map[string]Recognizer{}
}
