// Package pipeline orchestrates the extraction stages: cleaning, rule
// extraction, entity extraction and keyword matching, merged into one
// Result per input document. Per-document failures never abort a batch.
package pipeline

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/pkg/hirelens/entity"
	"github.com/hirelens/hirelens/pkg/hirelens/keywords"
)

// The stage contracts the processor consumes. Satisfied by
// preprocess.Cleaner, rules.Extractor, entity.Extractor and
// keywords.Matcher.
type (
	TextCleaner interface {
		Clean(text string) string
	}
	RuleExtractor interface {
		Extract(text string) map[string][]string
	}
	EntityExtractor interface {
		Extract(text string) entity.Extraction
	}
	KeywordMatcher interface {
		Match(text string) keywords.Results
	}
)

// Processor runs the four stages in sequence over one document. All
// stages are immutable after construction, so a Processor is safe for
// concurrent use.
type Processor struct {
	cleaner  TextCleaner
	rules    RuleExtractor
	entities EntityExtractor
	keywords KeywordMatcher
	log      *zap.Logger

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New wires the stages into a processor.
func New(cleaner TextCleaner, rules RuleExtractor, entities EntityExtractor, matcher KeywordMatcher, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		cleaner:  cleaner,
		rules:    rules,
		entities: entities,
		keywords: matcher,
		log:      log,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Process runs the pipeline over one description without metadata.
func (p *Processor) Process(description string) Result {
	return p.ProcessWithMeta(description, Metadata{})
}

// ProcessWithMeta runs the pipeline over one description. A panic in any
// stage is recovered here: the document yields a minimal result with the
// original text preserved and everything else empty, and processing of
// other documents continues.
func (p *Processor) ProcessWithMeta(description string, meta Metadata) (res Result) {
	start := time.Now()

	res = Result{
		ID:           p.newID(),
		Metadata:     meta,
		OriginalText: description,
		Rules:        map[string][]string{},
		Confidence:   confidenceMap(0, 0, 0),
		CreatedAt:    start.UTC(),
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("extraction stage panicked, emitting minimal result",
				zap.Any("panic", r),
				zap.String("url", meta.URL))
			res = Result{
				ID:           res.ID,
				Metadata:     meta,
				OriginalText: description,
				Rules:        map[string][]string{},
				Confidence:   confidenceMap(0, 0, 0),
				CreatedAt:    res.CreatedAt,
			}
		}
		res.Duration = time.Since(start)
	}()

	cleaned := p.cleaner.Clean(description)
	if cleaned == "" {
		// Insufficient input: not an error, everything stays empty.
		return res
	}
	res.CleanedText = cleaned

	res.Rules = p.rules.Extract(cleaned)
	res.Entities = p.entities.Extract(cleaned)
	res.Keywords = p.keywords.Match(cleaned)
	res.Confidence = confidenceMap(res.Entities.Confidence, res.Keywords.Confidence, res.Keywords.TotalMatches)

	return res
}

// ProcessBatch processes descriptions sequentially, collecting results in
// input order. Every item yields a result, minimal ones included.
func (p *Processor) ProcessBatch(descriptions []string) []Result {
	results := make([]Result, 0, len(descriptions))
	for _, d := range descriptions {
		results = append(results, p.Process(d))
	}
	return results
}

// newID issues a monotonic ULID so results created within the same
// millisecond still sort by creation order.
func (p *Processor) newID() string {
	p.idMu.Lock()
	defer p.idMu.Unlock()
	return ulid.MustNew(ulid.Now(), p.entropy).String()
}
