package entity

import (
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/pkg/hirelens/scoring"
)

// Options configures an Extractor.
type Options struct {
	// ModelName identifies the recognition backend; empty selects the
	// default token matcher.
	ModelName string
	// ConfidenceThreshold is the advisory cutoff used by Confident.
	ConfidenceThreshold float64
	// Context overrides the harvesting rules of the default backend.
	Context *ContextRules
	// Scorer replaces the confidence formula. Nil selects the default.
	Scorer scoring.EntityFunc
}

// DefaultOptions returns the standard extractor configuration.
func DefaultOptions() Options {
	return Options{
		ModelName:           ModelTokenMatcher,
		ConfidenceThreshold: 0.7,
	}
}

// Extractor extracts entity categories from text. The recognition
// strategy is selected once at construction; when the requested backend
// is unavailable the extractor degrades to keyword-substring matching
// with reduced confidence. Immutable after construction and safe for
// concurrent use.
type Extractor struct {
	rec       Recognizer
	degraded  bool
	threshold float64
	scorer    scoring.EntityFunc
	log       *zap.Logger
}

// New selects the recognition backend and builds the extractor. Backend
// unavailability is never fatal.
func New(opts Options, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ConfidenceThreshold <= 0 {
		opts.ConfidenceThreshold = 0.7
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = scoring.EntityConfidence
	}

	e := &Extractor{
		threshold: opts.ConfidenceThreshold,
		scorer:    scorer,
		log:       log,
	}

	if opts.Context != nil && (opts.ModelName == "" || opts.ModelName == ModelTokenMatcher) {
		e.rec = NewTokenMatcher(*opts.Context)
		return e
	}

	rec, err := LoadBackend(opts.ModelName)
	if err != nil {
		log.Warn("recognition backend unavailable, using keyword fallback",
			zap.String("model", opts.ModelName),
			zap.Error(err))
		e.rec = newFallbackRecognizer()
		e.degraded = true
		return e
	}
	e.rec = rec
	return e
}

// Degraded reports whether the extractor runs on the fallback path.
func (e *Extractor) Degraded() bool { return e.degraded }

// Backend returns the name of the selected recognition backend.
func (e *Extractor) Backend() string { return e.rec.Name() }

// Extract runs entity extraction over one text. On the degraded path the
// recognizer's fixed confidence is kept; otherwise confidence comes from
// the configured scoring function.
func (e *Extractor) Extract(text string) Extraction {
	ex := e.rec.Recognize(text)
	if e.degraded {
		return ex
	}

	total := len(ex.Skills) + len(ex.Roles) + len(ex.Technologies) +
		len(ex.Responsibilities) + len(ex.Qualifications) + len(ex.Benefits)
	populated := 0
	for _, category := range [][]string{
		ex.Skills, ex.Roles, ex.Technologies,
		ex.Responsibilities, ex.Qualifications, ex.Benefits,
	} {
		if len(category) > 0 {
			populated++
		}
	}

	ex.Confidence = e.scorer(total, populated)
	return ex
}

// Confident reports whether an extraction clears the advisory threshold.
func (e *Extractor) Confident(ex Extraction) bool {
	return ex.Confidence >= e.threshold
}
