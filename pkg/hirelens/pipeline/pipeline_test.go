package pipeline

import (
	"strings"
	"testing"

	"github.com/hirelens/hirelens/pkg/hirelens/entity"
	"github.com/hirelens/hirelens/pkg/hirelens/keywords"
	"github.com/hirelens/hirelens/pkg/hirelens/preprocess"
	"github.com/hirelens/hirelens/pkg/hirelens/rules"
)

func newProcessor(t *testing.T) *Processor {
	t.Helper()
	return New(
		preprocess.NewCleaner(preprocess.DefaultOptions(), nil),
		rules.New(rules.DefaultOptions()),
		entity.New(entity.DefaultOptions(), nil),
		keywords.NewMatcher(keywords.DefaultOptions(), nil),
		nil,
	)
}

// Test doubles for failure-isolation tests.
type passthroughCleaner struct{}

func (passthroughCleaner) Clean(text string) string { return text }

type panickyRules struct{}

func (panickyRules) Extract(text string) map[string][]string {
	if strings.Contains(text, "boom") {
		panic("pattern set exploded")
	}
	return map[string][]string{"seen": {text}}
}

type emptyEntities struct{}

func (emptyEntities) Extract(string) entity.Extraction { return entity.Extraction{} }

type emptyKeywords struct{}

func (emptyKeywords) Match(string) keywords.Results { return keywords.Results{} }

func TestProcessShortInput(t *testing.T) {
	p := newProcessor(t)

	res := p.Process("Hi")

	if res.CleanedText != "" {
		t.Errorf("cleaned = %q, want empty for short input", res.CleanedText)
	}
	if res.OriginalText != "Hi" {
		t.Errorf("original = %q, want preserved", res.OriginalText)
	}
	if len(res.Rules) != 0 {
		t.Errorf("rules = %v, want empty", res.Rules)
	}
	if res.Keywords.TotalMatches != 0 || len(res.Entities.Skills) != 0 {
		t.Errorf("extraction ran on insufficient input: %+v", res)
	}
	for key, v := range res.Confidence {
		if v != 0 {
			t.Errorf("confidence[%s] = %v, want 0", key, v)
		}
	}
	if res.ID == "" || res.CreatedAt.IsZero() {
		t.Errorf("identity not set: id=%q created=%v", res.ID, res.CreatedAt)
	}
}

func TestProcessFullDocument(t *testing.T) {
	p := newProcessor(t)

	res := p.Process("Senior Python Developer, 5+ years experience, python@company.com. Remote work with Docker and react.js.")

	if res.CleanedText == "" {
		t.Fatal("cleaned text empty")
	}
	if !hasString(res.Rules[rules.CategoryEmails], "python@company.com") {
		t.Errorf("emails = %v", res.Rules[rules.CategoryEmails])
	}
	if len(res.Rules[rules.CategoryDurations]) == 0 {
		t.Errorf("durations empty, want 5+ years phrase")
	}
	if len(res.Entities.Skills) == 0 {
		t.Errorf("entity skills empty: %+v", res.Entities)
	}
	if res.Keywords.TotalMatches == 0 {
		t.Fatal("no keyword matches")
	}

	if got := res.Confidence[ConfEntity]; got != res.Entities.Confidence {
		t.Errorf("entity confidence map %v != stage %v", got, res.Entities.Confidence)
	}
	if got := res.Confidence[ConfKeyword]; got != res.Keywords.Confidence || got <= 0 {
		t.Errorf("keyword confidence map %v, stage %v", got, res.Keywords.Confidence)
	}
	if got := res.Confidence[ConfTotalMatches]; got != float64(res.Keywords.TotalMatches) {
		t.Errorf("total matches %v != %d", got, res.Keywords.TotalMatches)
	}
}

func TestProcessPanicYieldsMinimalResult(t *testing.T) {
	p := New(passthroughCleaner{}, panickyRules{}, emptyEntities{}, emptyKeywords{}, nil)

	res := p.Process("boom boom boom boom boom")

	if res.OriginalText != "boom boom boom boom boom" {
		t.Errorf("original = %q, want preserved", res.OriginalText)
	}
	if res.CleanedText != "" {
		t.Errorf("cleaned = %q, want empty in minimal result", res.CleanedText)
	}
	if len(res.Rules) != 0 {
		t.Errorf("rules = %v, want empty", res.Rules)
	}
	for key, v := range res.Confidence {
		if v != 0 {
			t.Errorf("confidence[%s] = %v, want 0", key, v)
		}
	}
	if res.ID == "" {
		t.Error("minimal result still needs an id")
	}
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	p := New(passthroughCleaner{}, panickyRules{}, emptyEntities{}, emptyKeywords{}, nil)

	inputs := []string{"first document", "boom document", "third document"}
	results := p.ProcessBatch(inputs)

	if len(results) != len(inputs) {
		t.Fatalf("got %d results, want %d", len(results), len(inputs))
	}
	for i, res := range results {
		if res.OriginalText != inputs[i] {
			t.Errorf("results[%d] out of order: %q", i, res.OriginalText)
		}
	}
	if len(results[0].Rules["seen"]) == 0 || len(results[2].Rules["seen"]) == 0 {
		t.Error("healthy documents should process normally around a failure")
	}
	if len(results[1].Rules) != 0 {
		t.Errorf("failed document rules = %v, want empty", results[1].Rules)
	}
}

func TestProcessMetadataPassthrough(t *testing.T) {
	p := newProcessor(t)

	meta := Metadata{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Berlin",
		URL:      "https://jobs.example.com/1",
		Source:   "boards",
	}
	res := p.ProcessWithMeta("We are hiring a backend engineer with Go and PostgreSQL experience.", meta)

	if res.Metadata != meta {
		t.Errorf("metadata = %+v, want %+v", res.Metadata, meta)
	}
}

func TestProcessIDsMonotonic(t *testing.T) {
	p := newProcessor(t)

	a := p.Process("First posting with enough length to process.")
	b := p.Process("Second posting with enough length to process.")

	if a.ID == b.ID {
		t.Fatal("ids must be unique")
	}
	if !(a.ID < b.ID) {
		t.Errorf("ids should sort by creation: %s then %s", a.ID, b.ID)
	}
}

func hasString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
