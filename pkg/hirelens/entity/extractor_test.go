package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/hirelens/hirelens/pkg/hirelens/internalerr"
)

func TestLoadBackendDefault(t *testing.T) {
	t.Cleanup(CloseBackends)

	rec, err := LoadBackend("")
	if err != nil {
		t.Fatalf("LoadBackend(\"\") failed: %v", err)
	}
	if rec.Name() != ModelTokenMatcher {
		t.Errorf("default backend = %q, want %q", rec.Name(), ModelTokenMatcher)
	}

	// Same instance on repeated loads
	again, err := LoadBackend(ModelTokenMatcher)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if rec != again {
		t.Error("backend should be constructed once and shared")
	}
}

func TestLoadBackendUnknown(t *testing.T) {
	t.Cleanup(CloseBackends)

	_, err := LoadBackend("en_core_web_lg")
	if !errors.Is(err, internalerr.ErrBackendUnavailable) {
		t.Errorf("want ErrBackendUnavailable, got %v", err)
	}
}

func TestExtractSkillsAndRoles(t *testing.T) {
	e := New(DefaultOptions(), nil)

	ex := e.Extract("We need a Senior Python Developer with machine learning and Docker experience.")

	if !hasString(ex.Skills, "python") {
		t.Errorf("Skills = %v, want python", ex.Skills)
	}
	if !hasString(ex.Skills, "machine learning") {
		t.Errorf("Skills = %v, want machine learning", ex.Skills)
	}
	if !hasString(ex.Roles, "developer") {
		t.Errorf("Roles = %v, want developer", ex.Roles)
	}
	if !hasString(ex.Technologies, "docker") {
		t.Errorf("Technologies = %v, want docker", ex.Technologies)
	}
}

func TestExtractDeduplicatesLowercased(t *testing.T) {
	e := New(DefaultOptions(), nil)

	ex := e.Extract("Python, PYTHON and python again. Python everywhere.")

	count := 0
	for _, s := range ex.Skills {
		if s == "python" {
			count++
		}
		if s != strings.ToLower(s) {
			t.Errorf("skill %q not lowercased", s)
		}
	}
	if count != 1 {
		t.Errorf("python appears %d times, want 1: %v", count, ex.Skills)
	}
}

func TestExtractTriggerPhraseHarvesting(t *testing.T) {
	e := New(DefaultOptions(), nil)

	ex := e.Extract("Minimum 3 years needed. Experience with kafka, terraform, ansible, puppet and chef required.")

	if !hasString(ex.Skills, "kafka") {
		t.Errorf("Skills = %v, want kafka harvested after trigger", ex.Skills)
	}
	// Cap of 3 per trigger occurrence: puppet and chef fall off
	if hasString(ex.Skills, "chef required") || hasString(ex.Skills, "puppet") {
		t.Errorf("harvest cap exceeded: %v", ex.Skills)
	}
}

func TestExtractTechNounHarvesting(t *testing.T) {
	e := New(DefaultOptions(), nil)

	ex := e.Extract("You will work daily with the Phoenix framework and our internal tooling.")

	if !hasString(ex.Technologies, "phoenix") {
		t.Errorf("Technologies = %v, want phoenix from noun context", ex.Technologies)
	}
}

func TestExtractQualificationsAndResponsibilities(t *testing.T) {
	e := New(DefaultOptions(), nil)

	ex := e.Extract("You will design and build services. Bachelor degree required, plus knowledge of networking.")

	if !hasString(ex.Responsibilities, "design") || !hasString(ex.Responsibilities, "build") {
		t.Errorf("Responsibilities = %v", ex.Responsibilities)
	}
	if !hasString(ex.Qualifications, "bachelor degree") {
		t.Errorf("Qualifications = %v, want bachelor degree", ex.Qualifications)
	}
}

func TestExtractNamedEntitySpans(t *testing.T) {
	e := New(DefaultOptions(), nil)

	text := "Apply to hr@acme.com before March 2026. Acme Robotics Inc is waiting."
	ex := e.Extract(text)

	labels := map[string]bool{}
	for _, span := range ex.Entities {
		labels[span.Label] = true
		if text[span.Start:span.End] != span.Text {
			t.Errorf("span offsets wrong: %+v", span)
		}
	}
	for _, want := range []string{"EMAIL", "DATE", "ORG"} {
		if !labels[want] {
			t.Errorf("missing %s span, got %+v", want, ex.Entities)
		}
	}
}

func TestExtractConfidenceBounds(t *testing.T) {
	e := New(DefaultOptions(), nil)

	for _, text := range []string{
		"",
		"short note",
		"Python Java Go Rust docker kubernetes aws react sql developer engineer manage lead build design",
	} {
		ex := e.Extract(text)
		if ex.Confidence < 0 || ex.Confidence > 1 {
			t.Errorf("confidence %v out of range for %q", ex.Confidence, text)
		}
	}

	if ex := e.Extract(""); ex.Confidence != 0 {
		t.Errorf("empty text should have zero confidence, got %v", ex.Confidence)
	}
}

func TestFallbackPath(t *testing.T) {
	opts := DefaultOptions()
	opts.ModelName = "missing-model"
	e := New(opts, nil)

	if !e.Degraded() {
		t.Fatal("extractor should be degraded for unknown model")
	}

	ex := e.Extract("Senior Python developer, react and docker, strong leadership.")

	if ex.Confidence != 0.5 {
		t.Errorf("fallback confidence = %v, want fixed 0.5", ex.Confidence)
	}
	if !hasString(ex.Skills, "python") || !hasString(ex.Roles, "developer") || !hasString(ex.Technologies, "react") {
		t.Errorf("fallback should populate skills/roles/technologies: %+v", ex)
	}
	if len(ex.Responsibilities) != 0 || len(ex.Qualifications) != 0 || len(ex.Entities) != 0 {
		t.Errorf("fallback should leave other categories empty: %+v", ex)
	}
}

func TestConfident(t *testing.T) {
	e := New(DefaultOptions(), nil)

	if e.Confident(Extraction{Confidence: 0.69}) {
		t.Error("0.69 should not clear the default 0.7 threshold")
	}
	if !e.Confident(Extraction{Confidence: 0.7}) {
		t.Error("0.7 should clear the default threshold")
	}
}

func TestContextRulesOverride(t *testing.T) {
	opts := DefaultOptions()
	rules := DefaultContextRules()
	rules.MaxPerTrigger = 1
	opts.Context = &rules
	e := New(opts, nil)

	ex := e.Extract("Experience with zig, nim, crystal would be great for this position.")
	if hasString(ex.Skills, "nim") {
		t.Errorf("MaxPerTrigger=1 should keep only the first item: %v", ex.Skills)
	}
	if !hasString(ex.Skills, "zig") {
		t.Errorf("first harvested item missing: %v", ex.Skills)
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
