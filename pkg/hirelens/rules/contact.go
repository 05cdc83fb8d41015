package rules

import (
	"regexp"
	"strings"
)

// ContactInfo groups the three contact categories of one text.
type ContactInfo struct {
	Emails       []string
	PhoneNumbers []string
	URLs         []string
}

// ExtractContactInfo returns all contact data regardless of category
// toggles.
func (e *Extractor) ExtractContactInfo(text string) ContactInfo {
	return ContactInfo{
		Emails:       e.Emails(text),
		PhoneNumbers: e.PhoneNumbers(text),
		URLs:         e.URLs(text),
	}
}

// Requirements is the structured view of a posting's requirements section.
type Requirements struct {
	Raw              string
	Durations        []string
	EducationLevels  []string
	WorkArrangements []string
}

var (
	reqHeaderRe = regexp.MustCompile(`(?im)^\s*(?:•\s*)?(?:requirements?|qualifications?|must\s*have)\s*:?\s*$`)
	nextHeader  = regexp.MustCompile(`(?m)^[A-Za-z][^:\n]{0,50}:\s*$`)
)

// ExtractRequirements slices out the requirements section and extracts
// duration, education and work-arrangement facts from it. Best-effort:
// returns the zero value when no requirements header is found.
func (e *Extractor) ExtractRequirements(text string) Requirements {
	loc := reqHeaderRe.FindStringIndex(text)
	if loc == nil {
		return Requirements{}
	}

	body := text[loc[1]:]
	if next := nextHeader.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return Requirements{}
	}

	return Requirements{
		Raw:              body,
		Durations:        e.Durations(body),
		EducationLevels:  e.EducationLevels(body),
		WorkArrangements: e.WorkArrangements(body),
	}
}

// Summary reports per-category match counts for one Extract result.
func Summary(results map[string][]string) map[string]int {
	summary := make(map[string]int, len(results))
	for category, values := range results {
		summary[category+"_count"] = len(values)
	}
	return summary
}
