// Package rules extracts structured facts from cleaned posting text with
// per-category regex pattern sets: dates, durations, contact data, salary,
// work arrangement and education level.
package rules

import (
	"regexp"
	"strings"
)

// Category keys used in Extract results.
const (
	CategoryDates            = "dates"
	CategoryDurations        = "durations"
	CategoryEmails           = "emails"
	CategoryURLs             = "urls"
	CategoryPhoneNumbers     = "phone_numbers"
	CategorySalaries         = "salaries"
	CategoryWorkArrangements = "work_arrangements"
	CategoryEducationLevels  = "education_levels"
)

// Options toggles each extraction category independently.
type Options struct {
	Dates            bool
	Durations        bool
	Emails           bool
	URLs             bool
	Phones           bool
	Salaries         bool
	WorkArrangements bool
	Education        bool
}

// DefaultOptions enables every category.
func DefaultOptions() Options {
	return Options{
		Dates:            true,
		Durations:        true,
		Emails:           true,
		URLs:             true,
		Phones:           true,
		Salaries:         true,
		WorkArrangements: true,
		Education:        true,
	}
}

// Extractor applies compiled pattern sets to text. Immutable after
// construction and safe for concurrent use.
type Extractor struct {
	opts Options

	datePatterns      []*regexp.Regexp
	durationPatterns  []*regexp.Regexp
	emailPattern      *regexp.Regexp
	urlPatterns       []*regexp.Regexp
	phonePatterns     []*regexp.Regexp
	salaryPatterns    []*regexp.Regexp
	workPatterns      []*regexp.Regexp
	educationPatterns []*regexp.Regexp

	phoneSepRe *regexp.Regexp
}

// New compiles all pattern sets for the enabled categories.
func New(opts Options) *Extractor {
	return &Extractor{
		opts: opts,

		datePatterns: []*regexp.Regexp{
			// Numeric dates: 01/01/2024, 1-1-2024, 01.01.2024
			regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`),
			regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`),
			// Month-name dates: January 2024, Jan 2024
			regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4}\b`),
			// Urgency phrases
			regexp.MustCompile(`(?i)\b(?:immediately|asap|urgent|within\s+\d+\s+(?:days?|weeks?|months?))\b`),
		},
		durationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d+[-+]?\s*(?:to\s+\d+\s*)?years?\s*(?:of\s*)?(?:experience|exp)\b`),
			regexp.MustCompile(`(?i)\b\d+\s*[-–]\s*\d+\s*years?\b`),
			regexp.MustCompile(`(?i)\b\d+\+?\s*years?\b`),
			regexp.MustCompile(`(?i)\b\d+[-+]?\s*(?:to\s+\d+\s*)?months?\s*(?:of\s*)?(?:experience|exp)\b`),
			regexp.MustCompile(`(?i)\b(?:\d+\s*(?:month|year)s?\s*contract|contract\s*(?:for\s*)?\d+\s*(?:month|year)s?)\b`),
		},
		emailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`),
			regexp.MustCompile(`(?i)\bwww\.[^\s<>"{}|\\^` + "`" + `\[\]]+`),
		},
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]?\d{4}\b`),
			regexp.MustCompile(`\b\d{3}[-\s]\d{3}[-\s]\d{4}\b`),
			regexp.MustCompile(`\+\d{1,3}[-\s]?\d{1,4}[-\s]?\d{1,4}[-\s]?\d{1,9}`),
			regexp.MustCompile(`\b(?:\+84|0)\d{9,10}\b`),
		},
		salaryPatterns: []*regexp.Regexp{
			// $50,000 - $70,000 USD / per year
			regexp.MustCompile(`(?i)\$\d{1,3}(?:,\d{3})*(?:\s*[-–]\s*\$?\d{1,3}(?:,\d{3})*)?(?:\s*(?:USD|per\s*year|annually|pa))?`),
			// $50K-70K
			regexp.MustCompile(`(?i)\$\d{1,3}k(?:\s*[-–]\s*\$?\d{1,3}k)?`),
			// 50-70k USD
			regexp.MustCompile(`(?i)\b\d{1,3}k?\s*[-–]\s*\d{1,3}k?\s*(?:USD|dollars?|per\s*year|annually)\b`),
			// Localized: 10-15 triệu VND, 20 million
			regexp.MustCompile(`(?i)\b\d{1,3}(?:\s*[-–]\s*\d{1,3})?\s*(?:triệu|tr|million)\s*(?:VND|đồng)?\b`),
			// Hourly: $25/hour, $15-25 per hour
			regexp.MustCompile(`(?i)\$\d{1,3}(?:\s*[-–]\s*\$?\d{1,3})?\s*(?:per\s*hour|/hour|/hr|hourly)`),
		},
		workPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:remote|work\s*from\s*home|wfh|telecommute|telework)\b`),
			regexp.MustCompile(`(?i)\b(?:hybrid|flexible|mixed)\b`),
			regexp.MustCompile(`(?i)\b(?:on-site|onsite|in-person)\b`),
			regexp.MustCompile(`(?i)\b(?:full-time|fulltime|full\s*time)\b`),
			regexp.MustCompile(`(?i)\b(?:part-time|parttime|part\s*time)\b`),
			regexp.MustCompile(`(?i)\b(?:contractor|contract|freelance|temporary|temp)\b`),
		},
		educationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:bachelor'?s?|b\.?s\.?c?|undergraduate)(?:\s*degree)?\b`),
			regexp.MustCompile(`(?i)\b(?:master'?s?|m\.?s\.?c?|mba|graduate)(?:\s*degree)?\b`),
			regexp.MustCompile(`(?i)\b(?:phd|ph\.d|doctorate|doctoral)(?:\s*degree)?\b`),
			regexp.MustCompile(`(?i)\b(?:associate'?s?)(?:\s*degree)?\b`),
			regexp.MustCompile(`(?i)\b(?:high\s*school|diploma|ged)\b`),
		},

		phoneSepRe: regexp.MustCompile(`\s+`),
	}
}

// Extract runs every enabled category over the text. Categories with no
// matches yield empty lists; the map always carries a key per enabled
// category.
func (e *Extractor) Extract(text string) map[string][]string {
	results := make(map[string][]string)

	if e.opts.Dates {
		results[CategoryDates] = e.Dates(text)
	}
	if e.opts.Durations {
		results[CategoryDurations] = e.Durations(text)
	}
	if e.opts.Emails {
		results[CategoryEmails] = e.Emails(text)
	}
	if e.opts.URLs {
		results[CategoryURLs] = e.URLs(text)
	}
	if e.opts.Phones {
		results[CategoryPhoneNumbers] = e.PhoneNumbers(text)
	}
	if e.opts.Salaries {
		results[CategorySalaries] = e.Salaries(text)
	}
	if e.opts.WorkArrangements {
		results[CategoryWorkArrangements] = e.WorkArrangements(text)
	}
	if e.opts.Education {
		results[CategoryEducationLevels] = e.EducationLevels(text)
	}

	return results
}

// Dates returns absolute, month-name and urgency date mentions.
func (e *Extractor) Dates(text string) []string {
	return applyAll(e.datePatterns, text)
}

// Durations returns experience and contract-length phrases.
func (e *Extractor) Durations(text string) []string {
	return applyAll(e.durationPatterns, text)
}

// Emails returns email addresses.
func (e *Extractor) Emails(text string) []string {
	return unique(e.emailPattern.FindAllString(text, -1))
}

// URLs returns http(s) and www links.
func (e *Extractor) URLs(text string) []string {
	return applyAll(e.urlPatterns, text)
}

// PhoneNumbers returns phone numbers with whitespace canonicalized to a
// single dash separator.
func (e *Extractor) PhoneNumbers(text string) []string {
	var phones []string
	for _, p := range e.phonePatterns {
		for _, m := range p.FindAllString(text, -1) {
			phones = append(phones, e.phoneSepRe.ReplaceAllString(strings.TrimSpace(m), "-"))
		}
	}
	return unique(phones)
}

// Salaries returns salary and rate mentions.
func (e *Extractor) Salaries(text string) []string {
	return applyAll(e.salaryPatterns, text)
}

// WorkArrangements returns remote/hybrid/onsite and employment-type
// mentions, lowercased.
func (e *Extractor) WorkArrangements(text string) []string {
	return unique(lowerAll(applyAll(e.workPatterns, text)))
}

// EducationLevels returns degree-tier mentions, lowercased.
func (e *Extractor) EducationLevels(text string) []string {
	return unique(lowerAll(applyAll(e.educationPatterns, text)))
}

// applyAll unions the matches of every pattern, deduplicated preserving
// first occurrence. Patterns within a category carry no priority.
func applyAll(patterns []*regexp.Regexp, text string) []string {
	var all []string
	for _, p := range patterns {
		all = append(all, p.FindAllString(text, -1)...)
	}
	return unique(all)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
