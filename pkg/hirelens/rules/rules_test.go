package rules

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractSeniorPythonPosting(t *testing.T) {
	e := New(DefaultOptions())

	text := "Senior Python Developer, 5+ years experience, python@company.com"
	results := e.Extract(text)

	if !contains(results[CategoryEmails], "python@company.com") {
		t.Errorf("emails = %v, want python@company.com", results[CategoryEmails])
	}

	found := false
	for _, d := range results[CategoryDurations] {
		if strings.Contains(strings.ToLower(d), "5+ years") {
			found = true
		}
	}
	if !found {
		t.Errorf("durations = %v, want a 5+ years experience phrase", results[CategoryDurations])
	}
}

func TestExtractDedupPreservesOrder(t *testing.T) {
	e := New(DefaultOptions())

	text := "Contact a@x.com then b@x.com then a@x.com again"
	got := e.Emails(text)
	want := []string{"a@x.com", "b@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Emails = %v, want %v", got, want)
	}
}

func TestDates(t *testing.T) {
	e := New(DefaultOptions())

	text := "Posted 01/02/2024, starts March 2025, apply ASAP or within 2 weeks"
	dates := e.Dates(text)

	for _, want := range []string{"01/02/2024", "March 2025", "ASAP", "within 2 weeks"} {
		if !contains(dates, want) {
			t.Errorf("Dates = %v, missing %q", dates, want)
		}
	}
}

func TestPhoneCanonicalization(t *testing.T) {
	e := New(DefaultOptions())

	phones := e.PhoneNumbers("Call (555) 123 4567 or +84 912 345 678")
	if len(phones) == 0 {
		t.Fatal("no phones extracted")
	}
	for _, p := range phones {
		if strings.ContainsAny(p, " \t") {
			t.Errorf("phone %q not canonicalized", p)
		}
	}
}

func TestSalaries(t *testing.T) {
	e := New(DefaultOptions())

	cases := []struct{ text, want string }{
		{"We pay $50,000 - $70,000 annually", "$50,000 - $70,000 annually"},
		{"Salary $80K-120K", "$80K-120K"},
		{"Range: 10-15 triệu VND per month", "10-15 triệu VND"},
		{"Rate is $25/hour for contractors", "$25/hour"},
	}
	for _, c := range cases {
		got := e.Salaries(c.text)
		if !contains(got, c.want) {
			t.Errorf("Salaries(%q) = %v, want %q", c.text, got, c.want)
		}
	}
}

func TestWorkArrangementsLowercased(t *testing.T) {
	e := New(DefaultOptions())

	got := e.WorkArrangements("Remote or Hybrid, Full-Time position")
	for _, want := range []string{"remote", "hybrid", "full-time"} {
		if !contains(got, want) {
			t.Errorf("WorkArrangements = %v, missing %q", got, want)
		}
	}
}

func TestEducationLevels(t *testing.T) {
	e := New(DefaultOptions())

	got := e.EducationLevels("Bachelor's degree required, Master's preferred, PhD a plus")
	if len(got) < 3 {
		t.Errorf("EducationLevels = %v, want three tiers", got)
	}
}

func TestExtractCategoryToggles(t *testing.T) {
	opts := DefaultOptions()
	opts.Emails = false
	opts.Salaries = false
	e := New(opts)

	results := e.Extract("Mail hr@x.com about the $90K role, 3+ years required")
	if _, ok := results[CategoryEmails]; ok {
		t.Error("emails category should be absent when toggled off")
	}
	if _, ok := results[CategorySalaries]; ok {
		t.Error("salaries category should be absent when toggled off")
	}
	if len(results[CategoryDurations]) == 0 {
		t.Error("durations should still be extracted")
	}
}

func TestExtractNoMatchesYieldsEmpty(t *testing.T) {
	e := New(DefaultOptions())

	results := e.Extract("nothing interesting here")
	if got := results[CategoryEmails]; len(got) != 0 {
		t.Errorf("expected no emails, got %v", got)
	}
}

func TestExtractContactInfo(t *testing.T) {
	e := New(DefaultOptions())

	info := e.ExtractContactInfo("hr@x.com, (555) 123-4567, https://x.com/jobs")
	if len(info.Emails) != 1 || len(info.PhoneNumbers) == 0 || len(info.URLs) != 1 {
		t.Errorf("ContactInfo incomplete: %+v", info)
	}
}

func TestExtractRequirements(t *testing.T) {
	e := New(DefaultOptions())

	text := "Join us!\nRequirements:\n• 3+ years experience\n• Bachelor's degree\nBenefits:\n• free coffee"
	req := e.ExtractRequirements(text)

	if req.Raw == "" {
		t.Fatal("requirements section not found")
	}
	if strings.Contains(req.Raw, "coffee") {
		t.Errorf("requirements body leaked past next header: %q", req.Raw)
	}
	if len(req.Durations) == 0 {
		t.Errorf("durations not extracted from section: %+v", req)
	}
	if len(req.EducationLevels) == 0 {
		t.Errorf("education not extracted from section: %+v", req)
	}
}

func TestExtractRequirementsAbsent(t *testing.T) {
	e := New(DefaultOptions())

	if req := e.ExtractRequirements("no sections at all"); req.Raw != "" {
		t.Errorf("expected zero value, got %+v", req)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(map[string][]string{
		CategoryEmails: {"a@x.com"},
		CategoryDates:  {},
	})
	if s["emails_count"] != 1 || s["dates_count"] != 0 {
		t.Errorf("Summary = %v", s)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
