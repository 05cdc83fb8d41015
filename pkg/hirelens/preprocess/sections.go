package preprocess

import "strings"

type sectionHeader struct {
	phrase  string
	section string
}

// section header phrases, checked against lowercased line prefixes.
// Longer phrases come first so "role description" wins over "role".
var sectionHeaders = []sectionHeader{
	{"job description", "description"},
	{"role description", "description"},
	{"responsibilities", "responsibilities"},
	{"responsibility", "responsibilities"},
	{"qualifications", "requirements"},
	{"qualification", "requirements"},
	{"requirements", "requirements"},
	{"requirement", "requirements"},
	{"who we are", "about"},
	{"we offer", "benefits"},
	{"about us", "about"},
	{"benefits", "benefits"},
	{"benefit", "benefits"},
	{"overview", "description"},
	{"company", "about"},
	{"skills", "requirements"},
	{"duties", "responsibilities"},
	{"perks", "benefits"},
	{"role", "responsibilities"},
}

// Sections slices cleaned text into common job posting sections. A line is
// treated as a header when it starts with a known phrase and carries little
// else; following lines belong to that section until the next header.
// Best-effort: returns an empty map when no headers are found.
func (c *Cleaner) Sections(text string) map[string]string {
	sections := make(map[string]string)
	if text == "" {
		return sections
	}

	current := ""
	var body []string

	flush := func() {
		if current != "" && len(body) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if name, rest := headerFor(line); name != "" {
			flush()
			current = name
			if rest != "" {
				body = append(body, rest)
			}
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// headerFor reports the section a line opens, plus any content that
// follows the header phrase on the same line ("Requirements: 3+ years").
func headerFor(line string) (string, string) {
	probe := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), Bullet)))
	if probe == "" || len(probe) > 60 {
		return "", ""
	}

	for _, h := range sectionHeaders {
		if !strings.HasPrefix(probe, h.phrase) {
			continue
		}
		tail := strings.TrimSpace(probe[len(h.phrase):])
		// A header line is the phrase alone or phrase plus a colon and a
		// short tail; "skills in demand this year" is body text.
		if tail == "" || strings.HasPrefix(tail, ":") {
			return h.section, strings.TrimSpace(strings.TrimLeft(tail, ":"))
		}
	}
	return "", ""
}
