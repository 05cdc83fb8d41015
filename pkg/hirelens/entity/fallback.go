package entity

import (
	"strings"

	"github.com/hirelens/hirelens/pkg/hirelens/scoring"
)

// fallbackRecognizer is the degraded path used when no recognition
// backend is available: plain case-insensitive substring search over small
// fixed keyword lists. It produces only skills, roles and technologies
// and reports a fixed confidence.
type fallbackRecognizer struct {
	skills       []string
	technologies []string
	roles        []string
}

func newFallbackRecognizer() *fallbackRecognizer {
	return &fallbackRecognizer{
		skills: []string{
			"python", "java", "javascript", "react", "angular", "vue",
			"machine learning", "data science", "sql", "git", "docker",
			"aws", "azure", "kubernetes", "teamwork", "leadership",
			"communication", "problem solving",
		},
		technologies: []string{
			"react", "angular", "vue", "django", "flask", "spring",
			"mysql", "postgresql", "mongodb", "redis", "docker",
			"kubernetes", "aws", "azure", "git", "jenkins",
		},
		roles: []string{
			"developer", "engineer", "analyst", "scientist", "manager",
			"architect", "lead", "senior", "junior", "intern",
		},
	}
}

func (f *fallbackRecognizer) Name() string { return "keyword-fallback" }

func (f *fallbackRecognizer) Recognize(text string) Extraction {
	lower := strings.ToLower(text)

	return Extraction{
		Skills:       containsAny(lower, f.skills),
		Roles:        containsAny(lower, f.roles),
		Technologies: containsAny(lower, f.technologies),
		Confidence:   scoring.FallbackEntityConfidence,
	}
}

func containsAny(lower string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}
