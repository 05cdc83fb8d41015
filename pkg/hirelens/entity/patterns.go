package entity

import "strings"

// Extraction categories a token pattern can feed.
const (
	labelSkill          = "skill"
	labelRole           = "role"
	labelTechnology     = "technology"
	labelResponsibility = "responsibility"
	labelQualification  = "qualification"
)

// tokenMatch matches one token: either a literal or any member of a set.
type tokenMatch struct {
	literal string
	oneOf   map[string]struct{}
}

func (m tokenMatch) matches(lower string) bool {
	if m.literal != "" {
		return m.literal == lower
	}
	_, ok := m.oneOf[lower]
	return ok
}

// tokenPattern is a case-insensitive token sequence feeding one category.
type tokenPattern struct {
	label string
	seq   []tokenMatch
}

func lit(words ...string) []tokenMatch {
	seq := make([]tokenMatch, len(words))
	for i, w := range words {
		seq[i] = tokenMatch{literal: w}
	}
	return seq
}

func oneOf(words ...string) []tokenMatch {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return []tokenMatch{{oneOf: set}}
}

func seq(parts ...[]tokenMatch) []tokenMatch {
	var out []tokenMatch
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// domainPatterns defines the recognition patterns for the five string
// categories. Sequences are matched against lowercased tokens.
func domainPatterns() []tokenPattern {
	var ps []tokenPattern
	add := func(label string, seqs ...[]tokenMatch) {
		for _, s := range seqs {
			ps = append(ps, tokenPattern{label: label, seq: s})
		}
	}

	add(labelSkill,
		oneOf("python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "golang", "rust", "swift", "kotlin", "scala", "sql"),
		lit("machine", "learning"),
		lit("deep", "learning"),
		lit("data", "science"),
		lit("artificial", "intelligence"),
		lit("natural", "language", "processing"),
		lit("computer", "vision"),
		lit("big", "data"),
		lit("data", "analysis"),
		lit("data", "visualization"),
		lit("problem", "solving"),
		lit("critical", "thinking"),
		lit("team", "work"),
		lit("communication", "skills"),
		lit("leadership"),
		lit("project", "management"),
		lit("time", "management"),
	)

	add(labelRole,
		oneOf("developer", "engineer", "programmer", "architect", "analyst", "scientist"),
		seq(lit("software"), oneOf("developer", "engineer")),
		seq(lit("data"), oneOf("scientist", "engineer", "analyst")),
		lit("machine", "learning", "engineer"),
		lit("full", "stack", "developer"),
		lit("frontend", "developer"),
		lit("backend", "developer"),
		lit("devops", "engineer"),
		lit("product", "manager"),
		lit("project", "manager"),
		lit("tech", "lead"),
		lit("team", "lead"),
	)

	add(labelTechnology,
		oneOf("react", "angular", "vue", "django", "flask", "spring", "laravel", "express",
			"react.js", "reactjs", "node.js", "nodejs", "vue.js", "vuejs", "next.js"),
		seq(oneOf("react", "node", "vue"), lit("js")),
		oneOf("mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "sqlite"),
		lit("sql", "server"),
		oneOf("aws", "azure", "gcp", "docker", "kubernetes", "terraform"),
		lit("amazon", "web", "services"),
		lit("google", "cloud", "platform"),
		oneOf("git", "jenkins", "jira", "confluence", "slack", "tableau", "powerbi", "grafana"),
	)

	add(labelResponsibility,
		oneOf("develop", "design", "implement", "maintain", "create", "build"),
		lit("work", "with"),
		lit("collaborate", "with"),
		lit("responsible", "for"),
		lit("manage"),
		lit("lead"),
		lit("coordinate"),
		lit("ensure"),
		lit("support"),
		lit("participate", "in"),
	)

	add(labelQualification,
		seq(oneOf("bachelor", "bachelors", "bachelor's"), lit("degree")),
		seq(oneOf("master", "masters", "master's"), lit("degree")),
		lit("phd"),
		seq(oneOf("years", "year"), lit("experience")),
		seq(oneOf("years", "year"), lit("of"), lit("experience")),
		lit("experience", "in"),
		lit("knowledge", "of"),
		lit("familiar", "with"),
		lit("proficient", "in"),
		lit("expert", "in"),
	)

	return ps
}

// matchPatterns reports every pattern occurrence over the token slice.
// Matches may overlap; the caller deduplicates per category.
func matchPatterns(patterns []tokenPattern, tokens []token) map[string][]string {
	found := make(map[string][]string)

	for i := range tokens {
		for _, p := range patterns {
			if i+len(p.seq) > len(tokens) {
				continue
			}
			ok := true
			for j, m := range p.seq {
				if !m.matches(tokens[i+j].lower) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			words := make([]string, len(p.seq))
			for j := range p.seq {
				words[j] = tokens[i+j].lower
			}
			found[p.label] = append(found[p.label], strings.Join(words, " "))
		}
	}

	return found
}
