package entity

import (
	"regexp"
	"strings"
)

// tokenMatcher is the model-backed recognition path: tokenization, a
// named-entity pass and domain token-sequence patterns, plus contextual
// harvesting heuristics.
type tokenMatcher struct {
	patterns []tokenPattern
	rules    ContextRules

	phraseStop map[string]struct{}
	generic    map[string]struct{}
	nounStop   map[string]struct{}

	emailRe *regexp.Regexp
	urlRe   *regexp.Regexp
	dateRe  *regexp.Regexp
	orgRe   *regexp.Regexp
}

// NewTokenMatcher builds the default recognition backend with the given
// harvesting rules.
func NewTokenMatcher(rules ContextRules) Recognizer {
	return &tokenMatcher{
		patterns:   domainPatterns(),
		rules:      rules,
		phraseStop: toSet(rules.PhraseStopWords),
		generic:    toSet(rules.GenericNouns),
		nounStop:   toSet(rules.NounStopList),

		emailRe: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		urlRe:   regexp.MustCompile(`https?://\S+|www\.\S+`),
		dateRe:  regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4}\b`),
		orgRe:   regexp.MustCompile(`\b(?:Inc|Ltd|LLC|Corp|GmbH|Co)\.?\b`),
	}
}

func (m *tokenMatcher) Name() string { return ModelTokenMatcher }

// Recognize runs the full model-backed extraction over one text.
func (m *tokenMatcher) Recognize(text string) Extraction {
	tokens := tokenize(text)

	found := matchPatterns(m.patterns, tokens)
	ex := Extraction{
		Skills:           found[labelSkill],
		Roles:            found[labelRole],
		Technologies:     found[labelTechnology],
		Responsibilities: found[labelResponsibility],
		Qualifications:   found[labelQualification],
	}

	for _, sent := range sentences(text) {
		harvested := harvestTriggerPhrases(strings.ToLower(sent), m.rules, m.phraseStop)
		ex.Skills = append(ex.Skills, harvested...)
	}
	ex.Technologies = append(ex.Technologies, harvestTechNouns(tokens, m.rules, m.generic, m.nounStop)...)

	ex.Entities = m.namedEntities(text, tokens)

	ex.Skills = dedupLower(ex.Skills)
	ex.Roles = dedupLower(ex.Roles)
	ex.Technologies = dedupLower(ex.Technologies)
	ex.Responsibilities = dedupLower(ex.Responsibilities)
	ex.Qualifications = dedupLower(ex.Qualifications)
	ex.Benefits = dedupLower(ex.Benefits)

	return ex
}

// namedEntities runs the standard entity pass: contact spans, month-name
// dates and capitalized runs that look like organization names.
func (m *tokenMatcher) namedEntities(text string, tokens []token) []Span {
	var spans []Span

	for _, loc := range m.emailRe.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Label: "EMAIL", Start: loc[0], End: loc[1]})
	}
	for _, loc := range m.urlRe.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Label: "URL", Start: loc[0], End: loc[1]})
	}
	for _, loc := range m.dateRe.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Label: "DATE", Start: loc[0], End: loc[1]})
	}

	// Capitalized token runs ending in a company suffix
	for i := 0; i < len(tokens); i++ {
		if !isCapitalized(tokens[i].text) {
			continue
		}
		j := i
		for j+1 < len(tokens) && isCapitalized(tokens[j+1].text) && tokens[j+1].start-tokens[j].end <= 1 {
			j++
		}
		if j > i && m.orgRe.MatchString(tokens[j].text) {
			spans = append(spans, Span{
				Text:  text[tokens[i].start:tokens[j].end],
				Label: "ORG",
				Start: tokens[i].start,
				End:   tokens[j].end,
			})
		}
		i = j
	}

	return spans
}
