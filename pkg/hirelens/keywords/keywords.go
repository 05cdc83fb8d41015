// Package keywords matches cleaned posting text against category-organized
// keyword dictionaries (skills, technologies, soft skills, industry terms,
// seniority levels) with exact, alias and fuzzy strategies.
package keywords

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/pkg/hirelens/internalerr"
	"github.com/hirelens/hirelens/pkg/hirelens/scoring"
)

// Match types, ordered by score: exact 1.0, alias 0.9, fuzzy [threshold, 1).
const (
	MatchExact = "exact"
	MatchAlias = "alias"
	MatchFuzzy = "fuzzy"
)

// Entry is the metadata of one canonical keyword.
type Entry struct {
	Category string   `json:"category"`
	Weight   float64  `json:"weight"`
	Aliases  []string `json:"aliases"`
}

// UnmarshalJSON defaults an absent weight to 1.0.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type raw Entry
	r := raw{Weight: 1.0}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*e = Entry(r)
	return nil
}

// Dictionary maps category name → canonical keyword → metadata. Loaded
// once per matcher; immutable afterwards.
type Dictionary map[string]map[string]Entry

// Match is one keyword hit. Within one matching pass a dictionary holds
// at most one Match per distinct keyword: the highest-scoring one.
type Match struct {
	Keyword     string  `json:"keyword"`
	MatchedText string  `json:"matched_text"`
	Score       float64 `json:"score"`
	Type        string  `json:"match_type"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight"`
	Subcategory string  `json:"subcategory"`
}

// Results groups the per-dictionary match lists, each sorted by score
// descending.
type Results struct {
	Skills          []Match `json:"skills"`
	Technologies    []Match `json:"technologies"`
	SoftSkills      []Match `json:"soft_skills"`
	IndustryTerms   []Match `json:"industry_terms"`
	SeniorityLevels []Match `json:"seniority_levels"`

	Confidence   float64 `json:"confidence"`
	TotalMatches int     `json:"total_matches"`
}

// Options configures a Matcher.
type Options struct {
	SkillsPath        string
	TechnologiesPath  string
	SoftSkillsPath    string
	IndustryTermsPath string
	SeniorityPath     string

	FuzzyMatching       bool
	SimilarityThreshold float64

	// Similarity computes an edit-similarity ratio in [0, 1]. Nil
	// selects the default Levenshtein-based Ratio.
	Similarity func(a, b string) float64
	// Scorer replaces the confidence formula. Nil selects the default.
	Scorer scoring.MatchFunc
}

// DefaultOptions returns the standard matcher configuration: builtin
// dictionaries, fuzzy matching at threshold 0.8.
func DefaultOptions() Options {
	return Options{
		FuzzyMatching:       true,
		SimilarityThreshold: 0.8,
	}
}

// Matcher matches text against its loaded dictionaries. Immutable after
// construction and safe for concurrent use.
type Matcher struct {
	skills    Dictionary
	tech      Dictionary
	soft      Dictionary
	industry  Dictionary
	seniority Dictionary

	fuzzy      bool
	threshold  float64
	similarity func(a, b string) float64
	scorer     scoring.MatchFunc
	log        *zap.Logger
}

// NewMatcher loads the five dictionaries, substituting builtins for
// missing or malformed sources, and wires the matching strategies.
func NewMatcher(opts Options, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = 0.8
	}
	similarity := opts.Similarity
	if similarity == nil {
		similarity = Ratio
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = scoring.MatchConfidence
	}

	return &Matcher{
		skills:    loadDictionary("skills", opts.SkillsPath, defaultSkills(), log),
		tech:      loadDictionary("technologies", opts.TechnologiesPath, defaultTechnologies(), log),
		soft:      loadDictionary("soft_skills", opts.SoftSkillsPath, defaultSoftSkills(), log),
		industry:  loadDictionary("industry_terms", opts.IndustryTermsPath, defaultIndustryTerms(), log),
		seniority: loadDictionary("seniority_levels", opts.SeniorityPath, defaultSeniorityLevels(), log),

		fuzzy:      opts.FuzzyMatching,
		threshold:  opts.SimilarityThreshold,
		similarity: similarity,
		scorer:     scorer,
		log:        log,
	}
}

// loadDictionary reads a JSON dictionary file, falling back to the
// builtin table when the path is unset, unreadable or malformed. Load
// failures are never fatal.
func loadDictionary(name, path string, builtin Dictionary, log *zap.Logger) Dictionary {
	if path == "" {
		return builtin
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("dictionary not readable, using builtin defaults",
			zap.String("dictionary", name), zap.String("path", path), zap.Error(err))
		return builtin
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		log.Warn("dictionary malformed, using builtin defaults",
			zap.String("dictionary", name), zap.String("path", path),
			zap.Error(fmt.Errorf("%w: %v", internalerr.ErrInvalidDictionary, err)))
		return builtin
	}

	return dict
}

// Match runs all dictionaries against one text.
func (m *Matcher) Match(text string) Results {
	norm := normalizeText(text)
	words := strings.Fields(norm)

	res := Results{
		Skills:          m.matchDictionary(norm, words, m.skills),
		Technologies:    m.matchDictionary(norm, words, m.tech),
		SoftSkills:      m.matchDictionary(norm, words, m.soft),
		IndustryTerms:   m.matchDictionary(norm, words, m.industry),
		SeniorityLevels: m.matchDictionary(norm, words, m.seniority),
	}

	var signals []scoring.MatchSignal
	for _, list := range [][]Match{res.Skills, res.Technologies, res.SoftSkills, res.IndustryTerms, res.SeniorityLevels} {
		res.TotalMatches += len(list)
		for _, match := range list {
			signals = append(signals, scoring.MatchSignal{
				Score:    match.Score,
				Weight:   match.Weight,
				Category: match.Category,
			})
		}
	}
	res.Confidence = m.scorer(signals)

	return res
}

// matchDictionary matches every keyword of one dictionary, keeping the
// single best match per keyword — across category groups too, since a
// dictionary file may repeat a keyword under several groups — sorted by
// score descending.
func (m *Matcher) matchDictionary(norm string, words []string, dict Dictionary) []Match {
	best := make(map[string]Match)

	for category, entries := range dict {
		for keyword, entry := range entries {
			match, ok := m.matchKeyword(norm, words, keyword, entry, category)
			if !ok {
				continue
			}
			prev, seen := best[keyword]
			if !seen || match.Score > prev.Score ||
				(match.Score == prev.Score && match.Category < prev.Category) {
				best[keyword] = match
			}
		}
	}

	matches := make([]Match, 0, len(best))
	for _, match := range best {
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Keyword < matches[j].Keyword
	})

	return matches
}

// matchKeyword tries exact, alias and fuzzy strategies for one keyword
// and returns the best hit. Exact short-circuits: nothing scores higher.
func (m *Matcher) matchKeyword(norm string, words []string, keyword string, entry Entry, category string) (Match, bool) {
	mk := func(text string, score float64, typ string) Match {
		return Match{
			Keyword:     keyword,
			MatchedText: text,
			Score:       score,
			Type:        typ,
			Category:    category,
			Weight:      entry.Weight,
			Subcategory: entry.Category,
		}
	}

	if containsWord(norm, normalizeText(keyword)) {
		return mk(keyword, 1.0, MatchExact), true
	}

	var best Match
	found := false
	for _, alias := range entry.Aliases {
		if containsWord(norm, normalizeText(alias)) {
			best = mk(alias, 0.9, MatchAlias)
			found = true
			break
		}
	}

	if m.fuzzy && m.similarity != nil {
		if ratio, text := m.bestFuzzy(normalizeText(keyword), words); ratio >= m.threshold && ratio > best.Score {
			best = mk(text, ratio, MatchFuzzy)
			found = true
		}
	}

	return best, found
}

// normalizeText lowercases and replaces common separators with spaces so
// "front-end" and "front end" compare equal. Dots are kept: "react.js"
// must stay distinct from "react" so aliases can claim it.
var (
	separatorRe = regexp.MustCompile(`[/\-_]`)
	multiWSRe   = regexp.MustCompile(`\s+`)
)

func normalizeText(text string) string {
	text = strings.ToLower(text)
	text = separatorRe.ReplaceAllString(text, " ")
	text = multiWSRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// containsWord reports whether phrase occurs in text on word boundaries:
// the neighboring characters must not be letters or digits.
func containsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(text)-len(phrase); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start

		boundedLeft := i == 0 || !joinsWord(text, i-1)
		end := i + len(phrase)
		boundedRight := end == len(text) || !joinsWord(text, end)
		if boundedLeft && boundedRight {
			return true
		}
		start = i + 1
	}
	return false
}

// joinsWord reports whether the byte at i binds its neighbors into one
// word. Letters and digits always do; a dot only when flanked by
// alphanumerics on both sides, so "react.js" is one word but a sentence
// ending in "react." is not.
func joinsWord(text string, i int) bool {
	b := text[i]
	if isWordByte(b) {
		return true
	}
	if b != '.' {
		return false
	}
	return i > 0 && i+1 < len(text) && isWordByte(text[i-1]) && isWordByte(text[i+1])
}

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}
