package entity

import "strings"

// ContextRules tunes the contextual harvesting heuristics. The caps and
// stop lists exist to keep noise down; the defaults are deliberate but not
// principled, which is why they are configuration rather than constants.
type ContextRules struct {
	// Triggers are phrases whose following words name skills.
	Triggers []string
	// MaxPerTrigger caps how many items one trigger occurrence yields.
	MaxPerTrigger int
	// PhraseStopWords are dropped from harvested phrase fragments.
	PhraseStopWords []string
	// GenericNouns are words like "framework" whose neighboring noun
	// names a technology.
	GenericNouns []string
	// NounStopList excludes generic neighbors from noun harvesting.
	NounStopList []string
	// MinTokenLen is the minimum length of a harvested fragment.
	MinTokenLen int
}

// DefaultContextRules returns the standard harvesting configuration.
func DefaultContextRules() ContextRules {
	return ContextRules{
		Triggers: []string{
			"experience with", "knowledge of", "proficient in",
			"skilled in", "expert in",
		},
		MaxPerTrigger: 3,
		PhraseStopWords: []string{
			"and", "or", "the", "of", "in", "to", "for",
		},
		GenericNouns: []string{
			"framework", "frameworks", "library", "libraries", "database",
			"databases", "platform", "platforms", "tool", "tools",
			"technology", "technologies", "stack", "environment",
			"system", "systems", "software",
		},
		NounStopList: []string{
			"team", "work", "job", "role", "data", "big", "new", "good", "best",
		},
		MinTokenLen: 3,
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// harvestTriggerPhrases scans one lowercased sentence for trigger phrases
// and returns the short fragments that follow them, split on commas,
// semicolons and "and", filtered against the stop list and capped per
// occurrence.
func harvestTriggerPhrases(sentence string, rules ContextRules, stop map[string]struct{}) []string {
	var out []string

	for _, trigger := range rules.Triggers {
		idx := strings.Index(sentence, trigger)
		if idx < 0 {
			continue
		}
		tail := sentence[idx+len(trigger):]

		var items []string
		for _, part := range strings.Split(tail, ",") {
			for _, sub := range strings.Split(part, ";") {
				items = append(items, strings.Split(sub, " and ")...)
			}
		}

		kept := 0
		for _, item := range items {
			if kept >= rules.MaxPerTrigger {
				break
			}
			item = strings.TrimSpace(item)
			if len(item) < rules.MinTokenLen {
				continue
			}
			if _, ok := stop[item]; ok {
				continue
			}
			out = append(out, item)
			kept++
		}
	}

	return out
}

// harvestTechNouns finds generic technology nouns ("framework", "tool")
// and harvests the concrete noun next to them: "the Django framework"
// yields "django".
func harvestTechNouns(tokens []token, rules ContextRules, generic, stop map[string]struct{}) []string {
	var out []string

	for i, tok := range tokens {
		if _, ok := generic[tok.lower]; !ok {
			continue
		}
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		if _, ok := generic[prev.lower]; ok {
			continue
		}
		if _, ok := stop[prev.lower]; ok {
			continue
		}
		if len(prev.lower) <= 2 || !isAlphabetic(prev.text) {
			continue
		}
		out = append(out, prev.lower)
	}

	return out
}
