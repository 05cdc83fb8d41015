package entity

import (
	"regexp"
	"strings"
	"unicode"
)

// token is one word of the source text with its byte offsets. Tech
// suffixes survive tokenization: "c++", "c#" and "node.js" stay whole.
type token struct {
	text  string
	lower string
	start int
	end   int
}

var wordRe = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9+#.\-]*`)

func tokenize(text string) []token {
	idxs := wordRe.FindAllStringIndex(text, -1)
	tokens := make([]token, 0, len(idxs))

	for _, loc := range idxs {
		start, end := loc[0], loc[1]
		raw := text[start:end]
		// Trailing dots and hyphens belong to the sentence, not the word
		for len(raw) > 0 {
			last := raw[len(raw)-1]
			if last != '.' && last != '-' {
				break
			}
			raw = raw[:len(raw)-1]
			end--
		}
		if raw == "" {
			continue
		}
		tokens = append(tokens, token{
			text:  raw,
			lower: strings.ToLower(raw),
			start: start,
			end:   end,
		})
	}

	return tokens
}

var sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)

func sentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// dedupLower lowercases values and removes duplicates preserving first
// occurrence.
func dedupLower(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
