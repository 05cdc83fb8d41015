// Package preprocess normalizes raw job posting text into a stable,
// markup-free form the extraction stages can consume.
package preprocess

import (
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Bullet is the canonical list marker every bullet/numbered-list prefix is
// rewritten to.
const Bullet = "• "

// Options controls the cleaning pipeline.
type Options struct {
	RemoveHTML          bool
	NormalizeWhitespace bool
	RemoveSpecialChars  bool
	MinLength           int
}

// DefaultOptions returns the standard cleaning configuration.
func DefaultOptions() Options {
	return Options{
		RemoveHTML:          true,
		NormalizeWhitespace: true,
		RemoveSpecialChars:  false,
		MinLength:           10,
	}
}

// Cleaner runs the fixed-order cleaning pipeline. It is immutable after
// construction and safe for concurrent use.
type Cleaner struct {
	opts Options
	log  *zap.Logger

	bulletRe       *regexp.Regexp
	numberBulletRe *regexp.Regexp
	specialRe      *regexp.Regexp
	emailRe        *regexp.Regexp
	urlRe          *regexp.Regexp
	horizWSRe      *regexp.Regexp
	blankLineRe    *regexp.Regexp
	spacePunctRe   *regexp.Regexp
	sentGapRe      *regexp.Regexp
}

// NewCleaner creates a Cleaner with the given options. A nil logger
// disables logging.
func NewCleaner(opts Options, log *zap.Logger) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MinLength < 0 {
		opts.MinLength = 0
	}
	return &Cleaner{
		opts: opts,
		log:  log,

		bulletRe:       regexp.MustCompile(`(?m)^[ \t]*(?:[•·▪▫◦‣⁃]|[-*][ \t])[ \t]*`),
		numberBulletRe: regexp.MustCompile(`(?m)^[ \t]*(?:\d{1,2}[.)]|[A-Za-z][.)])[ \t]+`),
		specialRe:      regexp.MustCompile(`[^\w \t\n.,!?;:()\[\]"'/+=@#$%&*-]`),
		emailRe:        regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		urlRe:          regexp.MustCompile(`https?://\S+|www\.\S+`),
		horizWSRe:      regexp.MustCompile(`[ \t\r\f]+`),
		blankLineRe:    regexp.MustCompile(`[ \t]*\n[ \t\n]*`),
		spacePunctRe:   regexp.MustCompile(`[ \t]+([,.!?;:])`),
		sentGapRe:      regexp.MustCompile(`([.!?])[ \t]*([A-Z])`),
	}
}

// Clean runs the full pipeline over raw text. Input that is empty or
// shorter than the configured minimum yields an empty string; that is
// insufficient input, not an error. The same gate applies to the cleaned
// output: markup-heavy input whose text content falls below the minimum
// also yields an empty string, which keeps Clean idempotent — running it
// on its own output is a no-op.
func (c *Cleaner) Clean(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < c.opts.MinLength {
		return ""
	}

	cleaned := stdhtml.UnescapeString(text)

	if c.opts.RemoveHTML {
		cleaned = c.stripMarkup(cleaned)
	}

	cleaned = c.normalizeLists(cleaned)

	if c.opts.RemoveSpecialChars {
		cleaned = c.removeSpecialChars(cleaned)
	}

	if c.opts.NormalizeWhitespace {
		cleaned = c.horizWSRe.ReplaceAllString(cleaned, " ")
		cleaned = c.blankLineRe.ReplaceAllString(cleaned, "\n")
	}

	cleaned = c.finalCleanup(cleaned)
	if utf8.RuneCountInString(cleaned) < c.opts.MinLength {
		return ""
	}
	return cleaned
}

// stripMarkup removes tags while keeping the text layout readable:
// paragraph-level tags become newlines, list items become bullet lines,
// script and style content is dropped entirely.
func (c *Cleaner) stripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}

	tok := html.NewTokenizer(strings.NewReader(text))
	var b strings.Builder
	skip := 0

	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way keep what we have
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(tok.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			switch string(name) {
			case "script", "style":
				if tt == html.StartTagToken {
					skip++
				} else if skip > 0 {
					skip--
				}
			case "br":
				b.WriteByte('\n')
			case "li":
				if tt == html.StartTagToken {
					b.WriteString("\n" + Bullet)
				} else {
					b.WriteByte('\n')
				}
			case "p", "div", "ul", "ol", "tr", "table", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteByte('\n')
			default:
				b.WriteByte(' ')
			}
		}
	}
}

// normalizeLists rewrites every bullet or numbered-list prefix to the
// canonical bullet glyph.
func (c *Cleaner) normalizeLists(text string) string {
	text = c.bulletRe.ReplaceAllString(text, Bullet)
	text = c.numberBulletRe.ReplaceAllString(text, Bullet)
	return text
}

// removeSpecialChars strips characters outside the allow-list. Emails and
// URLs are swapped for placeholders first so the strip cannot mangle them.
func (c *Cleaner) removeSpecialChars(text string) string {
	emails := c.emailRe.FindAllString(text, -1)
	urls := c.urlRe.FindAllString(text, -1)

	for i, email := range emails {
		text = strings.ReplaceAll(text, email, fmt.Sprintf("__EMAIL_%d__", i))
	}
	for i, url := range urls {
		text = strings.ReplaceAll(text, url, fmt.Sprintf("__URL_%d__", i))
	}

	text = c.specialRe.ReplaceAllString(text, " ")

	for i, email := range emails {
		text = strings.ReplaceAll(text, fmt.Sprintf("__EMAIL_%d__", i), email)
	}
	for i, url := range urls {
		text = strings.ReplaceAll(text, fmt.Sprintf("__URL_%d__", i), url)
	}

	return text
}

// finalCleanup trims lines, drops empty ones and fixes spacing around
// sentence punctuation.
func (c *Cleaner) finalCleanup(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	text = strings.Join(kept, "\n")

	text = c.spacePunctRe.ReplaceAllString(text, "$1")
	text = c.sentGapRe.ReplaceAllString(text, "$1 $2")

	return strings.TrimSpace(text)
}

// Stats summarizes the effect of one cleaning run.
type Stats struct {
	OriginalLength int
	CleanedLength  int
	ReductionRatio float64
	OriginalWords  int
	CleanedWords   int
}

// Stat reports length and word statistics for a cleaning run.
func Stat(original, cleaned string) Stats {
	s := Stats{
		OriginalLength: len(original),
		CleanedLength:  len(cleaned),
		OriginalWords:  len(strings.Fields(original)),
		CleanedWords:   len(strings.Fields(cleaned)),
	}
	if s.OriginalLength > 0 {
		s.ReductionRatio = 1 - float64(s.CleanedLength)/float64(s.OriginalLength)
	}
	return s
}
