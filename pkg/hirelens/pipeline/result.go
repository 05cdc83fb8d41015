package pipeline

import (
	"time"

	"github.com/hirelens/hirelens/pkg/hirelens/entity"
	"github.com/hirelens/hirelens/pkg/hirelens/keywords"
)

// Metadata is document context supplied by the crawling collaborator and
// carried through the pipeline unchanged.
type Metadata struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Result is the immutable record produced for one input document. Created
// once per Process call; never mutated afterwards.
type Result struct {
	ID       string   `json:"id"`
	Metadata Metadata `json:"metadata"`

	OriginalText string `json:"original_text"`
	CleanedText  string `json:"cleaned_text"`

	// Rules holds the rule-extraction buckets keyed by category name
	// (dates, emails, salaries, ...). Only enabled categories appear.
	Rules map[string][]string `json:"rules"`

	Entities entity.Extraction `json:"entities"`
	Keywords keywords.Results  `json:"keywords"`

	// Confidence carries the per-stage scores plus the total keyword
	// match count under fixed keys.
	Confidence map[string]float64 `json:"confidence_scores"`

	Duration  time.Duration `json:"processing_duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Confidence map keys.
const (
	ConfEntity       = "entity_confidence"
	ConfKeyword      = "keyword_confidence"
	ConfTotalMatches = "total_matches"
)

func confidenceMap(entityConf, keywordConf float64, totalMatches int) map[string]float64 {
	return map[string]float64{
		ConfEntity:       entityConf,
		ConfKeyword:      keywordConf,
		ConfTotalMatches: float64(totalMatches),
	}
}
