package config

import (
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/pkg/hirelens/entity"
	"github.com/hirelens/hirelens/pkg/hirelens/keywords"
	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
	"github.com/hirelens/hirelens/pkg/hirelens/preprocess"
	"github.com/hirelens/hirelens/pkg/hirelens/rules"
)

// Components holds the constructed pipeline stages.
type Components struct {
	Cleaner   *preprocess.Cleaner
	Rules     *rules.Extractor
	Entities  *entity.Extractor
	Keywords  *keywords.Matcher
	Processor *pipeline.Processor
}

// Build constructs every pipeline component from the configuration.
// Construction fails soft throughout: bad dictionaries and missing
// recognition backends degrade with a warning, they never error.
func (c Config) Build(log *zap.Logger) *Components {
	if log == nil {
		log = zap.NewNop()
	}

	cleaner := preprocess.NewCleaner(preprocess.Options{
		RemoveHTML:          c.RemoveHTML,
		NormalizeWhitespace: c.NormalizeWhitespace,
		RemoveSpecialChars:  c.RemoveSpecialChars,
		MinLength:           c.MinLength,
	}, log)

	ruleExtractor := rules.New(rules.Options{
		Dates:            c.ExtractDates,
		Durations:        c.ExtractDurations,
		Emails:           c.ExtractEmails,
		URLs:             c.ExtractURLs,
		Phones:           c.ExtractPhoneNumbers,
		Salaries:         c.ExtractSalary,
		WorkArrangements: c.ExtractWorkArrangement,
		Education:        c.ExtractEducation,
	})

	entityExtractor := entity.New(entity.Options{
		ModelName:           c.ModelName,
		ConfidenceThreshold: c.ConfidenceThreshold,
	}, log)

	matcher := keywords.NewMatcher(keywords.Options{
		SkillsPath:          c.SkillsDictPath,
		TechnologiesPath:    c.TechnologiesDictPath,
		SoftSkillsPath:      c.SoftSkillsDictPath,
		IndustryTermsPath:   c.IndustryTermsDictPath,
		SeniorityPath:       c.SeniorityDictPath,
		FuzzyMatching:       c.FuzzyMatching,
		SimilarityThreshold: c.SimilarityThreshold,
	}, log)

	return &Components{
		Cleaner:   cleaner,
		Rules:     ruleExtractor,
		Entities:  entityExtractor,
		Keywords:  matcher,
		Processor: pipeline.New(cleaner, ruleExtractor, entityExtractor, matcher, log),
	}
}
