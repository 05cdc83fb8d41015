// Package config reads the YAML options file and constructs the pipeline
// components from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hirelens/hirelens/pkg/hirelens/internalerr"
)

// Config is the recognized options file. Absent fields keep the defaults
// of Default().
type Config struct {
	RemoveHTML          bool `yaml:"remove_html"`
	NormalizeWhitespace bool `yaml:"normalize_whitespace"`
	RemoveSpecialChars  bool `yaml:"remove_special_chars"`
	MinLength           int  `yaml:"min_length"`

	ExtractDates           bool `yaml:"extract_dates"`
	ExtractDurations       bool `yaml:"extract_durations"`
	ExtractEmails          bool `yaml:"extract_emails"`
	ExtractURLs            bool `yaml:"extract_urls"`
	ExtractPhoneNumbers    bool `yaml:"extract_phone_numbers"`
	ExtractSalary          bool `yaml:"extract_salary"`
	ExtractWorkArrangement bool `yaml:"extract_work_arrangement"`
	ExtractEducation       bool `yaml:"extract_education"`

	ModelName           string  `yaml:"model_name"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	FuzzyMatching       bool    `yaml:"fuzzy_matching"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	SkillsDictPath        string `yaml:"skills_dict_path"`
	TechnologiesDictPath  string `yaml:"technologies_dict_path"`
	SoftSkillsDictPath    string `yaml:"soft_skills_dict_path"`
	IndustryTermsDictPath string `yaml:"industry_terms_dict_path"`
	SeniorityDictPath     string `yaml:"seniority_dict_path"`

	DatabasePath string `yaml:"database_path"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		RemoveHTML:          true,
		NormalizeWhitespace: true,
		RemoveSpecialChars:  false,
		MinLength:           10,

		ExtractDates:           true,
		ExtractDurations:       true,
		ExtractEmails:          true,
		ExtractURLs:            true,
		ExtractPhoneNumbers:    true,
		ExtractSalary:          true,
		ExtractWorkArrangement: true,
		ExtractEducation:       true,

		ConfidenceThreshold: 0.7,
		FuzzyMatching:       true,
		SimilarityThreshold: 0.8,

		DatabasePath: "hirelens.db",
	}
}

// Load reads a YAML config file over the defaults. On failure it returns
// the defaults together with the error so callers can warn and continue.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
	}

	return cfg, nil
}
