// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the total timeout of one request (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Delay is the fixed pause before every request (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	HTTPConfig `yaml:",inline"`

	// Author is the tafsir source selected at startup.
	Author Author `json:"author" yaml:"author"`

	// BaseURL is the author root, e.g. "https://tafsir.app/alrazi".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DataDir is the root under which data/{author}/ files are written.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// TranslationConfig holds settings for the translation pass.
type TranslationConfig struct {
	// SourceDir holds one subdirectory per author (default "data").
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputDir is the root of the mirrored tree (default "data_translated").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Language is the target language code (default "en").
	Language string `json:"language" yaml:"language"`
}

// IndexConfig holds settings for the record index.
type IndexConfig struct {
	// DataDir is the extraction output root; the database lives in DataDir/index/.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig selects where and how log events are written.
type LogConfig struct {
	// File is the append-only log file; empty disables file output.
	File string `json:"file" yaml:"file"`

	// Level is debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}
