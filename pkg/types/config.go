// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-screen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the PubMed query stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of identifiers to request (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Tool and Email identify the caller to NCBI per E-utilities usage
	// guidelines. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ExtractConfig holds settings for the record extraction stage.
type ExtractConfig struct {
	// CompanyKeywords are the case-insensitive substrings that mark an
	// author affiliation as non-academic. Empty means the defaults
	// (company, pharma, biotech).
	CompanyKeywords []string `json:"company_keywords,omitempty" yaml:"company_keywords,omitempty"`
}

// OutputFormat selects the report output format.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for the report writer.
type OutputConfig struct {
	// File is the destination path (default "results.csv"). An existing
	// file is overwritten.
	File string `json:"file" yaml:"file"`

	// Format selects csv, json, or yaml output (default csv).
	Format OutputFormat `json:"format" yaml:"format"`

	// Columns restricts and orders CSV columns. Empty means the full
	// fixed column list.
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Query   string        `json:"query" yaml:"query"`
	Search  SearchConfig  `json:"search" yaml:"search"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Output  OutputConfig  `json:"output" yaml:"output"`
}
