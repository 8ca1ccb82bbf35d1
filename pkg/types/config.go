package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Lookups are best-effort and
	// single-attempt, so this should stay in the low seconds.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "cvreadme/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// MaxPages caps how many document pages are read. Zero means all pages.
	MaxPages int `json:"max_pages" yaml:"max_pages"`
}

// ClassifierConfig holds settings for the tag classifier.
type ClassifierConfig struct {
	// TablesPath points to a YAML file with category badge tables. When
	// empty the embedded default tables are used.
	TablesPath string `json:"tables_path,omitempty" yaml:"tables_path,omitempty"`
}

// GitHubConfig holds settings for the optional GitHub enrichment lookups.
type GitHubConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled controls whether repository listing and user verification
	// run at all. The render is complete without them.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MaxRepos is the number of repositories shown in the projects
	// section (default 6).
	MaxRepos int `json:"max_repos" yaml:"max_repos"`

	// Token is an optional API token for higher rate limits.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// RenderConfig holds settings for the README renderer.
type RenderConfig struct {
	// OutputPath is the default path for the generated README.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	GitHub     GitHubConfig     `json:"github" yaml:"github"`
	Render     RenderConfig     `json:"render" yaml:"render"`
}
