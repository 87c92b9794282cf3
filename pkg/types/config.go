package types

import "time"

// HTTPConfig holds shared HTTP settings used by clients that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// PubMedConfig holds settings for the E-utilities search and fetch calls.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Tool and Email identify the caller to NCBI. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
}

// ArchiveConfig holds settings for the optional SQLite run archive.
type ArchiveConfig struct {
	// Path is the SQLite database file. Empty disables archiving.
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// Enabled reports whether runs should be archived.
func (c ArchiveConfig) Enabled() bool { return c.Path != "" }

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	// Level is the minimum zerolog level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error"`

	// Format is "console" for human-readable lines or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json"`
}

// Config groups the settings of every component.
type Config struct {
	PubMed  PubMedConfig  `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	Archive ArchiveConfig `json:"archive" yaml:"archive" mapstructure:"archive"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
