// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Default thresholds for the analysis pipeline. The expansion minimum matches
// the richer tool variant; both are tunable via config or flags.
const (
	DefaultMinExpansionVolume = 50
	DefaultMinClusterVolume   = 20
	DefaultLocationCode       = 2840 // United States
	DefaultLanguageCode       = "en"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. API credentials are never stored in config files — they come from
// the environment (or flags) only.
type Config struct {
	// Analysis target
	WebsiteURL   string `json:"website_url,omitempty" validate:"omitempty,url"`
	BusinessType string `json:"business_type,omitempty" validate:"omitempty,oneof='E-commerce' 'SaaS' 'Service Business' 'Blog/Content' 'Education'"`

	// Locale for metric and SERP lookups
	LocationCode int    `json:"location_code,omitempty" validate:"omitempty,gt=0"`
	LanguageCode string `json:"language_code,omitempty" validate:"omitempty,len=2"`

	// Thresholds
	MinExpansionVolume int `json:"min_expansion_volume,omitempty" validate:"omitempty,gte=0"`
	MinClusterVolume   int `json:"min_cluster_volume,omitempty" validate:"omitempty,gte=0"`

	// Output
	OutputDir string `json:"output_dir,omitempty"`
	Markdown  bool   `json:"markdown,omitempty"` // also render a Markdown report

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // render JS-heavy pages with a headless browser when scraping locally
	Verbose    bool `json:"verbose,omitempty"`
}

// Credentials holds the external service credentials, injected from the
// environment. They deliberately live outside Config so they cannot end up in
// a committed config file.
type Credentials struct {
	GeminiAPIKey       string
	FirecrawlAPIKey    string
	DataForSEOLogin    string
	DataForSEOPassword string
}

// CredentialsFromEnv reads service credentials from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		FirecrawlAPIKey:    os.Getenv("FIRECRAWL_API_KEY"),
		DataForSEOLogin:    os.Getenv("DATAFORSEO_LOGIN"),
		DataForSEOPassword: os.Getenv("DATAFORSEO_PASSWORD"),
	}
}

// HasMetricsCredentials reports whether the keyword-metrics provider can be called.
func (c Credentials) HasMetricsCredentials() bool {
	return c.DataForSEOLogin != "" && c.DataForSEOPassword != ""
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values using struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.WebsiteURL == "" {
		result.WebsiteURL = defaults.WebsiteURL
	}
	if result.BusinessType == "" {
		result.BusinessType = defaults.BusinessType
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LanguageCode == "" {
		result.LanguageCode = defaults.LanguageCode
	}

	// Int fields: use default if zero
	if result.LocationCode == 0 {
		result.LocationCode = defaults.LocationCode
	}
	if result.MinExpansionVolume == 0 {
		result.MinExpansionVolume = defaults.MinExpansionVolume
	}
	if result.MinClusterVolume == 0 {
		result.MinClusterVolume = defaults.MinClusterVolume
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyDefaults fills remaining zero values with the built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.LocationCode == 0 {
		c.LocationCode = DefaultLocationCode
	}
	if c.LanguageCode == "" {
		c.LanguageCode = DefaultLanguageCode
	}
	if c.MinExpansionVolume == 0 {
		c.MinExpansionVolume = DefaultMinExpansionVolume
	}
	if c.MinClusterVolume == 0 {
		c.MinClusterVolume = DefaultMinClusterVolume
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}
