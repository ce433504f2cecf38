package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/dagaz/internal/metadata"
	"github.com/starford/dagaz/internal/site"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Site     SiteConfig        `yaml:"site"`
	Server   ServerConfig      `yaml:"server"`
	Manifest ManifestConfig    `yaml:"manifest"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Site.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// SiteConfig describes the site layout and the build behaviour.
//
// DateErrors controls what happens when a document declares a date that
// matches no known format:
//   - "fail" (default): the whole build aborts.
//   - "warn": the document is built without a date and a warning is logged.
type SiteConfig struct {
	SourceDir     string `yaml:"source_dir"`
	TemplatesDir  string `yaml:"templates_dir"`
	StaticDir     string `yaml:"static_dir"`
	OutputDir     string `yaml:"output_dir"`
	IndexTemplate string `yaml:"index_template"`
	Metadata      string `yaml:"metadata"`
	DateErrors    string `yaml:"date_errors"`
	Workers       int    `yaml:"workers"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	// Normalise empty enum fields to their defaults.
	if c.Metadata == "" {
		c.Metadata = metadata.DialectMeta
	}
	if c.DateErrors == "" {
		c.DateErrors = site.DateFail
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.SourceDir, validation.Required),
		validation.Field(&c.TemplatesDir, validation.Required),
		validation.Field(&c.StaticDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.IndexTemplate, validation.Required),
		validation.Field(&c.Metadata, validation.In(metadata.DialectMeta, metadata.DialectYAML)),
		validation.Field(&c.DateErrors, validation.In(site.DateFail, site.DateWarn)),
		validation.Field(&c.Workers, validation.Min(1)),
	)
}

// ServerConfig holds preview server configuration.
type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ManifestConfig points at the SQLite build manifest. An empty path disables
// manifest recording.
type ManifestConfig struct {
	Path string `yaml:"path"`
}

// NewDefaultConfig returns a new Config with sensible default values. The
// defaults reproduce the conventional layout: Markdown under src/markdowns,
// the index template under src/templates, assets under src/static, and
// everything written to build/.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Site: SiteConfig{
			SourceDir:     "src/markdowns",
			TemplatesDir:  "src/templates",
			StaticDir:     "src/static",
			OutputDir:     "build",
			IndexTemplate: "index.html",
			Metadata:      metadata.DialectMeta,
			DateErrors:    site.DateFail,
			Workers:       1,
		},
		Server: ServerConfig{
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Manifest: ManifestConfig{
			Path: "",
		},
	}
}
