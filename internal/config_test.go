package internal

import (
	"testing"

	"github.com/starford/dagaz/internal/metadata"
	"github.com/starford/dagaz/internal/site"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestSiteConfig_EmptyEnumsNormalized(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.Metadata = ""
	cfg.Site.DateErrors = ""
	cfg.Site.Workers = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Site.Metadata != metadata.DialectMeta {
		t.Errorf("metadata = %q", cfg.Site.Metadata)
	}
	if cfg.Site.DateErrors != site.DateFail {
		t.Errorf("date_errors = %q", cfg.Site.DateErrors)
	}
	if cfg.Site.Workers != 1 {
		t.Errorf("workers = %d", cfg.Site.Workers)
	}
}

func TestSiteConfig_InvalidDialect(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.Metadata = "toml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid metadata dialect should fail validation")
	}
}

func TestSiteConfig_InvalidDateErrors(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.DateErrors = "ignore"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid date_errors should fail validation")
	}
}

func TestSiteConfig_MissingPaths(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.SourceDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing source_dir should fail validation")
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("port 0 should fail validation")
	}
	cfg.Server.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("port out of range should fail validation")
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	cfg := HTTPConfig{Port: 9090}
	if got := cfg.Address(); got != ":9090" {
		t.Errorf("address = %q", got)
	}
}
