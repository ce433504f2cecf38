package internal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/testutil"
)

func siteConfig(root string) *Config {
	cfg := NewDefaultConfig()
	cfg.Site.SourceDir = filepath.Join(root, "src/markdowns")
	cfg.Site.TemplatesDir = filepath.Join(root, "src/templates")
	cfg.Site.StaticDir = filepath.Join(root, "src/static")
	cfg.Site.OutputDir = filepath.Join(root, "build")
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_EndToEnd(t *testing.T) {
	root := testutil.SiteTree(t)
	testutil.WriteFile(t, root, "src/markdowns/hello.md", "title: Hello\ndate: 2024-01-15\n\n# Hi\n")
	testutil.WriteFile(t, root, "src/static/style.css", "body{}")

	err := Run(context.Background(), WithConfig(siteConfig(root)), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{"hello.html", "index.html", "style.css"} {
		if _, err := os.Stat(filepath.Join(root, "build", name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRun_RecordsManifest(t *testing.T) {
	root := testutil.SiteTree(t)
	testutil.WriteFile(t, root, "src/markdowns/a.md", "title: A\n\nx\n")

	cfg := siteConfig(root)
	cfg.Manifest.Path = filepath.Join(root, "manifest.db")

	err := Run(context.Background(), WithConfig(cfg), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(cfg.Manifest.Path); err != nil {
		t.Errorf("manifest database not created: %v", err)
	}
}

func TestRun_MissingSourceDirIsFatal(t *testing.T) {
	root := testutil.SiteTree(t)
	cfg := siteConfig(root)
	cfg.Site.SourceDir = filepath.Join(root, "does-not-exist")

	err := Run(context.Background(), WithConfig(cfg), WithLogger(quietLogger()))
	if err == nil {
		t.Fatal("expected error for missing source dir")
	}
}

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("expected error when config is absent")
	}
}
