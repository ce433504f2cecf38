// Package testutil provides shared test helpers for setting up site trees
// and builders.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/metadata"
	"github.com/starford/dagaz/internal/site"
	"github.com/starford/dagaz/internal/storage"
)

// IndexTemplate is a minimal index template exercising iteration,
// conditionals, and per-document attribute access.
const IndexTemplate = `<html><body><ul>
{{- range .Documents}}
<li>{{if .Title}}{{.Title}}{{else}}(untitled){{end}}{{if .Date}} — {{.Date.Format "2006-01-02"}}{{end}}
<div>{{.Body}}</div></li>
{{- end}}
</ul></body></html>
`

// SiteTree creates the conventional source layout under a temp dir and
// returns its root. The templates dir contains IndexTemplate as index.html.
func SiteTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"src/markdowns", "src/templates", "src/static"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	WriteFile(t, root, "src/templates/index.html", IndexTemplate)
	return root
}

// WriteFile writes content to a path relative to root, creating parents.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Builder wires a site.Builder over the tree at root with the given options
// and a discarding logger.
func Builder(t *testing.T, root string, opts site.Options) *site.Builder {
	t.Helper()
	source, err := storage.NewFS(filepath.Join(root, "src/markdowns"), false)
	if err != nil {
		t.Fatal(err)
	}
	static, err := storage.NewFS(filepath.Join(root, "src/static"), false)
	if err != nil {
		t.Fatal(err)
	}
	output, err := storage.NewFS(filepath.Join(root, "build"), true)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return site.NewBuilder(source, static, output,
		filepath.Join(root, "src/templates"), metadata.MetaParser{}, logger, opts)
}
