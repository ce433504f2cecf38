package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/starford/dagaz/internal/models"
)

// IndexData is the data bound to the index template. Document titles, dates,
// and metadata are auto-escaped by html/template; Body is already-rendered
// converter output and is inserted as-is.
type IndexData struct {
	Documents []models.Document
}

// renderIndex loads the named template from the templates dir and renders
// the full ordered document list to index.html. A missing or broken template
// aborts the build.
func (b *Builder) renderIndex(docs []models.Document) error {
	path := filepath.Join(b.templatesDir, b.opts.IndexTemplate)
	tpl, err := template.ParseFiles(path)
	if err != nil {
		return fmt.Errorf("site: index template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, IndexData{Documents: docs}); err != nil {
		return fmt.Errorf("site: render index: %w", err)
	}

	return b.output.Write("index"+OutputSuffix, buf.Bytes())
}
