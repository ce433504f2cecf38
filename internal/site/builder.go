// Package site implements the build pipeline: enumerate Markdown sources,
// convert each to an HTML page, render the index from a template, and copy
// static assets into the output directory.
package site

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/checksum"
	"github.com/starford/dagaz/internal/dates"
	"github.com/starford/dagaz/internal/markdown"
	"github.com/starford/dagaz/internal/metadata"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

// Date error policies.
const (
	DateFail = "fail"
	DateWarn = "warn"
)

// Suffixes for input and output files.
const (
	DocSuffix    = ".md"
	OutputSuffix = ".html"
)

// Options tunes build behaviour beyond the directory layout.
type Options struct {
	IndexTemplate string // template file name inside the templates dir
	DateErrors    string // DateFail or DateWarn
	Workers       int    // parallel conversions; 1 = sequential
}

// Builder runs the pipeline. It is constructed once and can build any number
// of times (the serve command rebuilds on source changes).
type Builder struct {
	source       storage.Provider
	static       storage.Provider
	output       storage.Provider
	templatesDir string
	conv         *markdown.Converter
	meta         metadata.Parser
	logger       *slog.Logger
	opts         Options
}

// NewBuilder wires the pipeline components together.
func NewBuilder(source, static, output storage.Provider, templatesDir string, meta metadata.Parser, logger *slog.Logger, opts Options) *Builder {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.DateErrors == "" {
		opts.DateErrors = DateFail
	}
	if opts.IndexTemplate == "" {
		opts.IndexTemplate = "index" + OutputSuffix
	}
	return &Builder{
		source:       source,
		static:       static,
		output:       output,
		templatesDir: templatesDir,
		conv:         markdown.NewConverter(),
		meta:         meta,
		logger:       logger,
		opts:         opts,
	}
}

// Build runs the pipeline once: convert every document, render the index,
// copy assets. Any failure past the zero-documents case aborts the build;
// outputs already written stay on disk.
func (b *Builder) Build(ctx context.Context) (*models.BuildResult, error) {
	start := time.Now()
	b.logger.Info("build: starting", slog.String("source", b.source.Root()))

	files, err := b.source.List(DocSuffix)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		b.logger.Warn("build: no documents found",
			slog.String("dir", b.source.Root()),
			slog.String("suffix", DocSuffix))
	}

	b.logger.Info("build: rendering documents", slog.Int("count", len(files)))
	docs, err := b.convertAll(ctx, files)
	if err != nil {
		return nil, err
	}

	b.logger.Info("build: rendering index")
	if err := b.renderIndex(docs); err != nil {
		return nil, err
	}

	b.logger.Info("build: copying static assets")
	assets, err := b.copyAssets()
	if err != nil {
		return nil, err
	}

	res := &models.BuildResult{
		Documents: docs,
		Assets:    assets,
		StartedAt: start,
		Duration:  time.Since(start),
	}
	b.logger.Info("build: finished",
		slog.Int("documents", len(docs)),
		slog.Int("assets", len(assets)),
		slog.Duration("duration", res.Duration))
	return res, nil
}

// convertAll converts and writes every document. Conversions may run in
// parallel, but docs[i] always corresponds to files[i], so the index sees
// the same order as a sequential run.
func (b *Builder) convertAll(ctx context.Context, files []models.SourceFile) ([]models.Document, error) {
	docs := make([]models.Document, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := b.convertOne(f)
			if err != nil {
				return err
			}
			if err := b.output.Write(doc.OutputName(OutputSuffix), []byte(doc.Body)); err != nil {
				return err
			}
			b.logger.Debug("build: wrote document", slog.String("slug", doc.Slug))
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// convertOne reads, parses, and converts a single source file.
func (b *Builder) convertOne(f models.SourceFile) (models.Document, error) {
	raw, err := b.source.Read(f.Name)
	if err != nil {
		return models.Document{}, err
	}

	meta, body, err := b.meta.Parse(raw)
	if err != nil {
		return models.Document{}, fmt.Errorf("site: %s: %w", f.Name, err)
	}

	html, err := b.conv.Convert(body)
	if err != nil {
		return models.Document{}, fmt.Errorf("site: %s: %w", f.Name, err)
	}

	doc := models.Document{
		Slug:       f.Slug,
		Title:      metadata.First(meta, "title"),
		Body:       template.HTML(html),
		Meta:       meta,
		SourcePath: f.Name,
		Checksum:   checksum.Sum(raw),
	}

	if rawDate := metadata.First(meta, "date"); rawDate != "" {
		t, err := dates.Normalize(rawDate)
		switch {
		case err == nil:
			doc.Date = &t
		case b.opts.DateErrors == DateWarn:
			b.logger.Warn("build: dropping unparsable date",
				slog.String("document", f.Name),
				slog.String("date", rawDate))
		default:
			return models.Document{}, fmt.Errorf("site: %s: %w", f.Name, err)
		}
	}

	return doc, nil
}
