// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/manifest"
	"github.com/starford/dagaz/internal/mcpserver"
	"github.com/starford/dagaz/internal/metadata"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/server"
	"github.com/starford/dagaz/internal/site"
	"github.com/starford/dagaz/internal/sse"
	"github.com/starford/dagaz/internal/storage"
)

// env is the wired runtime: everything the commands operate on.
type env struct {
	cfg     *Config
	logger  *slog.Logger
	builder *site.Builder
	source  storage.Provider
	man     *manifest.Store // nil when disabled
}

func newEnv(opts ...Option) (*env, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := app.logger
	if logger == nil {
		// Diagnostics go to stderr; stdout stays clean for the MCP transport.
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
	}

	logger.Info("configuration loaded",
		slog.String("source_dir", cfg.Site.SourceDir),
		slog.String("output_dir", cfg.Site.OutputDir),
		slog.String("metadata", cfg.Site.Metadata),
		slog.String("log_level", cfg.App.LogLevel.String()))

	source, err := storage.NewFS(cfg.Site.SourceDir, false)
	if err != nil {
		return nil, fmt.Errorf("init source dir: %w", err)
	}
	static, err := storage.NewFS(cfg.Site.StaticDir, false)
	if err != nil {
		return nil, fmt.Errorf("init static dir: %w", err)
	}
	output, err := storage.NewFS(cfg.Site.OutputDir, true)
	if err != nil {
		return nil, fmt.Errorf("init output dir: %w", err)
	}

	metaParser, err := metadata.ForDialect(cfg.Site.Metadata)
	if err != nil {
		return nil, err
	}

	builder := site.NewBuilder(source, static, output, cfg.Site.TemplatesDir, metaParser, logger, site.Options{
		IndexTemplate: cfg.Site.IndexTemplate,
		DateErrors:    cfg.Site.DateErrors,
		Workers:       cfg.Site.Workers,
	})

	e := &env{cfg: cfg, logger: logger, builder: builder, source: source}

	if cfg.Manifest.Path != "" {
		man, err := manifest.Open(cfg.Manifest.Path)
		if err != nil {
			return nil, fmt.Errorf("init manifest: %w", err)
		}
		e.man = man
	}

	return e, nil
}

func (e *env) close() {
	if e.man != nil {
		_ = e.man.Close()
	}
}

// build runs the pipeline once and records the outcome in the manifest.
func (e *env) build(ctx context.Context) error {
	res, err := e.builder.Build(ctx)
	if err != nil {
		if e.man != nil {
			failed := &models.BuildResult{StartedAt: time.Now()}
			if _, recErr := e.man.RecordBuild(failed, manifest.StatusFailed); recErr != nil {
				e.logger.Warn("manifest: record failed build", slog.String("error", recErr.Error()))
			}
		}
		return err
	}
	if e.man != nil {
		if _, recErr := e.man.RecordBuild(res, manifest.StatusOK); recErr != nil {
			e.logger.Warn("manifest: record build", slog.String("error", recErr.Error()))
		}
	}
	return nil
}

// Run executes a single build and exits.
func Run(ctx context.Context, opts ...Option) error {
	e, err := newEnv(opts...)
	if err != nil {
		return err
	}
	defer e.close()
	return e.build(ctx)
}

// RunServe builds the site, then serves the output over HTTP while watching
// the source tree. Every change triggers a debounced full rebuild.
func RunServe(ctx context.Context, opts ...Option) error {
	e, err := newEnv(opts...)
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.build(ctx); err != nil {
		return err
	}

	broker := sse.NewBroker()
	defer broker.Close()

	// Rebuilds can come from the watcher and from POST /api/rebuild;
	// serialize them so runs never interleave.
	var buildMu sync.Mutex
	rebuild := func() error {
		buildMu.Lock()
		defer buildMu.Unlock()
		broker.PublishBuild(sse.EventBuildStarted, nil)
		if err := e.build(ctx); err != nil {
			e.logger.Error("rebuild failed", slog.String("error", err.Error()))
			broker.PublishBuild(sse.EventBuildFailed, map[string]string{"error": err.Error()})
			return err
		}
		broker.PublishBuild(sse.EventBuildFinished, nil)
		return nil
	}

	router := server.NewRouter(server.Deps{
		OutputDir: e.cfg.Site.OutputDir,
		Manifest:  e.man,
		Broker:    broker,
		Rebuild:   rebuild,
	})

	httpServer := &http.Server{
		Addr:    e.cfg.Server.HTTP.Address(),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dirs := []string{e.cfg.Site.SourceDir, e.cfg.Site.TemplatesDir, e.cfg.Site.StaticDir}
		return server.Watch(gCtx, dirs, 200*time.Millisecond, e.logger, func() {
			// Watcher-driven rebuild failures are logged, not fatal:
			// the author fixes the file and saves again.
			_ = rebuild()
		})
	})

	g.Go(func() error {
		e.logger.Info("preview server starting", slog.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			e.logger.Info("received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			e.logger.Error("http shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	e.logger.Info("preview server stopped")
	return nil
}

// RunMCP serves Dagaz tools over MCP stdio transport.
func RunMCP(ctx context.Context, opts ...Option) error {
	e, err := newEnv(opts...)
	if err != nil {
		return err
	}
	defer e.close()

	srv := mcpserver.New(e.builder, e.source, e.man)
	e.logger.Info("mcp server starting on stdio")
	return srv.ServeStdio()
}
