// Package server implements the preview HTTP server: it serves the build
// output, exposes a small JSON API over the build manifest, and streams
// live-reload events over SSE.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/starford/dagaz/internal/manifest"
	"github.com/starford/dagaz/internal/sse"
)

// Deps carries everything the router needs.
type Deps struct {
	OutputDir string
	Manifest  *manifest.Store // nil when manifest recording is disabled
	Broker    *sse.Broker
	Rebuild   func() error // triggers a full rebuild; nil disables the endpoint
}

// NewRouter builds the chi router for the preview server.
func NewRouter(deps Deps) chi.Router {
	h := &handler{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", health)
	r.Get("/health/ready", health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/documents", h.listDocuments)
		r.Get("/builds", h.listBuilds)
		r.Post("/rebuild", h.rebuild)
		if deps.Broker != nil {
			r.Get("/events", deps.Broker.ServeHTTP)
		}
	})

	// Everything else is the generated site itself.
	r.Handle("/*", http.FileServer(http.Dir(deps.OutputDir)))

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
