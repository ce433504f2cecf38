package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

type handler struct {
	deps Deps
}

func (h *handler) listDocuments(w http.ResponseWriter, _ *http.Request) {
	if h.deps.Manifest == nil {
		writeJSON(w, http.StatusNotFound, errorBody("manifest disabled"))
		return
	}
	docs, err := h.deps.Manifest.LatestDocuments()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *handler) listBuilds(w http.ResponseWriter, r *http.Request) {
	if h.deps.Manifest == nil {
		writeJSON(w, http.StatusNotFound, errorBody("manifest disabled"))
		return
	}
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	builds, err := h.deps.Manifest.RecentBuilds(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"builds": builds})
}

func (h *handler) rebuild(w http.ResponseWriter, _ *http.Request) {
	if h.deps.Rebuild == nil {
		writeJSON(w, http.StatusNotFound, errorBody("rebuild disabled"))
		return
	}
	if err := h.deps.Rebuild(); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "rebuilt"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}
