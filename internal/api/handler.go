package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/config"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/metrics"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/render"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

const maxBodyBytes = 1 << 20

// Handler holds all HTTP handler dependencies.
type Handler struct {
	svc    *render.Service
	mgr    *settings.Manager
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes. loader may be nil,
// in which case config reload is unavailable.
func New(svc *render.Service, mgr *settings.Manager, loader *config.Loader) http.Handler {
	h := &Handler{svc: svc, mgr: mgr, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/settings", h.saveSettings)
	h.mux.HandleFunc("GET /v1/settings", h.loadSettings)
	h.mux.HandleFunc("DELETE /v1/settings", h.resetSettings)
	h.mux.HandleFunc("GET /v1/tabs", h.listTabs)
	h.mux.HandleFunc("POST /v1/tabs/{tab}/outline", h.outline)
	h.mux.HandleFunc("POST /v1/tabs/{tab}/render", h.render)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/settings: settings form submission; checked boxes are hidden.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid form: %s", err))
		return
	}
	tab, err := settings.ParseTab(r.PostForm.Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scope, err := settings.ScopeFrom(tab, r.PostForm.Get("selected_role"), r.PostForm.Get("selected_user"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ex := settings.ParseSubmission(tab, r.PostForm)
	if err := h.mgr.Save(r.Context(), scope, ex); err != nil {
		slog.Error("save settings failed", "scope", scope.String(), "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	metrics.SettingsSaved.WithLabelValues(string(tab), string(scope.Kind)).Inc()
	slog.Info("settings saved", "scope", scope.String(), "hidden", len(ex))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings_updated": true,
		"tab":              tab,
		"scope":            scope,
		"hidden":           ex.HiddenIDs(),
	})
}

// GET /v1/settings?tab=&role=|user=: stored exclusion mapping for a scope.
func (h *Handler) loadSettings(w http.ResponseWriter, r *http.Request) {
	scope, ok := queryScope(w, r)
	if !ok {
		return
	}
	ex, err := h.mgr.Load(r.Context(), scope)
	if err != nil {
		slog.Error("load settings failed", "scope", scope.String(), "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

// DELETE /v1/settings?tab=&role=|user=: drop a scope's stored settings.
func (h *Handler) resetSettings(w http.ResponseWriter, r *http.Request) {
	scope, ok := queryScope(w, r)
	if !ok {
		return
	}
	if err := h.mgr.Reset(r.Context(), scope); err != nil {
		slog.Error("reset settings failed", "scope", scope.String(), "err", err)
		writeError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryScope(w http.ResponseWriter, r *http.Request) (settings.Scope, bool) {
	q := r.URL.Query()
	tab, err := settings.ParseTab(q.Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return settings.Scope{}, false
	}
	scope, err := settings.ScopeFrom(tab, q.Get("role"), q.Get("user"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return settings.Scope{}, false
	}
	return scope, true
}

// GET /v1/tabs: registered tab discriminators.
func (h *Handler) listTabs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tabs": h.svc.Tabs()})
}

// POST /v1/tabs/{tab}/outline: reconstructed tree for the settings screen.
func (h *Handler) outline(w http.ResponseWriter, r *http.Request) {
	tab := settings.Tab(r.PathValue("tab"))
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read body: %s", err))
		return
	}
	out, err := h.svc.Outline(tab, json.RawMessage(body))
	if err != nil {
		writeRenderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tab": tab, "items": out})
}

// POST /v1/tabs/{tab}/render: prune a live structure for a viewer.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	tab := settings.Tab(r.PathValue("tab"))
	var req render.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	res, err := h.svc.Render(r.Context(), tab, req)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeRenderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settings.ErrUnknownTab):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, render.ErrInvalidStructure):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("render failed", "err", err)
		writeError(w, http.StatusInternalServerError, "render failed")
	}
}

// POST /v1/config/reload: re-read the config file from disk.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		writeError(w, http.StatusServiceUnavailable, "config reload unavailable")
		return
	}
	cfg, err := h.loader.Reload()
	if errors.Is(err, config.ErrInvalid) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"path":     h.loader.Path(),
		"version":  cfg.Version,
	})
}

// GET /healthz: always 200 (liveness check).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 if the settings store is unreachable.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.mgr.Store().(settings.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
