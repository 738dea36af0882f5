package render

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/identity"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/metrics"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

// Request is one render cycle: who is viewing, and the live structure the
// host is about to display.
type Request struct {
	Identity  identity.Identity `json:"identity"`
	Structure json.RawMessage   `json:"structure"`
}

// Result is the outcome of a render cycle.
type Result struct {
	Tab        settings.Tab  `json:"tab"`
	Scope      settings.Kind `json:"scope,omitempty"`
	Removed    int           `json:"removed"`
	TreeNodes  int           `json:"tree_nodes"`
	DurationMs float64       `json:"duration_ms"`
	Structure  any           `json:"structure"`
}

// Service resolves the viewer's exclusion set and runs the tab's renderer.
type Service struct {
	registry *Registry
	settings *settings.Manager
}

func NewService(registry *Registry, mgr *settings.Manager) *Service {
	return &Service{registry: registry, settings: mgr}
}

// Tabs lists the registered tabs.
func (s *Service) Tabs() []settings.Tab { return s.registry.Tabs() }

// Outline reconstructs structure for the settings screen of tab.
func (s *Service) Outline(tab settings.Tab, structure json.RawMessage) (any, error) {
	rd, err := s.registry.Get(tab)
	if err != nil {
		return nil, err
	}
	return rd.Outline(structure)
}

// Render snapshots req.Structure, resolves the viewer's exclusions and
// prunes the structure. Without roles or stored settings the structure is
// returned unchanged.
func (s *Service) Render(ctx context.Context, tab settings.Tab, req Request) (*Result, error) {
	rd, err := s.registry.Get(tab)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	ex, kind, err := s.settings.Effective(ctx, tab, req.Identity)
	if err != nil {
		return nil, err
	}

	out, err := rd.Apply(req.Structure, ex)
	if err != nil {
		return nil, err
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	metrics.SnapshotsTaken.WithLabelValues(string(tab)).Inc()
	metrics.TreeNodes.WithLabelValues(string(tab)).Set(float64(out.TreeNodes))
	metrics.NodesRemoved.WithLabelValues(string(tab)).Add(float64(out.Removed))
	metrics.RenderDuration.Observe(elapsed)
	if reason := skipReason(req.Identity, ex); reason != "" {
		metrics.RendersSkipped.WithLabelValues(string(tab), reason).Inc()
	}

	slog.Debug("render complete",
		"tab", tab,
		"user", req.Identity.ID,
		"scope", kind,
		"hidden", len(ex.HiddenIDs()),
		"removed", out.Removed,
		"duration_ms", elapsed,
	)

	return &Result{
		Tab:        tab,
		Scope:      kind,
		Removed:    out.Removed,
		TreeNodes:  out.TreeNodes,
		DurationMs: elapsed,
		Structure:  out.Structure,
	}, nil
}

func skipReason(who identity.Identity, ex settings.Exclusions) string {
	switch {
	case !who.HasRoles():
		return "no_roles"
	case ex.Empty():
		return "no_settings"
	}
	return ""
}
