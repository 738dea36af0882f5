// Package render runs the snapshot, reconstruct and prune pipeline for each
// admin tab against a live structure supplied by the host.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	json "github.com/goccy/go-json"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/menu"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/toolbar"
)

// ErrInvalidStructure is returned when a live structure cannot be decoded.
var ErrInvalidStructure = errors.New("invalid structure")

// Outcome is the result of applying an exclusion set to one live structure.
type Outcome struct {
	Structure any `json:"structure"`
	Removed   int `json:"removed"`
	TreeNodes int `json:"tree_nodes"`
}

// Renderer is the interface every tab implementation must satisfy.
type Renderer interface {
	// Tab returns the discriminator this renderer is registered under.
	Tab() settings.Tab
	// Outline reconstructs structure for the settings screen.
	Outline(structure json.RawMessage) (any, error)
	// Apply snapshots structure, then removes the hidden entries from it.
	Apply(structure json.RawMessage, ex settings.Exclusions) (*Outcome, error)
}

func absent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// ToolbarRenderer handles the "admin-bar" tab. Its structure is the flat
// node list. Options can be swapped while requests are in flight.
type ToolbarRenderer struct {
	opts atomic.Pointer[toolbar.Options]
}

func NewToolbarRenderer(opts toolbar.Options) *ToolbarRenderer {
	r := &ToolbarRenderer{}
	r.SetOptions(opts)
	return r
}

// SetOptions atomically replaces the reconstruction options.
func (r *ToolbarRenderer) SetOptions(opts toolbar.Options) {
	r.opts.Store(&opts)
}

func (r *ToolbarRenderer) Tab() settings.Tab { return settings.TabToolbar }

func (r *ToolbarRenderer) live(raw json.RawMessage) (*toolbar.Bar, error) {
	if absent(raw) {
		return nil, nil
	}
	var nodes []toolbar.RawNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return nil, fmt.Errorf("%w: toolbar nodes: %v", ErrInvalidStructure, err)
	}
	return toolbar.NewBar(nodes), nil
}

func (r *ToolbarRenderer) Outline(raw json.RawMessage) (any, error) {
	bar, err := r.live(raw)
	if err != nil {
		return nil, err
	}
	eng := toolbar.New(*r.opts.Load())
	return eng.Snapshot(liveOrNil(bar)), nil
}

func (r *ToolbarRenderer) Apply(raw json.RawMessage, ex settings.Exclusions) (*Outcome, error) {
	bar, err := r.live(raw)
	if err != nil {
		return nil, err
	}
	eng := toolbar.New(*r.opts.Load())
	tree := eng.Snapshot(liveOrNil(bar))
	removed := eng.Prune(liveOrNil(bar), ex)
	nodes := bar.Nodes()
	if nodes == nil {
		nodes = []toolbar.RawNode{}
	}
	return &Outcome{Structure: nodes, Removed: removed, TreeNodes: tree.Len()}, nil
}

// liveOrNil keeps a missing toolbar a nil interface.
func liveOrNil(b *toolbar.Bar) toolbar.Live {
	if b == nil {
		return nil
	}
	return b
}

// MenuRenderer handles the "menu-items" tab. Its structure is a menu.Menu.
type MenuRenderer struct{}

func NewMenuRenderer() *MenuRenderer { return &MenuRenderer{} }

func (r *MenuRenderer) Tab() settings.Tab { return settings.TabMenu }

func (r *MenuRenderer) live(raw json.RawMessage) (*menu.Menu, error) {
	if absent(raw) {
		return nil, nil
	}
	var m menu.Menu
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: menu: %v", ErrInvalidStructure, err)
	}
	return &m, nil
}

func (r *MenuRenderer) Outline(raw json.RawMessage) (any, error) {
	m, err := r.live(raw)
	if err != nil {
		return nil, err
	}
	eng := menu.New()
	eng.Snapshot(m)
	return eng.Items(), nil
}

func (r *MenuRenderer) Apply(raw json.RawMessage, ex settings.Exclusions) (*Outcome, error) {
	m, err := r.live(raw)
	if err != nil {
		return nil, err
	}
	eng := menu.New()
	eng.Snapshot(m)
	removed := eng.Prune(m, ex)
	if m == nil {
		m = &menu.Menu{Top: menu.Group{}}
	}
	return &Outcome{Structure: m, Removed: removed, TreeNodes: countItems(eng.Items())}, nil
}

func countItems(items []menu.Item) int {
	n := 0
	for _, it := range items {
		n += 1 + len(it.Submenu)
	}
	return n
}
