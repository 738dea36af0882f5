package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

// Registry maps tab discriminators to their renderers.
// It is safe for concurrent reads; Register should only be called at startup.
type Registry struct {
	mu        sync.RWMutex
	renderers map[settings.Tab]Renderer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[settings.Tab]Renderer)}
}

// Register adds a renderer. Panics on duplicate tab to surface misconfiguration early.
func (r *Registry) Register(rd Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[rd.Tab()]; exists {
		panic(fmt.Sprintf("render registry: duplicate tab %q", rd.Tab()))
	}
	r.renderers[rd.Tab()] = rd
}

// Get returns the renderer for the given tab.
func (r *Registry) Get(tab settings.Tab) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.renderers[tab]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer registered for %q", settings.ErrUnknownTab, tab)
	}
	return rd, nil
}

// Tabs returns all registered tabs in lexical order.
func (r *Registry) Tabs() []settings.Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]settings.Tab, 0, len(r.renderers))
	for k := range r.renderers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
