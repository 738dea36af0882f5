// Package menu snapshots the two-level admin menu and removes hidden entries
// from it.
package menu

import (
	"maps"
	"slices"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/sanitize"
)

// Entry is one menu or submenu row. Slug is the host's raw identifier source
// (usually the page file or hook name); rows without one are separators.
type Entry struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Capability string `json:"capability,omitempty"`
}

// Group maps the host's numeric position to an entry. Positions need not be
// contiguous.
type Group map[int]Entry

// Positions returns the group's positions in ascending order.
func (g Group) Positions() []int {
	return slices.Sorted(maps.Keys(g))
}

// Menu is the host's live menu: top-level entries plus submenu groups keyed
// by the parent's raw slug.
type Menu struct {
	Top     Group            `json:"top"`
	Submenu map[string]Group `json:"submenu,omitempty"`
}

// Clone returns a deep copy of m.
func (m *Menu) Clone() *Menu {
	if m == nil {
		return nil
	}
	out := &Menu{Top: maps.Clone(m.Top)}
	if m.Submenu != nil {
		out.Submenu = make(map[string]Group, len(m.Submenu))
		for parent, g := range m.Submenu {
			out.Submenu[parent] = maps.Clone(g)
		}
	}
	return out
}

// ID derives the id of a top-level entry from its raw slug.
func ID(slug string) string {
	return sanitize.Slug(slug)
}

// SubmenuID derives the id of a submenu entry. The parent's id is part of it,
// so equal slugs under different parents stay distinct.
func SubmenuID(parentSlug, slug string) string {
	return ID(parentSlug) + "-" + ID(slug)
}

// Item is a menu entry as presented to the settings screen.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Submenu []Item `json:"submenu,omitempty"`
}
