package menu

import (
	"slices"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/sanitize"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

// Engine holds one render cycle's snapshot of the menu.
type Engine struct {
	snapshot *Menu
}

func New() *Engine { return &Engine{} }

// Snapshot copies live before any hiding. A nil menu snapshots as empty.
func (e *Engine) Snapshot(live *Menu) {
	if live == nil {
		e.snapshot = &Menu{}
		return
	}
	e.snapshot = live.Clone()
}

// Items lists the snapshot in position order with derived ids. Entries whose
// slug yields no id (separators, punctuation-only slugs) are skipped at both
// levels, and so are the submenus of skipped parents.
func (e *Engine) Items() []Item {
	if e.snapshot == nil {
		return nil
	}
	items := []Item{}
	for _, pos := range e.snapshot.Top.Positions() {
		entry := e.snapshot.Top[pos]
		id := ID(entry.Slug)
		if id == "" {
			continue
		}
		items = append(items, Item{
			ID:      id,
			Title:   sanitize.StripTags(entry.Title),
			Submenu: submenuItems(e.snapshot.Submenu[entry.Slug], entry.Slug),
		})
	}
	return items
}

func submenuItems(g Group, parentSlug string) []Item {
	var items []Item
	for _, pos := range g.Positions() {
		entry := g[pos]
		if ID(entry.Slug) == "" {
			continue
		}
		items = append(items, Item{
			ID:    SubmenuID(parentSlug, entry.Slug),
			Title: sanitize.StripTags(entry.Title),
		})
	}
	return items
}

// Prune deletes hidden entries from live in place. For each hidden id the
// first top-level entry with that id is removed, and in every submenu group
// the first entry with that composite id is removed. It returns the number
// of entries removed.
func (e *Engine) Prune(live *Menu, ex settings.Exclusions) int {
	if live == nil || ex.Empty() {
		return 0
	}
	removed := 0
	for _, id := range ex.HiddenIDs() {
		if removeFirst(live.Top, func(entry Entry) bool { return ID(entry.Slug) == id }) {
			removed++
		}
		parents := make([]string, 0, len(live.Submenu))
		for parent := range live.Submenu {
			if ID(parent) != "" {
				parents = append(parents, parent)
			}
		}
		slices.Sort(parents)
		for _, parent := range parents {
			match := func(entry Entry) bool { return SubmenuID(parent, entry.Slug) == id }
			if removeFirst(live.Submenu[parent], match) {
				removed++
			}
		}
	}
	return removed
}

// removeFirst deletes the lowest-positioned entry of g that matches. Entries
// without an id are never matched.
func removeFirst(g Group, match func(Entry) bool) bool {
	for _, pos := range g.Positions() {
		if entry := g[pos]; ID(entry.Slug) != "" && match(entry) {
			delete(g, pos)
			return true
		}
	}
	return false
}
