// Package toolbar reconstructs the admin toolbar from the host's flat node
// list and hides nodes from it according to an exclusion set.
package toolbar

import "github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"

// Engine holds one render cycle's snapshot. It is not safe for concurrent
// use; create one per render.
type Engine struct {
	opts Options
	tree *Tree
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Snapshot captures live before any hiding and caches the reconstructed
// tree. A nil live toolbar yields an empty tree.
func (e *Engine) Snapshot(live Live) *Tree {
	if live == nil {
		e.tree = &Tree{}
		return e.tree
	}
	e.tree = Build(live.Nodes(), e.opts)
	return e.tree
}

// Prune removes hidden nodes from live, starting at each snapshot root. A
// hidden node is removed together with its subtree and not descended into;
// otherwise its cached children are tried in turn. It returns the number of
// nodes removed directly.
func (e *Engine) Prune(live Live, ex settings.Exclusions) int {
	if live == nil || e.tree == nil || ex.Empty() {
		return 0
	}
	removed := 0
	for _, id := range e.tree.RootIDs() {
		removed += e.prune(live, id, ex)
	}
	return removed
}

func (e *Engine) prune(live Live, id string, ex settings.Exclusions) int {
	if ex.Hidden(id) {
		if live.RemoveNode(id) {
			return 1
		}
		return 0
	}
	n := e.tree.Find(id)
	if n == nil {
		return 0
	}
	removed := 0
	for _, c := range n.Children {
		removed += e.prune(live, c.ID, ex)
	}
	return removed
}
