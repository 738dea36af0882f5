package toolbar_test

import (
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/toolbar"
)

// forest draws an acyclic flat node list in shuffled order. Node 0 is
// sometimes the menu toggle.
func forest(t *rapid.T) []toolbar.RawNode {
	n := rapid.IntRange(1, 40).Draw(t, "n")
	titles := []string{"", "Title", "<span></span>", "<b>Bold</b>"}
	nodes := make([]toolbar.RawNode, n)
	for i := range nodes {
		id := fmt.Sprintf("n%d", i)
		if i == 0 && rapid.Bool().Draw(t, "toggle") {
			id = toolbar.ToggleID
		}
		parent := ""
		if p := rapid.IntRange(-1, i-1).Draw(t, fmt.Sprintf("parent%d", i)); p >= 0 {
			parent = nodes[p].ID
		}
		nodes[i] = toolbar.RawNode{
			ID:     id,
			Parent: parent,
			Title:  rapid.SampledFrom(titles).Draw(t, fmt.Sprintf("title%d", i)),
		}
	}
	return rapid.Permutation(nodes).Draw(t, "order")
}

func exclusions(t *rapid.T, nodes []toolbar.RawNode) settings.Exclusions {
	ex := settings.Exclusions{}
	for _, n := range nodes {
		if rapid.Bool().Draw(t, "hide-"+n.ID) {
			ex[n.ID] = true
		}
	}
	return ex
}

func TestProperty_DepthSortPlacesParentsFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sorted := toolbar.SortByDepth(forest(t))
		seen := map[string]bool{}
		for _, n := range sorted {
			if n.Parent != "" && !seen[n.Parent] {
				t.Fatalf("node %s precedes its parent %s", n.ID, n.Parent)
			}
			seen[n.ID] = true
		}
	})
}

func TestProperty_TreeShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := toolbar.Build(forest(t), toolbar.DefaultOptions())
		for _, r := range tr.Roots {
			if r.Parent != "" {
				t.Fatalf("root %s has parent %q", r.ID, r.Parent)
			}
		}
		tr.Walk(func(n *toolbar.Node) bool {
			if n.ID == toolbar.ToggleID {
				t.Fatalf("toggle node present in tree")
			}
			if n.Title == "" {
				t.Fatalf("title-less node %s present in tree", n.ID)
			}
			for _, c := range n.Children {
				if c.Parent != n.ID {
					t.Fatalf("child %s of %s has parent %q", c.ID, n.ID, c.Parent)
				}
			}
			return true
		})
	})
}

func TestProperty_PruneIdempotentAndComplete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nodes := forest(t)
		ex := exclusions(t, nodes)

		live := toolbar.NewBar(nodes)
		eng := toolbar.New(toolbar.DefaultOptions())
		tr := eng.Snapshot(live)

		eng.Prune(live, ex)
		once := live.Nodes()

		tr.Walk(func(n *toolbar.Node) bool {
			if ex.Hidden(n.ID) && live.Contains(n.ID) {
				t.Fatalf("hidden node %s still present", n.ID)
			}
			return true
		})

		eng.Prune(live, ex)
		if !reflect.DeepEqual(once, live.Nodes()) {
			t.Fatalf("second prune changed the toolbar")
		}
	})
}
