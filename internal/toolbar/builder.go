package toolbar

import "github.com/gyaneshwarpardhi/simplifyadmin/internal/sanitize"

// Build reconstructs the toolbar forest from a flat, parent-referencing list.
//
// Reconstruction runs in two phases. grow attaches every reachable node to
// its parent, in depth-sorted order. splice then removes title-less nodes
// bottom-up and hands their children to the grandparent, at the position the
// removed node held. Nodes whose parent is not in the list, and nodes in
// parent cycles, are unreachable from a root and are dropped.
func Build(nodes []RawNode, opts Options) *Tree {
	skip := make(map[string]struct{}, len(opts.Skip))
	for _, id := range opts.Skip {
		skip[id] = struct{}{}
	}

	children := make(map[string][]RawNode)
	for _, n := range SortByDepth(nodes) {
		if n.ID == "" {
			continue
		}
		if _, ok := skip[n.ID]; ok {
			continue
		}
		children[n.Parent] = append(children[n.Parent], n)
	}

	placed := make(map[string]bool, len(nodes))
	roots := grow(children, "", placed, opts.Titles)
	return &Tree{Roots: splice(roots, "")}
}

// grow builds the full child list of parent. Each id is placed at most once.
func grow(children map[string][]RawNode, parent string, placed map[string]bool, titles map[string]string) []*Node {
	var out []*Node
	for _, rn := range children[parent] {
		if placed[rn.ID] {
			continue
		}
		placed[rn.ID] = true
		n := &Node{
			ID:     rn.ID,
			Parent: rn.Parent,
			Title:  resolveTitle(rn, titles),
		}
		n.Children = grow(children, rn.ID, placed, titles)
		out = append(out, n)
	}
	return out
}

// splice drops title-less nodes from level, re-parenting their (already
// spliced) children onto parent.
func splice(level []*Node, parent string) []*Node {
	out := make([]*Node, 0, len(level))
	for _, n := range level {
		n.Children = splice(n.Children, n.ID)
		if n.Title != "" {
			out = append(out, n)
			continue
		}
		for _, c := range n.Children {
			c.Parent = parent
			out = append(out, c)
		}
	}
	return out
}

func resolveTitle(n RawNode, titles map[string]string) string {
	if t, ok := titles[n.ID]; ok && t != "" {
		return t
	}
	return sanitize.StripTags(n.Title)
}
