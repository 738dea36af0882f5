package toolbar

import "slices"

// SortByDepth returns a copy of nodes stably ordered by ancestor depth, so
// every parent precedes its children. Nodes of equal depth keep their
// relative order.
func SortByDepth(nodes []RawNode) []RawNode {
	byID := make(map[string]RawNode, len(nodes))
	for _, n := range nodes {
		if _, dup := byID[n.ID]; !dup {
			byID[n.ID] = n
		}
	}

	depths := make(map[string]int, len(nodes))
	for _, n := range nodes {
		depths[n.ID] = depth(n, byID)
	}

	out := slices.Clone(nodes)
	slices.SortStableFunc(out, func(a, b RawNode) int {
		return depths[a.ID] - depths[b.ID]
	})
	return out
}

// depth counts parent links above n. A parent missing from the list ends the
// walk, and the walk never takes more steps than there are nodes, so broken
// or cyclic chains terminate.
func depth(n RawNode, byID map[string]RawNode) int {
	d := 0
	parent := n.Parent
	for parent != "" && d <= len(byID) {
		d++
		p, ok := byID[parent]
		if !ok {
			break
		}
		parent = p.Parent
	}
	return d
}
