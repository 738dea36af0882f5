package toolbar

import "slices"

// Live is the host's mutable toolbar for the current render.
type Live interface {
	// Nodes lists the current nodes in host order.
	Nodes() []RawNode
	// RemoveNode removes id and reports whether it was present.
	RemoveNode(id string) bool
}

// Bar is an in-memory Live toolbar. Removing a node removes its whole
// subtree, as the host does when it drops a node before rendering.
type Bar struct {
	nodes []RawNode
}

// NewBar copies nodes into a new Bar.
func NewBar(nodes []RawNode) *Bar {
	return &Bar{nodes: slices.Clone(nodes)}
}

func (b *Bar) Nodes() []RawNode {
	if b == nil {
		return nil
	}
	return slices.Clone(b.nodes)
}

func (b *Bar) Contains(id string) bool {
	if b == nil {
		return false
	}
	return slices.ContainsFunc(b.nodes, func(n RawNode) bool { return n.ID == id })
}

func (b *Bar) RemoveNode(id string) bool {
	if !b.Contains(id) {
		return false
	}
	doomed := map[string]bool{id: true}
	for grew := true; grew; {
		grew = false
		for _, n := range b.nodes {
			if !doomed[n.ID] && doomed[n.Parent] {
				doomed[n.ID] = true
				grew = true
			}
		}
	}
	b.nodes = slices.DeleteFunc(b.nodes, func(n RawNode) bool { return doomed[n.ID] })
	return true
}
