package toolbar

// Tree is a reconstructed toolbar forest. It is derived data: rebuild it from
// a fresh snapshot every render instead of mutating it.
type Tree struct {
	Roots []*Node `json:"roots"`
}

// Find returns the node with id, or nil. The current level is checked before
// descending into each child subtree in order.
func (t *Tree) Find(id string) *Node {
	if t == nil {
		return nil
	}
	return find(t.Roots, id)
}

func find(level []*Node, id string) *Node {
	for _, n := range level {
		if n.ID == id {
			return n
		}
	}
	for _, n := range level {
		if found := find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t == nil {
		return
	}
	walk(t.Roots, fn)
}

func walk(level []*Node, fn func(n *Node) bool) {
	for _, n := range level {
		if fn(n) {
			walk(n.Children, fn)
		}
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// RootIDs returns the ids of the top-level nodes.
func (t *Tree) RootIDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, len(t.Roots))
	for i, n := range t.Roots {
		ids[i] = n.ID
	}
	return ids
}
