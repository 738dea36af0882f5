package settings

import "sort"

// Exclusions maps a node id to its hidden flag.
type Exclusions map[string]bool

// Hidden reports whether id is marked hidden. A nil set hides nothing.
func (e Exclusions) Hidden(id string) bool {
	return e[id]
}

// Empty reports whether no id is marked hidden.
func (e Exclusions) Empty() bool {
	for _, hidden := range e {
		if hidden {
			return false
		}
	}
	return true
}

// HiddenIDs returns the hidden ids in lexical order.
func (e Exclusions) HiddenIDs() []string {
	ids := make([]string, 0, len(e))
	for id, hidden := range e {
		if hidden {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
