package toolbar

// ToggleID is the responsive-menu toggle; it carries no content and is never
// part of a reconstructed tree.
const ToggleID = "menu-toggle"

// DefaultTitles relabels well-known nodes whose host titles are mostly
// markup (counters, avatars, icons).
var DefaultTitles = map[string]string{
	"updates":        "Updates",
	"comments":       "Comments",
	"my-account":     "My account",
	"litespeed-menu": "Litespeed Menu",
}

// RawNode is one entry of the host's flat toolbar list. An empty Parent
// marks a root.
type RawNode struct {
	ID     string `json:"id"`
	Parent string `json:"parent,omitempty"`
	Title  string `json:"title"`
}

// Node is a reconstructed toolbar entry. Title is plain text and never empty.
type Node struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Parent   string  `json:"parent,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Options tune reconstruction.
type Options struct {
	// Titles overrides the display title of the listed ids.
	Titles map[string]string
	// Skip lists ids that are dropped with their whole subtree.
	Skip []string
}

// DefaultOptions relabels DefaultTitles and skips ToggleID.
func DefaultOptions() Options {
	titles := make(map[string]string, len(DefaultTitles))
	for id, title := range DefaultTitles {
		titles[id] = title
	}
	return Options{Titles: titles, Skip: []string{ToggleID}}
}
