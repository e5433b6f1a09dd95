package ladder

// key is the set-membership identity of a node: its word alone, regardless
// of the path that discovered it.
type key string

// noParent marks the root node of a search.
const noParent = -1

// node is a discovered word plus the arena index of the node it was
// generated from. A parent is always created before its children, so
// following parent links strictly decreases the index and terminates.
type node struct {
	word   string
	parent int
}

// arena owns every node created during one search.
type arena struct {
	nodes []node
}

func (a *arena) add(word string, parent int) int {
	a.nodes = append(a.nodes, node{word: word, parent: parent})
	return len(a.nodes) - 1
}

// path walks parent links from idx back to the root and returns the words
// root first.
func (a *arena) path(idx int) []string {
	var reversed []string
	for i := idx; i != noParent; i = a.nodes[i].parent {
		reversed = append(reversed, a.nodes[i].word)
	}
	out := make([]string, len(reversed))
	for i, word := range reversed {
		out[len(reversed)-1-i] = word
	}
	return out
}
