package ladder

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Lexicon is the read-only word set a search runs against.
type Lexicon interface {
	Contains(word string) bool
}

// Result is the outcome of FindPath. A search that exhausts the frontier is
// a normal outcome reported with Found == false, not an error.
type Result struct {
	// Path holds the ladder from start to goal inclusive when Found.
	Path []string
	// Found reports whether a ladder exists.
	Found bool
	// Expanded counts words dequeued and expanded.
	Expanded int
	// Enqueued counts words ever placed on the frontier, the start included.
	Enqueued int
}

// Steps returns the number of single-letter changes in the ladder.
func (r Result) Steps() int {
	if !r.Found {
		return 0
	}
	return len(r.Path) - 1
}

// walker holds the mutable state of one search.
type walker struct {
	words    Lexicon
	goal     string
	arena    arena
	queue    []int
	visited  map[key]struct{}
	explored map[key]struct{}
	res      Result
}

// FindPath returns a shortest ladder from start to goal through words.
//
// The caller is expected to check that start is in words. goal needs no
// check: a goal missing from words can never be generated and the search
// ends with Found == false once the frontier is exhausted.
func FindPath(start, goal string, words Lexicon) Result {
	if start == goal {
		return Result{Path: []string{start}, Found: true}
	}

	w := &walker{
		words:    words,
		goal:     goal,
		visited:  map[key]struct{}{key(start): {}},
		explored: map[key]struct{}{},
	}
	w.enqueue(w.arena.add(start, noParent))
	w.loop()
	return w.res
}

func (w *walker) enqueue(idx int) {
	w.queue = append(w.queue, idx)
	w.res.Enqueued++
}

func (w *walker) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	return idx
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		idx := w.dequeue()
		w.explored[key(w.arena.nodes[idx].word)] = struct{}{}
		w.res.Expanded++
		if w.expand(idx) {
			return
		}
	}
}

// expand generates the neighbors of the node at idx and reports whether the
// goal was reached.
func (w *walker) expand(idx int) bool {
	word := w.arena.nodes[idx].word
	for _, sp := range spans(word) {
		prefix, suffix := word[:sp.start], word[sp.end:]
		for i := 0; i < len(alphabet); i++ {
			candidate := prefix + alphabet[i:i+1] + suffix
			if !w.discover(candidate) {
				continue
			}
			child := w.arena.add(candidate, idx)
			if candidate == w.goal {
				w.res.Path = w.arena.path(child)
				w.res.Found = true
				return true
			}
			w.enqueue(child)
		}
	}
	return false
}

// discover marks candidate visited and reports true when it is a dictionary
// word not seen before.
func (w *walker) discover(candidate string) bool {
	if !w.words.Contains(candidate) {
		return false
	}
	k := key(candidate)
	if _, ok := w.explored[k]; ok {
		return false
	}
	if _, ok := w.visited[k]; ok {
		return false
	}
	w.visited[k] = struct{}{}
	return true
}
