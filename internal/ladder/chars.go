package ladder

import "unicode/utf8"

// span is the byte range of one character within a word. A byte that is not
// valid UTF-8 counts as a character of its own.
type span struct {
	start, end int
}

func spans(word string) []span {
	out := make([]span, 0, len(word))
	for i := 0; i < len(word); {
		_, size := utf8.DecodeRuneInString(word[i:])
		out = append(out, span{start: i, end: i + size})
		i += size
	}
	return out
}
