// Package dictionary loads word lists into an immutable lookup set.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dictionary is a set of normalized words. It is never mutated after loading.
type Dictionary struct {
	words map[string]struct{}
}

// Load reads one word per line from the provided file path.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()

	dict, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Read builds a Dictionary from r. Each line loses its trailing line
// terminator and is lowercased; any other whitespace is kept as-is.
func Read(r io.Reader) (*Dictionary, error) {
	dict := &Dictionary{words: map[string]struct{}{}}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			dict.add(line)
		}
		if errors.Is(err, io.EOF) {
			return dict, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// New builds a Dictionary from already split words, applying the same
// normalization as Read.
func New(words ...string) *Dictionary {
	dict := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		dict.add(word)
	}
	return dict
}

func (d *Dictionary) add(line string) {
	word := lower(strings.TrimRight(line, "\r\n"))
	d.words[word] = struct{}{}
}

// lower lowercases the valid runes of s and copies invalid UTF-8 bytes
// through unchanged.
func lower(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of unique words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns every word in sorted order.
func (d *Dictionary) Words() []string {
	return d.Filter(nil)
}

// Filter returns the sorted words accepted by keep. A nil keep accepts all.
func (d *Dictionary) Filter(keep FilterFunc) []string {
	out := make([]string, 0, len(d.words))
	for word := range d.words {
		if keep == nil || keep(word) {
			out = append(out, word)
		}
	}
	sort.Strings(out)
	return out
}
