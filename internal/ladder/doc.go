// Package ladder finds shortest word ladders: sequences of dictionary words
// where each consecutive pair differs at exactly one character position.
//
// The search is a breadth-first walk over the implicit graph whose vertices
// are dictionary words. Neighbors of a word are generated by substituting each
// position, left to right, with the letters a through z in order. Together
// with the FIFO frontier this fixes which of several equally short ladders is
// returned, so results are reproducible for a given dictionary.
package ladder
