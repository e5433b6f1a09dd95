package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	changed bool
}

// buildStyledRunes styles one ladder word. changed is the position that
// differs from the previous word, or -1 for the first word.
func buildStyledRunes(word string, changed int, selected bool) []styledRune {
	runes := []rune(word)
	out := make([]styledRune, 0, len(runes))
	for i, r := range runes {
		style := wordStyle
		if i == changed {
			style = changedStyle
		}
		if selected {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			changed: i == changed,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

// padStyled right-pads a rendered line to width display cells.
func padStyled(line []styledRune, width int) string {
	rendered := renderStyledRunes(line)
	if pad := width - lineWidthOf(line); pad > 0 {
		rendered += strings.Repeat(" ", pad)
	}
	return rendered
}
