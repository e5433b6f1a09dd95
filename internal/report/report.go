// Package report renders ladder search results and history as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/wordladder/internal/dictionary"
	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/model"
)

// NoPathMessage is printed when the search exhausts without reaching the goal.
const NoPathMessage = "None exists!"

// RenderUsage prints the command-line usage line.
func RenderUsage(w io.Writer, program string) error {
	_, err := fmt.Fprintf(w, "Usage: %s dictionaryFile startWord goalWord\n", program)
	return err
}

// RenderMissingStart reports a start word absent from the dictionary.
func RenderMissingStart(w io.Writer, start string) error {
	_, err := fmt.Fprintf(w, "%s is not in the given dictionary.\n", start)
	return err
}

// RenderLadder prints the banner followed by the ladder, one word per line,
// or NoPathMessage when no ladder exists.
func RenderLadder(w io.Writer, start, goal string, res ladder.Result) error {
	if _, err := fmt.Fprintf(w, "-- Shortest path from %s to %s --\n", start, goal); err != nil {
		return err
	}
	if !res.Found {
		_, err := fmt.Fprintln(w, NoPathMessage)
		return err
	}
	for _, word := range res.Path {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

// RenderDictionarySummary prints word totals and a per-length breakdown.
func RenderDictionarySummary(w io.Writer, dict *dictionary.Dictionary) error {
	alpha := len(dict.Filter(dictionary.Alphabetic))
	if _, err := fmt.Fprintf(w, "Words: %d\n", dict.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Alphabetic: %d\n", alpha); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	counts := dictionary.LengthCounts(dict)
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{strconv.Itoa(c.Length), strconv.Itoa(c.Count)})
	}
	return writeLines(w, formatTable([]string{"Length", "Words"}, rows, map[int]bool{0: true, 1: true}))
}

// RenderHistory prints past searches as a table.
func RenderHistory(w io.Writer, records []model.SearchRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No searches found.")
		return err
	}
	return writeLines(w, formatTable(HistoryHeaders(), HistoryRows(records), map[int]bool{0: true, 4: true, 5: true, 6: true}))
}

// HistoryHeaders returns the column titles shared by the plain and
// interactive history views.
func HistoryHeaders() []string {
	return []string{"ID", "When", "Start", "Goal", "Steps", "Expanded", "Time", "Ladder"}
}

// HistoryRows converts records into table cells, one row per record.
func HistoryRows(records []model.SearchRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		steps := "-"
		ladderText := NoPathMessage
		if rec.Found {
			steps = strconv.Itoa(rec.Steps())
			ladderText = strings.Join(rec.Path, " > ")
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.Start,
			rec.Goal,
			steps,
			strconv.Itoa(rec.Expanded),
			formatDuration(time.Duration(rec.DurationUs) * time.Microsecond),
			ladderText,
		})
	}
	return rows
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
