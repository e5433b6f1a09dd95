package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordladder/internal/dictionary"
	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/model"
)

func TestRenderLadderFound(t *testing.T) {
	var buf bytes.Buffer
	res := ladder.Result{Path: []string{"cat", "cot", "cog", "dog"}, Found: true}
	if err := RenderLadder(&buf, "cat", "dog", res); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "-- Shortest path from cat to dog --\ncat\ncot\ncog\ndog\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRenderLadderNotFound(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLadder(&buf, "cat", "dog", ladder.Result{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "-- Shortest path from cat to dog --\nNone exists!\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRenderMissingStartAndUsage(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMissingStart(&buf, "xyz"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := RenderUsage(&buf, "ladder"); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "xyz is not in the given dictionary.\nUsage: ladder dictionaryFile startWord goalWord\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRenderDictionarySummary(t *testing.T) {
	var buf bytes.Buffer
	dict := dictionary.New("cat", "dog", "co-op", "a")
	if err := RenderDictionarySummary(&buf, dict); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Words: 4\n", "Alphabetic: 3\n", "Length Words\n", "     1     1\n", "     3     2\n", "     5     1\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No searches found.\n" {
		t.Fatalf("unexpected empty history output: %q", buf.String())
	}

	buf.Reset()
	records := []model.SearchRecord{
		{ID: 1, EndedAt: time.Now(), Start: "cat", Goal: "dog", Found: true, Path: []string{"cat", "cot", "cog", "dog"}, Expanded: 4, DurationUs: 250},
		{ID: 2, EndedAt: time.Now(), Start: "cat", Goal: "emu", Expanded: 1, DurationUs: 1500},
	}
	if err := RenderHistory(&buf, records); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "cat > cot > cog > dog") || !strings.Contains(lines[1], "250µs") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], NoPathMessage) || !strings.Contains(lines[2], "1.5ms") {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}
