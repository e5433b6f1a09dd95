package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordladder/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "wordladder.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertSearches(t *testing.T, st *Store, recs ...model.SearchRecord) []int64 {
	t.Helper()
	var ids []int64
	for i, rec := range recs {
		rec.StartedAt = time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Minute)
		rec.EndedAt = rec.StartedAt.Add(time.Second)
		id, err := st.InsertSearch(context.Background(), rec)
		if err != nil {
			t.Fatalf("insert search: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestInsertAndListSearches(t *testing.T) {
	st := openTestStore(t)
	ids := insertSearches(t, st,
		model.SearchRecord{DictionaryPath: "words.txt", DictionarySize: 5, Start: "cat", Goal: "dog", Found: true, Path: []string{"cat", "cot", "cog", "dog"}, Expanded: 4, DurationUs: 12},
		model.SearchRecord{DictionaryPath: "words.txt", DictionarySize: 2, Start: "cat", Goal: "emu", Expanded: 1},
	)

	recs, err := st.ListSearches(context.Background(), model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list searches: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	first := recs[0]
	if first.ID != ids[0] || !first.Found || first.Steps() != 3 || first.DurationUs != 12 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Path[1] != "cot" {
		t.Fatalf("unexpected path: %v", first.Path)
	}
	second := recs[1]
	if second.Found || second.Path != nil || second.Steps() != 0 {
		t.Fatalf("unexpected second record: %+v", second)
	}
}

func TestListSearchesFilters(t *testing.T) {
	st := openTestStore(t)
	ids := insertSearches(t, st,
		model.SearchRecord{Start: "cat", Goal: "dog"},
		model.SearchRecord{Start: "dog", Goal: "cog"},
		model.SearchRecord{Start: "hot", Goal: "dog"},
		model.SearchRecord{Start: "hot", Goal: "hat"},
	)
	ctx := context.Background()

	recs, err := st.ListSearches(ctx, model.HistoryConfig{Word: "dog", Last: 2})
	if err != nil {
		t.Fatalf("list searches: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != ids[1] || recs[1].ID != ids[2] {
		t.Fatalf("unexpected records: %+v", recs)
	}

	// ended_at runs 1s, 61s, 121s, 181s.
	since := time.Unix(0, 0).UTC().Add(100 * time.Second)
	recs, err = st.ListSearches(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list searches: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != ids[2] || recs[1].ID != ids[3] {
		t.Fatalf("unexpected records since: %+v", recs)
	}
}

func TestClear(t *testing.T) {
	st := openTestStore(t)
	insertSearches(t, st, model.SearchRecord{Start: "a", Goal: "b"}, model.SearchRecord{Start: "b", Goal: "c"})
	n, err := st.Clear(context.Background())
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
	recs, err := st.ListSearches(context.Background(), model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list searches: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty history, got %d", len(recs))
	}
}

func TestListSearchesOrdersSubSecondTimes(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	for _, offset := range []time.Duration{120 * time.Millisecond, 100 * time.Millisecond} {
		rec := model.SearchRecord{Start: offset.String(), StartedAt: base, EndedAt: base.Add(offset)}
		if _, err := st.InsertSearch(ctx, rec); err != nil {
			t.Fatalf("insert search: %v", err)
		}
	}
	recs, err := st.ListSearches(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list searches: %v", err)
	}
	if len(recs) != 2 || recs[0].Start != "100ms" || !recs[1].EndedAt.Equal(base.Add(120*time.Millisecond)) {
		t.Fatalf("unexpected order: %+v", recs)
	}
}
