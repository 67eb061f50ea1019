package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	// Deterministic, strictly increasing timestamps.
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	j.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return j
}

func result(score int) engine.Result {
	return engine.Result{Score: score, Length: 1 + score/10, Obstacles: score / 5, Ticks: uint64(score * 3), Cause: engine.CauseSelf}
}

func TestJournalRecordAndRecent(t *testing.T) {
	j := openJournal(t)

	for _, s := range []int{10, 30, 20} {
		if _, err := j.Record("s1", "alice", result(s)); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	if _, err := j.Record("s2", "bob", result(90)); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	recent, err := j.Recent("s1", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 games for s1, got %d", len(recent))
	}

	// Newest first
	want := []int{20, 30, 10}
	for i, r := range recent {
		if r.Score != want[i] {
			t.Errorf("recent[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
		if r.Session != "s1" || r.Player != "alice" {
			t.Errorf("recent[%d] belongs to %s/%s", i, r.Session, r.Player)
		}
	}

	first := recent[2]
	if first.Length != 2 || first.Obstacles != 2 || first.Ticks != 30 || first.Cause != "self-collision" {
		t.Errorf("Fields not preserved: %+v", first)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Errorf("ID and CreatedAt should be set: %+v", first)
	}
}

func TestJournalRecentLimit(t *testing.T) {
	j := openJournal(t)
	for i := 0; i < 5; i++ {
		j.Record("s", "", result(i*10))
	}

	recent, err := j.Recent("s", 2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 games with limit, got %d", len(recent))
	}
	if recent[0].Score != 40 || recent[1].Score != 30 {
		t.Errorf("Unexpected order: %d, %d", recent[0].Score, recent[1].Score)
	}
}

func TestJournalTop(t *testing.T) {
	j := openJournal(t)
	j.Record("a", "", result(50))
	j.Record("b", "", result(70))
	j.Record("a", "", result(10))
	j.Record("c", "", result(70))

	top, err := j.Top(3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}
	// Ties go to the earlier game.
	if top[0].Session != "b" || top[1].Session != "c" || top[2].Score != 50 {
		t.Errorf("Unexpected ranking: %+v", top)
	}
}

func TestJournalStats(t *testing.T) {
	j := openJournal(t)

	empty, err := j.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.BestScore != 0 || empty.AvgScore != 0 {
		t.Errorf("Empty session should have zero stats, got %+v", empty)
	}

	j.Record("s", "", result(10))
	j.Record("s", "", result(30))

	stats, err := j.Stats("s")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.BestScore != 30 || stats.AvgScore != 20 || stats.Ticks != 120 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestJournalSeparateInstances(t *testing.T) {
	a := openJournal(t)
	b := openJournal(t)

	a.Record("s", "", result(10))

	recent, err := b.Recent("s", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Error("Journals must not share data")
	}
}

func TestJournalClosed(t *testing.T) {
	j, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Errorf("Second Close() should be a no-op, got %v", err)
	}

	if _, err := j.Record("s", "", result(10)); !errors.Is(err, ErrClosed) {
		t.Errorf("Record() after Close = %v, expected ErrClosed", err)
	}
	if _, err := j.Recent("s", 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Recent() after Close = %v, expected ErrClosed", err)
	}
	if _, err := j.Stats("s"); !errors.Is(err, ErrClosed) {
		t.Errorf("Stats() after Close = %v, expected ErrClosed", err)
	}
}

func TestNewSessionUnique(t *testing.T) {
	if NewSession() == NewSession() {
		t.Error("NewSession() should return distinct identifiers")
	}
}
