package engine

import (
	"reflect"
	"testing"
)

func TestBestScoresRecord(t *testing.T) {
	b := NewBestScores(3)
	for _, s := range []int{5, 1, 9, 7} {
		b.Record(s)
	}

	if got := b.Values(); !reflect.DeepEqual(got, []int{9, 7, 5}) {
		t.Errorf("Values() = %v, expected [9 7 5]", got)
	}
}

func TestBestScoresEmpty(t *testing.T) {
	b := NewBestScores(0)
	if got := b.Values(); len(got) != 0 {
		t.Errorf("Empty table Values() = %v, expected none", got)
	}
	if b.limit != DefaultBestScoresLimit {
		t.Errorf("limit = %d, expected default %d", b.limit, DefaultBestScoresLimit)
	}
}

func TestBestScoresValuesIsACopy(t *testing.T) {
	b := NewBestScores(5)
	b.Record(10)
	v := b.Values()
	v[0] = 99
	if b.Values()[0] != 10 {
		t.Error("Mutating Values() must not change the table")
	}
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dx, dy   int
		name     string
	}{
		{DirUp, DirDown, 0, -1, "up"},
		{DirDown, DirUp, 0, 1, "down"},
		{DirLeft, DirRight, -1, 0, "left"},
		{DirRight, DirLeft, 1, 0, "right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dir.Opposite() != tc.opposite {
				t.Errorf("Opposite() = %s, expected %s", tc.dir.Opposite(), tc.opposite)
			}
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d,%d), expected (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
			if tc.dir.String() != tc.name {
				t.Errorf("String() = %q, expected %q", tc.dir.String(), tc.name)
			}
		})
	}
}
