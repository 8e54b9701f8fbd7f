package queue

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/handiism/tune/internal/model"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func assertPermutation(t *testing.T, q *Queue, n int) {
	t.Helper()
	if q.Len() != n {
		t.Fatalf("Len() = %d, want %d", q.Len(), n)
	}
	sorted := q.Order()
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order %v is not a permutation of 0..%d", q.Order(), n)
		}
	}
}

func TestRebuild_AlwaysPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17, 100} {
		q := New(n, seeded())
		assertPermutation(t, q, n)

		q.Rebuild(n, true)
		assertPermutation(t, q, n)

		q.ToggleShuffle(true, None)
		assertPermutation(t, q, n)

		q.ToggleShuffle(false, None)
		assertPermutation(t, q, n)
	}
}

func TestRebuild_Identity(t *testing.T) {
	q := New(4, seeded())
	q.Rebuild(4, false)
	if got := q.Order(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Order() = %v, want identity", got)
	}
}

func TestRebuild_ClearsOutOfRangeCursor(t *testing.T) {
	q := New(5, seeded())
	q.Relocate(4)
	q.Rebuild(3, false)
	if q.Cursor() != None {
		t.Errorf("Cursor() = %d, want None", q.Cursor())
	}
}

func TestToggleShuffle_RoundTrip(t *testing.T) {
	q := New(10, seeded())
	q.Relocate(6)

	q.ToggleShuffle(true, 6)
	if cur, _ := q.Current(); cur != 6 {
		t.Errorf("after shuffle Current() = %d, want 6", cur)
	}

	q.ToggleShuffle(false, 6)
	if got := q.Order(); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("after unshuffle Order() = %v, want identity", got)
	}
	if q.Cursor() != 6 {
		t.Errorf("after unshuffle Cursor() = %d, want 6", q.Cursor())
	}
}

func TestToggleShuffle_NothingPlaying(t *testing.T) {
	q := New(5, seeded())
	q.ToggleShuffle(true, None)
	if q.Cursor() != None {
		t.Errorf("Cursor() = %d, want None", q.Cursor())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		cursor  int
		repeat  model.RepeatMode
		wantPos int
		wantOK  bool
	}{
		{"middle", 1, model.RepeatOff, 2, true},
		{"end repeat off", 2, model.RepeatOff, None, false},
		{"end repeat one", 2, model.RepeatOne, None, false},
		{"end repeat all wraps", 2, model.RepeatAll, 0, true},
		{"unset cursor", None, model.RepeatOff, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(3, seeded())
			if tt.cursor != None {
				q.Relocate(tt.cursor)
			}
			pos, ok := q.Advance(tt.repeat)
			if pos != tt.wantPos || ok != tt.wantOK {
				t.Errorf("Advance() = %d, %v; want %d, %v", pos, ok, tt.wantPos, tt.wantOK)
			}
			if !ok && q.Cursor() != tt.cursor {
				t.Errorf("failed Advance moved cursor to %d", q.Cursor())
			}
		})
	}
}

func TestRetreat(t *testing.T) {
	q := New(3, seeded())
	q.Relocate(1)

	if pos, ok := q.Retreat(); pos != 0 || !ok {
		t.Errorf("Retreat() = %d, %v; want 0, true", pos, ok)
	}
	if pos, ok := q.Retreat(); pos != 2 || !ok {
		t.Errorf("Retreat() at start = %d, %v; want 2, true", pos, ok)
	}

	empty := New(0, seeded())
	if _, ok := empty.Retreat(); ok {
		t.Error("Retreat() on empty queue should fail")
	}
}

func TestRelocate_Unknown(t *testing.T) {
	q := New(3, seeded())
	q.Relocate(2)
	if q.Relocate(7) {
		t.Error("Relocate(7) should fail on a 3-entry queue")
	}
	if q.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", q.Cursor())
	}
}
