// Package queue maintains the traversal order over catalog indices.
//
// The queue is a permutation of 0..n-1 where n is the catalog length, either
// in identity order or shuffled, plus a cursor pointing at the current
// position. Keeping the order separate from the catalog lets shuffle and sort
// change what plays next without losing what is playing now.
package queue

import (
	"math/rand/v2"
	"time"

	"github.com/handiism/tune/internal/model"
	"github.com/samber/lo"
)

// None marks an unset cursor or a missing catalog index.
const None = -1

// Queue is the play order over catalog indices.
type Queue struct {
	order  []int
	cursor int
	rng    *rand.Rand
}

// New creates an identity-ordered queue over size catalog entries with no
// cursor. A nil rng is replaced by a time-seeded source.
func New(size int, rng *rand.Rand) *Queue {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	q := &Queue{cursor: None, rng: rng}
	q.Rebuild(size, false)
	return q
}

// Len returns the number of queue positions.
func (q *Queue) Len() int {
	return len(q.order)
}

// Order returns a copy of the queue order.
func (q *Queue) Order() []int {
	out := make([]int, len(q.order))
	copy(out, q.order)
	return out
}

// At returns the catalog index at queue position pos, or None if out of range.
func (q *Queue) At(pos int) int {
	if pos < 0 || pos >= len(q.order) {
		return None
	}
	return q.order[pos]
}

// Cursor returns the current queue position, or None.
func (q *Queue) Cursor() int {
	return q.cursor
}

// Current returns the catalog index under the cursor.
func (q *Queue) Current() (int, bool) {
	if q.cursor == None {
		return None, false
	}
	return q.order[q.cursor], true
}

// Rebuild resets the order to 0..size-1, shuffled uniformly when shuffled is
// set. A cursor that no longer fits is cleared; callers follow up with
// Relocate to point it back at the playing track.
func (q *Queue) Rebuild(size int, shuffled bool) {
	if shuffled {
		q.order = q.rng.Perm(size)
	} else {
		q.order = lo.Range(size)
	}
	if q.cursor >= len(q.order) {
		q.cursor = None
	}
}

// Relocate points the cursor at the position holding catalogIndex.
// Returns false, leaving the cursor unchanged, if the index is not queued.
func (q *Queue) Relocate(catalogIndex int) bool {
	for pos, idx := range q.order {
		if idx == catalogIndex {
			q.cursor = pos
			return true
		}
	}
	return false
}

// Advance moves the cursor one step forward and returns the new position.
//
// Past the end it wraps to position 0 under model.RepeatAll; otherwise it
// reports false and the cursor stays where it was. An unset cursor advances
// to the first position.
func (q *Queue) Advance(repeat model.RepeatMode) (int, bool) {
	if len(q.order) == 0 {
		return None, false
	}
	next := q.cursor + 1
	if next >= len(q.order) {
		if repeat != model.RepeatAll {
			return None, false
		}
		next = 0
	}
	q.cursor = next
	return next, true
}

// Retreat moves the cursor one step back, wrapping from the first position
// (or an unset cursor) to the last. It only fails on an empty queue.
func (q *Queue) Retreat() (int, bool) {
	if len(q.order) == 0 {
		return None, false
	}
	prev := q.cursor - 1
	if q.cursor <= 0 {
		prev = len(q.order) - 1
	}
	q.cursor = prev
	return prev, true
}

// ToggleShuffle rebuilds the order for the new shuffle setting and keeps the
// cursor on the playing catalog index, if any.
//
// Shuffling relocates by search. Unshuffling restores identity order, where
// the position equals the catalog index, so the cursor is set directly.
func (q *Queue) ToggleShuffle(shuffled bool, playing int) {
	q.Rebuild(len(q.order), shuffled)
	if playing < 0 || playing >= len(q.order) {
		q.cursor = None
		return
	}
	if shuffled {
		q.Relocate(playing)
		return
	}
	q.cursor = playing
}
