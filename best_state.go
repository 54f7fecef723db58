package main

import (
	"math"
	"sync"
)

// Snapshot is one consistent view of the best-ever record. Score is always
// the distance between the target and Candidate rendered on the canvas.
type Snapshot struct {
	Round     uint64
	Score     uint64
	Candidate Candidate
}

// BestState is the only state shared between the selection loop and the
// viewer. The snapshot is replaced as a whole under mu, never field by field.
type BestState struct {
	Width  int
	Height int

	mu   sync.Mutex
	snap Snapshot
}

// NewBestState starts at round 0 with the worst possible score and an empty
// candidate.
func NewBestState(w, h int) *BestState {
	return &BestState{
		Width:  w,
		Height: h,
		snap: Snapshot{
			Score:     math.MaxUint64,
			Candidate: Candidate{},
		},
	}
}

// Merge records the end of a round. The stored candidate is replaced only if
// score is strictly better; the round counter always advances. It returns the
// snapshot that is current after the merge.
func (b *BestState) Merge(score uint64, c Candidate) (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	improved := score < b.snap.Score
	if improved {
		b.snap = Snapshot{Round: b.snap.Round + 1, Score: score, Candidate: c.Clone()}
	} else {
		b.snap = Snapshot{Round: b.snap.Round + 1, Score: b.snap.Score, Candidate: b.snap.Candidate}
	}
	return b.snap, improved
}

// Snapshot copies out the current record.
func (b *BestState) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// Render draws the current best candidate. Only the snapshot is taken under
// the lock; rendering happens after it is released.
func (b *BestState) Render() (Snapshot, Raster) {
	s := b.Snapshot()
	return s, Render(s.Candidate, b.Width, b.Height)
}
