package main

import (
	"math"
	"sync"
	"testing"
)

func TestNewBestState(t *testing.T) {
	b := NewBestState(4, 3)
	s := b.Snapshot()
	if s.Round != 0 || s.Score != math.MaxUint64 || s.Candidate == nil || len(s.Candidate) != 0 {
		t.Errorf("initial snapshot = %+v", s)
	}
}

func TestMergeKeepsBestAndCountsRounds(t *testing.T) {
	b := NewBestState(4, 3)
	c1 := Candidate{NewShape(KindCircle, 1, 1, 1, Color{A: 30})}
	c2 := Candidate{NewShape(KindCircle, 2, 2, 2, Color{A: 40})}

	s, improved := b.Merge(100, c1)
	if !improved || s.Round != 1 || s.Score != 100 || !s.Candidate.Equal(c1) {
		t.Fatalf("first merge = %+v improved=%v", s, improved)
	}

	s, improved = b.Merge(100, c2)
	if improved || s.Round != 2 || !s.Candidate.Equal(c1) {
		t.Errorf("tie replaced best: %+v improved=%v", s, improved)
	}

	s, improved = b.Merge(150, c2)
	if improved || s.Round != 3 || s.Score != 100 {
		t.Errorf("worse score replaced best: %+v improved=%v", s, improved)
	}

	s, improved = b.Merge(99, c2)
	if !improved || s.Round != 4 || s.Score != 99 || !s.Candidate.Equal(c2) {
		t.Errorf("better score not taken: %+v improved=%v", s, improved)
	}
}

func TestMergeCopiesCandidate(t *testing.T) {
	b := NewBestState(4, 3)
	c := Candidate{NewShape(KindCircle, 1, 1, 1, Color{A: 30})}
	b.Merge(10, c)

	c[0].X = 3
	if got := b.Snapshot().Candidate[0].X; got != 1 {
		t.Errorf("stored candidate aliased caller's slice, X = %d", got)
	}
}

func TestRenderMatchesScore(t *testing.T) {
	target := NewRaster(16, 16)
	for i := range target.Pix {
		target.Pix[i] = uint8(i)
	}
	c := Candidate{
		NewShape(KindCircle, 8, 8, 5, Color{A: 90, R: 40, G: 50, B: 60}),
		NewShape(KindSquare, 2, 3, 4, Color{A: 30, R: 240, G: 0, B: 6}),
	}

	b := NewBestState(16, 16)
	b.Merge(Distance(target, Render(c, 16, 16)), c)

	snap, r := b.Render()
	if got := Distance(target, r); got != snap.Score {
		t.Errorf("rendered best scores %d, stored score %d", got, snap.Score)
	}
}

func TestSnapshotConsistentUnderConcurrency(t *testing.T) {
	const rounds = 2000
	b := NewBestState(1, 1)

	// Every improving merge stores score = rounds - len(candidate), so a
	// torn read would break that relation.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c := Candidate{}
		for i := 0; i < rounds-1; i++ {
			c = c.pushFront(NewShape(KindCircle, 0, 0, 1, Color{}))
			b.Merge(uint64(rounds-len(c)), c)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last uint64
			for i := 0; i < rounds; i++ {
				s := b.Snapshot()
				if s.Round < last {
					t.Errorf("round went backwards: %d after %d", s.Round, last)
					return
				}
				last = s.Round
				if s.Round > 0 && s.Score != uint64(rounds-len(s.Candidate)) {
					t.Errorf("torn snapshot: score %d with %d shapes", s.Score, len(s.Candidate))
					return
				}
			}
		}()
	}
	wg.Wait()
}
