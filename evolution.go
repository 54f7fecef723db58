package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/sourcegraph/conc/pool"
)

const (
	// PopulationSize is the number of candidates mutated and scored per round.
	PopulationSize = 100
	// ReportEvery is the round interval of the progress report.
	ReportEvery = 30
)

// RoundReport describes the state right after a round has been merged.
type RoundReport struct {
	Snapshot
	Shapes    int           // len(Snapshot.Candidate)
	RoundBest uint64        // best score among this round's members
	Improved  bool          // best-ever was replaced this round
	Duration  time.Duration // wall time of this round
	Elapsed   time.Duration // since the evolver was created
	Rate      float64       // rounds per second since start
}

// Reporter receives a RoundReport every ReportEvery rounds.
type Reporter interface {
	Report(RoundReport)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(RoundReport)

func (f ReporterFunc) Report(r RoundReport) { f(r) }

// Evolver runs the mutate / score / select / collapse loop against a fixed
// target raster.
type Evolver struct {
	target  Raster
	mut     Mutator
	best    *BestState
	rng     *rand.Rand
	workers int

	population []Candidate
	scores     []uint64
	rasters    *RasterPool

	metrics   *Metrics
	reporters []Reporter
	start     time.Time
}

// NewEvolver builds an evolver with PopulationSize empty candidates. All
// randomness comes from rng, so a seeded rng reproduces a run exactly
// whatever the worker count.
func NewEvolver(target Raster, best *BestState, kind ShapeKind, workers int, rng *rand.Rand) *Evolver {
	assert(best.Width == target.Width && best.Height == target.Height,
		"best-state canvas %dx%d does not match target %dx%d", best.Width, best.Height, target.Width, target.Height)
	if workers < 1 {
		workers = 1
	}

	population := make([]Candidate, PopulationSize)
	for i := range population {
		population[i] = Candidate{}
	}

	return &Evolver{
		target:     target,
		mut:        Mutator{Kind: kind, Width: target.Width, Height: target.Height},
		best:       best,
		rng:        rng,
		workers:    workers,
		population: population,
		scores:     make([]uint64, PopulationSize),
		rasters:    NewRasterPool(workers * 2),
		start:      time.Now(),
	}
}

// SetMetrics attaches Prometheus collectors; nil disables them.
func (e *Evolver) SetMetrics(m *Metrics) { e.metrics = m }

// AddReporter registers a periodic report sink.
func (e *Evolver) AddReporter(r Reporter) { e.reporters = append(e.reporters, r) }

// Population exposes the current population (read-only, for inspection).
func (e *Evolver) Population() []Candidate { return e.population }

// Run evolves until ctx is cancelled. There is no other exit.
func (e *Evolver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.Step()
	}
}

// Step runs one round.
func (e *Evolver) Step() RoundReport {
	t0 := time.Now()

	// Mutation is sequential so the rng stream does not depend on scheduling.
	for i := range e.population {
		e.population[i] = e.mut.Mutate(e.population[i], e.rng)
	}

	e.scoreAll()

	// First lowest score wins.
	bestIdx := 0
	for i := 1; i < len(e.scores); i++ {
		if e.scores[i] < e.scores[bestIdx] {
			bestIdx = i
		}
	}

	snap, improved := e.best.Merge(e.scores[bestIdx], e.population[bestIdx])

	// Collapse: every lineage restarts from the best-ever candidate.
	for i := range e.population {
		e.population[i] = snap.Candidate.Clone()
	}

	elapsed := time.Since(e.start)
	rep := RoundReport{
		Snapshot:  snap,
		Shapes:    len(snap.Candidate),
		RoundBest: e.scores[bestIdx],
		Improved:  improved,
		Duration:  time.Since(t0),
		Elapsed:   elapsed,
	}
	if s := elapsed.Seconds(); s > 0 {
		rep.Rate = float64(snap.Round) / s
	}

	e.metrics.observeRound(rep)
	if snap.Round%ReportEvery == 0 {
		for _, r := range e.reporters {
			r.Report(rep)
		}
	}
	return rep
}

func (e *Evolver) scoreAll() {
	if e.workers == 1 {
		for i, c := range e.population {
			e.scores[i] = e.score(c)
		}
		return
	}

	p := pool.New().WithMaxGoroutines(e.workers)
	for i := range e.population {
		i := i
		p.Go(func() {
			e.scores[i] = e.score(e.population[i])
		})
	}
	p.Wait()
}

func (e *Evolver) score(c Candidate) uint64 {
	r := e.rasters.Get(e.target.Width, e.target.Height)
	renderInto(r, c)
	d := Distance(e.target, r)
	e.rasters.Put(r)
	return d
}
