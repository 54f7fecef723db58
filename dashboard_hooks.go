package main

import (
	"lisa_evolver/logx"
	"lisa_evolver/tui"
)

// StagnationReports is how many consecutive reports without a new best
// trigger a stagnation warning.
const StagnationReports = 100

// DashboardHooks fans a periodic round report out to the terminal log and
// the TUI. It implements Reporter.
type DashboardHooks struct {
	RunID string
	Kind  ShapeKind
	Best  *BestState

	lastScore    uint64
	lastImproved uint64
	stale        int
	warned       bool
}

func NewDashboardHooks(runID string, kind ShapeKind, best *BestState) *DashboardHooks {
	return &DashboardHooks{
		RunID:     runID,
		Kind:      kind,
		Best:      best,
		lastScore: ^uint64(0),
	}
}

// Report is called from the selection loop every ReportEvery rounds.
func (d *DashboardHooks) Report(r RoundReport) {
	logx.LogRound(r.Round, r.Score, r.Shapes, r.Rate, r.Elapsed)

	if r.Score < d.lastScore {
		logx.LogImproved(r.Round, d.lastScore, r.Score, r.Shapes)
		d.lastScore = r.Score
		d.lastImproved = r.Round
		d.stale = 0
		d.warned = false
	} else {
		d.stale++
		if d.stale >= StagnationReports && !d.warned {
			logx.LogStagnation(r.Round, d.lastImproved)
			d.warned = true
		}
	}

	if tui.Active() {
		d.pushState(r)
	}
}

func (d *DashboardHooks) pushState(r RoundReport) {
	snap, raster := d.Best.Render()
	tui.PushState(tui.StateSnapshot{
		RunID:  d.RunID,
		Shape:  d.Kind.String(),
		Width:  raster.Width,
		Height: raster.Height,
		Round:  r.Round,
		Score:  snap.Score,
		Shapes: len(snap.Candidate),
		Rate:   r.Rate,
		Pixels: raster.Pix,
	})
}
