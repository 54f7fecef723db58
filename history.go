package main

import (
	"fmt"
	"io"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sample is one point of the score history.
type Sample struct {
	Round uint64 `json:"round"`
	Score uint64 `json:"score"`
}

// History keeps the last max (round, score) samples. It is fed by the
// periodic round report and read by the viewer.
type History struct {
	mu      sync.Mutex
	max     int
	samples []Sample
}

func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max, samples: make([]Sample, 0, max)}
}

// Report implements Reporter.
func (h *History) Report(r RoundReport) {
	h.Add(r.Round, r.Score)
}

// Add appends a sample, dropping the oldest one when full.
func (h *History) Add(round, score uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.samples) == h.max {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, Sample{Round: round, Score: score})
}

// Samples returns a copy, oldest first.
func (h *History) Samples() []Sample {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// WritePNG plots best score against round.
func (h *History) WritePNG(w io.Writer, title string) error {
	samples := h.Samples()

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Score"

	if len(samples) > 0 {
		pts := make(plotter.XYs, len(samples))
		for i, s := range samples {
			pts[i].X = float64(s.Round)
			pts[i].Y = float64(s.Score)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("history line: %w", err)
		}
		p.Add(line)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("history plot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
