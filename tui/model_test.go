package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestImprovementFromFirstSnapshot(t *testing.T) {
	m := NewModel()
	m = update(t, m, MsgStateSnapshot{Round: 30, Score: 1000})
	if m.snapshot.InitialScore != 1000 {
		t.Fatalf("InitialScore = %d, want 1000", m.snapshot.InitialScore)
	}
	if m.improvement() != 0 {
		t.Errorf("improvement = %v at first snapshot", m.improvement())
	}

	m = update(t, m, MsgStateSnapshot{Round: 60, Score: 250})
	if m.snapshot.InitialScore != 1000 {
		t.Errorf("InitialScore moved to %d", m.snapshot.InitialScore)
	}
	if got := m.improvement(); got != 0.75 {
		t.Errorf("improvement = %v, want 0.75", got)
	}
	if m.prevScore != 1000 {
		t.Errorf("prevScore = %d, want 1000", m.prevScore)
	}
}

func TestPauseIgnoresSnapshots(t *testing.T) {
	m := NewModel()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if !m.paused {
		t.Fatal("p did not pause")
	}
	m = update(t, m, MsgStateSnapshot{Round: 30, Score: 5})
	if m.snapshot.Round != 0 {
		t.Errorf("paused model took snapshot round %d", m.snapshot.Round)
	}
}

func TestEventsCapped(t *testing.T) {
	m := NewModel()
	for i := 0; i < maxEvents+10; i++ {
		m.addEvent(Event{Message: "e"})
	}
	if len(m.events) != maxEvents {
		t.Errorf("len(events) = %d, want %d", len(m.events), maxEvents)
	}
}

func TestRenderPreview(t *testing.T) {
	// 2x2 red/green over blue/white
	rgb := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	out := RenderPreview(rgb, 2, 2, 2)
	if n := strings.Count(out, "▀"); n != 2 {
		t.Errorf("preview has %d cells, want 2: %q", n, out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("2 pixel rows should fit on one text row")
	}

	if RenderPreview(rgb[:5], 2, 2, 2) != "" {
		t.Errorf("short buffer should give empty preview")
	}
}

func TestViewBeforeAndAfterResize(t *testing.T) {
	m := NewModel()
	if m.View() != "Initializing..." {
		t.Errorf("View before size = %q", m.View())
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, MsgStateSnapshot{RunID: "abc", Shape: "circle", Width: 2, Height: 2, Round: 30, Score: 10,
		Pixels: make([]byte, 12)})
	v := m.View()
	for _, want := range []string{"run=abc", "shape=circle", "Round:", "q: quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("View missing %q", want)
		}
	}
}
