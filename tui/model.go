package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StateSnapshot is what the dashboard shows for one report.
type StateSnapshot struct {
	RunID     string
	Shape     string
	Width     int
	Height    int
	StartTime time.Time

	Round        uint64
	Score        uint64
	InitialScore uint64 // score at the first report, for the progress bar
	Shapes       int
	Rate         float64

	// Best-ever render, packed RGB, Width*Height*3 bytes. May be nil.
	Pixels []byte
}

// Event represents a significant event
type Event struct {
	Timestamp time.Time
	Type      string // "BEST", "STAGNATION", "VIEWER"
	Severity  string // "info", "warning", "error"
	Message   string
}

type (
	MsgStateSnapshot StateSnapshot
	MsgEvent         Event
	MsgShutdown      struct{}
	MsgTick          time.Time
)

const maxEvents = 1000

type Model struct {
	snapshot StateSnapshot
	preview  string
	events   []Event // Ring buffer, max 1000
	paused   bool

	width  int
	height int
	ready  bool

	progress progress.Model // NOT a pointer
	viewport viewport.Model // NOT a pointer

	// Track previous score to show ↓ / =
	prevScore uint64
}

func NewModel() Model {
	return Model{
		snapshot:  StateSnapshot{StartTime: time.Now()},
		events:    make([]Event, 0, maxEvents),
		progress:  progress.New(progress.WithWidth(40)),
		viewport:  viewport.New(0, 8),
		prevScore: ^uint64(0),
	}
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle custom keys first (q=quit, p=pause)
		var cmd tea.Cmd
		m2, keyCmd := m.handleKey(msg)
		m = m2.(Model)

		// Then pass to viewport for scrolling
		m.viewport, cmd = m.viewport.Update(msg)
		return m, tea.Batch(cmd, keyCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = max(10, m.width-4)
		m.viewport.Height = 8
		return m, nil

	case MsgStateSnapshot:
		if m.paused {
			return m, nil
		}
		s := StateSnapshot(msg)
		if m.snapshot.Round > 0 {
			m.prevScore = m.snapshot.Score
		}
		if m.snapshot.InitialScore != 0 {
			s.InitialScore = m.snapshot.InitialScore
		} else if s.InitialScore == 0 {
			s.InitialScore = s.Score
		}
		if s.StartTime.IsZero() {
			s.StartTime = m.snapshot.StartTime
		}
		m.snapshot = s
		if len(s.Pixels) == s.Width*s.Height*3 && s.Width > 0 {
			m.preview = RenderPreview(s.Pixels, s.Width, s.Height, previewCols)
		}
		return m, nil

	case MsgEvent:
		m.addEvent(Event(msg))
		// Update viewport content and auto-scroll to bottom
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case MsgTick:
		return m, tick()

	case MsgShutdown:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		return m, nil
	}
	return m, nil
}

func (m *Model) addEvent(e Event) {
	m.events = append(m.events, e)
	if len(m.events) > maxEvents {
		m.events = m.events[1:]
	}
}

// updateViewportContent rebuilds events content for viewport
// Call this only when events change (on MsgEvent), not every render
func (m *Model) updateViewportContent() {
	eventStrings := make([]string, 0, len(m.events))
	for _, e := range m.events {
		style := styleEventInfo
		if e.Severity == "warning" {
			style = styleEventWarn
		} else if e.Severity == "error" {
			style = styleEventError
		}

		icon := "•"
		if e.Type == "BEST" {
			icon = "↘"
		} else if e.Severity == "warning" {
			icon = "⚠"
		} else if e.Severity == "error" {
			icon = "✗"
		}

		eventStrings = append(eventStrings, style.Render(
			fmt.Sprintf("[%s] %s %s", e.Timestamp.Format("15:04:05"), icon, e.Message),
		))
	}
	m.viewport.SetContent(strings.Join(eventStrings, "\n"))
}

// improvement is the share of the initial error removed so far, in [0, 1].
func (m Model) improvement() float64 {
	s := m.snapshot
	if s.InitialScore == 0 || s.Score >= s.InitialScore {
		return 0
	}
	return 1 - float64(s.Score)/float64(s.InitialScore)
}
