package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles (defined at package init for reuse)
var (
	styleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleGray  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	stylePanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")).
		Padding(0, 1)

	styleEventInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleEventWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleEventError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStats(),
		m.renderProgress(),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderPreview()),
		m.renderEvents(),
		m.renderFooter(),
	)
	return body
}

func (m Model) renderHeader() string {
	s := m.snapshot
	return styleHeader.Render(fmt.Sprintf(
		"lisa │ run=%s │ shape=%s │ canvas=%dx%d │ runtime=%s",
		s.RunID,
		s.Shape,
		s.Width, s.Height,
		formatDuration(time.Since(s.StartTime)),
	))
}

func (m Model) renderStats() string {
	s := m.snapshot
	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Round:  %s\nScore:  %s\nShapes: %d\nRate:   %.1f rounds/s",
		groupDigits(s.Round),
		m.scoreChangeColor(s.Score),
		s.Shapes,
		s.Rate,
	))
}

func (m Model) renderProgress() string {
	return stylePanel.Width(50).Render(
		"Error removed\n" + m.progress.ViewAs(m.improvement()),
	)
}

func (m Model) renderPreview() string {
	if m.preview == "" {
		return stylePanel.Render(styleDim.Render("(no preview yet)"))
	}
	return stylePanel.Render(m.preview)
}

func (m Model) renderEvents() string {
	if !m.ready || m.width == 0 {
		return stylePanel.Render("Events: initializing...")
	}
	return stylePanel.Render("Events (scroll):") + "\n" + m.viewport.View()
}

func (m Model) renderFooter() string {
	hints := []string{"q: quit", "p: pause", "↑/↓: scroll"}
	if m.paused {
		hints = append(hints, "(PAUSED)")
	}

	hintStrings := make([]string, len(hints))
	for i, h := range hints {
		hintStrings[i] = styleDim.Render(h)
	}

	return styleGray.Render("│ " + strings.Join(hintStrings, " │ ") + " │")
}

func (m Model) scoreChangeColor(score uint64) string {
	if score < m.prevScore {
		return styleGreen.Render(groupDigits(score) + " ↓")
	}
	return styleDim.Render(groupDigits(score) + " =")
}

func groupDigits(n uint64) string {
	s := strconv.FormatUint(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
