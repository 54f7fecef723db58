package logx

import (
	"fmt"
	"time"

	"lisa_evolver/tui"
)

// Convenience functions that forward to TUI

func LogImproved(round, oldScore, newScore uint64, shapes int) {
	msg := fmt.Sprintf("Round %s: score %s → %s (%d shapes)",
		FormatNumber(round), FormatNumber(oldScore), FormatNumber(newScore), shapes)
	if oldScore == ^uint64(0) {
		msg = fmt.Sprintf("Round %s: first score %s (%d shapes)", FormatNumber(round), FormatNumber(newScore), shapes)
	}
	tui.PushEvent(tui.Event{
		Timestamp: time.Now(),
		Type:      "BEST",
		Severity:  "info",
		Message:   msg,
	})
}

func LogStagnation(round, sinceRound uint64) {
	tui.PushEvent(tui.Event{
		Timestamp: time.Now(),
		Type:      "STAGNATION",
		Severity:  "warning",
		Message:   fmt.Sprintf("No improvement for %s rounds (since round %s)", FormatNumber(round-sinceRound), FormatNumber(sinceRound)),
	})
}

func LogViewer(message string) {
	tui.PushEvent(tui.Event{
		Timestamp: time.Now(),
		Type:      "VIEWER",
		Severity:  "info",
		Message:   message,
	})
}
