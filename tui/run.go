package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type TUIConfig struct {
	RunID  string
	Shape  string
	Width  int
	Height int

	// OnQuit runs once the program exits, whether from a key press or Stop.
	OnQuit func()
}

var (
	mu      sync.RWMutex
	program *tea.Program
)

// Start initializes and starts the TUI
// Returns nil if TUI started successfully, error if disabled (non-TTY, TERM=dumb, etc.)
func Start(ctx context.Context, cfg TUIConfig) error {
	// Check if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("TUI disabled (not a TTY)")
	}

	// Check for TERM=dumb
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TUI disabled (TERM=dumb)")
	}

	m := NewModel()
	m.snapshot.RunID = cfg.RunID
	m.snapshot.Shape = cfg.Shape
	m.snapshot.Width = cfg.Width
	m.snapshot.Height = cfg.Height

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	mu.Lock()
	program = p
	mu.Unlock()

	// Run in background until quit or ctx is cancelled
	go func() {
		_, _ = p.Run()
		mu.Lock()
		program = nil
		mu.Unlock()
		if cfg.OnQuit != nil {
			cfg.OnQuit()
		}
	}()

	return nil
}

// Stop gracefully shuts down the TUI
func Stop() {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgShutdown{})
		p.Wait()
	}
}

// Active reports whether a TUI program is running.
func Active() bool {
	mu.RLock()
	defer mu.RUnlock()
	return program != nil
}

// PushState sends a state snapshot to the TUI (thread-safe)
func PushState(s StateSnapshot) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgStateSnapshot(s))
	}
}

// PushEvent sends an event to the TUI (thread-safe)
func PushEvent(e Event) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgEvent(e))
	}
}
