package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

const (
	reset   = "\x1b[0m"
	bold    = "\x1b[1m"
	gray    = "\x1b[90m"
	cyan    = "\x1b[36m"
	blue    = "\x1b[34m"
	yellow  = "\x1b[33m"
	green   = "\x1b[32m"
	magenta = "\x1b[35m"
	red     = "\x1b[31m"
)

var (
	enableColor = true
	quiet       atomic.Bool

	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

func init() {
	// Disable color if NO_COLOR is set or stdout is not a terminal
	if os.Getenv("NO_COLOR") != "" {
		enableColor = false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		enableColor = false
	}
}

// SetOutput redirects console lines (tests, log files). It returns the
// previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// SetColor forces colour on or off.
func SetColor(on bool) { enableColor = on }

// SetQuiet suppresses console lines while the TUI owns the terminal.
func SetQuiet(q bool) { quiet.Store(q) }

// printf serialises writes from the loop and the viewer goroutines.
func printf(format string, args ...any) {
	if quiet.Load() {
		return
	}
	outMu.Lock()
	fmt.Fprintf(out, format, args...)
	outMu.Unlock()
}

// C returns a color-coded string (or plain string if color disabled)
func C(color, s string) string {
	if !enableColor {
		return s
	}
	return color + s + reset
}

// Channel returns a consistently-padded colored channel tag.
// Pass 4-char channel names: "EVO ", "WEB ", "CFG ", "TGT ".
func Channel(ch string) string {
	color := map[string]string{
		"EVO ": cyan,
		"WEB ": blue,
		"CFG ": yellow,
		"TGT ": magenta,
	}[ch]

	label := fmt.Sprintf("[%-4s]", ch)
	return C(color, label)
}

// TS returns a gray UTC timestamp for now.
func TS() string {
	return C(gray, time.Now().UTC().Format("15:04:05Z"))
}

// Success returns a green success message
func Success(s string) string {
	return C(green, s)
}

// Errorf returns a formatted red error message
func Errorf(format string, args ...any) string {
	return C(red, fmt.Sprintf(format, args...))
}

// Warnf returns a formatted yellow warning message
func Warnf(format string, args ...any) string {
	return C(yellow, fmt.Sprintf(format, args...))
}

// Info returns a cyan info message
func Info(s string) string {
	return C(cyan, s)
}

// Highlight returns a bold highlighted message
func Highlight(s string) string {
	return C(bold, s)
}

// Dim returns a gray dimmed message (for less important info)
func Dim(s string) string {
	return C(gray, s)
}

// ScoreDelta colours a score against the previous report: green when it
// dropped, gray when unchanged.
func ScoreDelta(prev, cur uint64) string {
	s := FormatNumber(cur)
	if cur < prev {
		return Success(s + " ↓")
	}
	return Dim(s + " =")
}

// FormatDuration formats a duration in a human-readable way
// Shows hours, minutes, and seconds (e.g., "1h23m" or "45m12s" or "23s")
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
