package logx

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	lastMu    sync.Mutex
	lastScore uint64 = ^uint64(0)
)

// LogRound - periodic round report (every N rounds)
// round: rounds completed so far
// score: best-ever distance
// shapes: shapes in the best-ever candidate
// rate: rounds per second since start
func LogRound(round, score uint64, shapes int, rate float64, elapsed time.Duration) {
	lastMu.Lock()
	prev := lastScore
	lastScore = score
	lastMu.Unlock()

	printf("%s  %s  round=%s  score=%s  shapes=%d  rate=%.1f/s  runtime=%s\n",
		TS(),
		Channel("EVO "),
		FormatNumber(round),
		ScoreDelta(prev, score),
		shapes,
		rate,
		FormatDuration(elapsed),
	)
}

// LogSummary - final line printed on shutdown
func LogSummary(round, score uint64, shapes int, elapsed time.Duration) {
	printf("%s  %s  %s round=%s score=%s shapes=%d runtime=%s\n",
		TS(),
		Channel("EVO "),
		Highlight("STOPPED"),
		FormatNumber(round),
		FormatNumber(score),
		shapes,
		FormatDuration(elapsed),
	)
}

// FormatNumber formats a number with thousands separators (e.g., 12,345)
func FormatNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var result []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{s[start:i]}, result...)
	}
	return strings.Join(result, ",")
}
