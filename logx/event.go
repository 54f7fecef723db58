package logx

import (
	"fmt"
	"strings"
)

const eventSep = "═══════════════════════════════════════════════════════════════════"

// LogWeb - viewer-side message on the [WEB ] channel
func LogWeb(format string, args ...any) {
	printf("%s  %s  %s\n", TS(), Channel("WEB "), fmt.Sprintf(format, args...))
}

// LogTarget - target image loading on the [TGT ] channel
func LogTarget(format string, args ...any) {
	printf("%s  %s  %s\n", TS(), Channel("TGT "), fmt.Sprintf(format, args...))
}

// LogConfig - startup/configuration message on the [CFG ] channel
func LogConfig(format string, args ...any) {
	printf("%s  %s  %s\n", TS(), Channel("CFG "), fmt.Sprintf(format, args...))
}

// LogStartBlock - banner printed once the viewer is listening
// runID: unique ID of this run
// url: status page of the viewer
// width, height: canvas size taken from the target image
// shape: circle or square
func LogStartBlock(runID, url string, width, height int, shape string) {
	var b strings.Builder
	b.WriteString(eventSep + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", TS(), Channel("EVO "), Highlight("EVOLUTION START")))
	b.WriteString(fmt.Sprintf("Run:     %s\n", runID))
	b.WriteString(fmt.Sprintf("Canvas:  %dx%d\n", width, height))
	b.WriteString(fmt.Sprintf("Shape:   %s\n", shape))
	b.WriteString(fmt.Sprintf("go %s for funny stuffs.\n", Info(url)))
	b.WriteString(eventSep + "\n")
	printf("%s", b.String())
}
