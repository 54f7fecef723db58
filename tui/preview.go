package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// previewCols is the width of the dashboard thumbnail in terminal cells.
const previewCols = 40

// RenderPreview downsamples a packed RGB image to cols cells wide using
// nearest-neighbour sampling. Each cell is an upper half block, so one
// text row carries two pixel rows.
func RenderPreview(rgb []byte, w, h, cols int) string {
	if w <= 0 || h <= 0 || cols <= 0 || len(rgb) < w*h*3 {
		return ""
	}
	cols = min(cols, w)
	rows := h * cols / w
	if rows < 2 {
		rows = 2
	}
	if rows%2 == 1 {
		rows++
	}

	at := func(col, row int) lipgloss.Color {
		x := col * w / cols
		y := min(row*h/rows, h-1)
		i := (y*w + x) * 3
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[i], rgb[i+1], rgb[i+2]))
	}

	var b strings.Builder
	for row := 0; row < rows; row += 2 {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			cell := lipgloss.NewStyle().
				Foreground(at(col, row)).
				Background(at(col, row+1))
			b.WriteString(cell.Render("▀"))
		}
	}
	return b.String()
}
