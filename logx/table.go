package logx

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
)

// Row is one key/value line of a table.
type Row struct {
	Key   string
	Value any
}

// NewTableWriter creates a tabwriter for custom output
func NewTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintConfig - prints the resolved configuration as an aligned table
func PrintConfig(rows []Row) {
	var buf bytes.Buffer
	w := NewTableWriter(&buf)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s:\t%v\n", r.Key, r.Value)
	}
	w.Flush()

	printf("%s  %s  configuration\n%s", TS(), Channel("CFG "), buf.String())
}
