// Package debug has helpers producing human readable dumps for inspection.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines of a tree dump.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo implements io.WriterTo.
func (tw TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func (tw TreeWriter) pad(depth int) {
	tw.w.WriteString(strings.Repeat(indent, max(depth, 0)))
}

// Line writes formatted line at depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line at depth, value is formatted with %v.
func (tw TreeWriter) Field(depth int, label string, value any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, "%s: %v\n", label, value)
}

// TextBlock writes "label: value" line with value quoted, so that empty and
// multiline text stays readable.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
