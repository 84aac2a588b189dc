// Package debug implements small helpers for producing stable, human
// readable dumps of internal trees.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

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

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes a "key=value" line, quoting the value only when it contains
// characters that would make the dump ambiguous.
func (tw TreeWriter) Field(depth int, key string, value any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(key)
	tw.w.WriteByte('=')
	switch v := value.(type) {
	case string:
		tw.w.WriteString(encodeText(v))
	default:
		fmt.Fprintf(tw.w, "%v", v)
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" || strings.ContainsAny(raw, " \t\n\r\"=") {
		return strconv.Quote(raw)
	}
	return raw
}
