// Package syntax carries source positions through the compilation pipeline so
// diagnostics can point back at the originating input.
package syntax

import "fmt"

// Span is a half-open byte range [Start, End) in the source input.
type Span struct {
	Start int
	End   int
}

// Detached returns the span used for synthesized operations that have no
// counterpart in the source.
func Detached() Span {
	return Span{Start: -1, End: -1}
}

// NewSpan creates a span from start and end offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// At creates an empty span pointing at a single offset.
func At(offset int) Span {
	return Span{Start: offset, End: offset}
}

// IsDetached reports whether the span does not point into the source.
func (s Span) IsDetached() bool {
	return s.Start < 0
}

// Join returns the smallest span covering both spans.
func (s Span) Join(other Span) Span {
	if s.IsDetached() {
		return other
	}
	if other.IsDetached() {
		return s
	}
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

func (s Span) String() string {
	if s.IsDetached() {
		return "<detached>"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
