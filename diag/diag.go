// Package diag defines the diagnostics produced while a document executes.
// Problems found during execution never abort the pass - they are collected
// here and returned to the caller alongside the result.
package diag

import (
	"fmt"

	"dtc/syntax"
)

//go:generate go tool go-enum --marshal --names

// Specification of diagnostic severity.
// ENUM(warning, error)
type Level int

// Diag is a single diagnostic message anchored to a source span.
type Diag struct {
	Level   Level
	Message string
	Span    syntax.Span
}

// Warning creates a warning level diagnostic.
func Warning(span syntax.Span, format string, args ...any) Diag {
	return Diag{Level: LevelWarning, Message: fmt.Sprintf(format, args...), Span: span}
}

// Error creates an error level diagnostic.
func Error(span syntax.Span, format string, args ...any) Diag {
	return Diag{Level: LevelError, Message: fmt.Sprintf(format, args...), Span: span}
}

func (d Diag) String() string {
	return fmt.Sprintf("%s (%s): %s", d.Level, d.Span, d.Message)
}

// Set is an ordered collection of diagnostics. Insertion order is preserved
// and exact duplicates are suppressed, so repeating a bad operation does not
// flood the final report.
type Set struct {
	list []Diag
	seen map[Diag]struct{}
}

// Insert adds a diagnostic unless an identical one is already present.
func (s *Set) Insert(d Diag) {
	if s.seen == nil {
		s.seen = make(map[Diag]struct{})
	}
	if _, dup := s.seen[d]; dup {
		return
	}
	s.seen[d] = struct{}{}
	s.list = append(s.list, d)
}

// Extend inserts all diagnostics from another set.
func (s *Set) Extend(other Set) {
	for _, d := range other.list {
		s.Insert(d)
	}
}

// List returns collected diagnostics in insertion order.
func (s *Set) List() []Diag {
	return s.list
}

// Len returns the number of collected diagnostics.
func (s *Set) Len() int {
	return len(s.list)
}

// Pass is the result of a compilation pass: its output plus everything that
// was diagnosed along the way.
type Pass[T any] struct {
	Output T
	Diags  Set
}

// NewPass creates a pass result.
func NewPass[T any](output T, diags Set) Pass[T] {
	return Pass[T]{Output: output, Diags: diags}
}
