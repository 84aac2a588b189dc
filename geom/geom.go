// Package geom provides the geometric value types the layout stage operates
// on: absolute lengths, font-relative linear length expressions, sizes, side
// insets and the direction/alignment vocabulary. Everything here is a plain
// value - copying is cheap and never shares state.
package geom

// Gen is a pair of values distributed over the two generic layout axes.
type Gen[T any] struct {
	Main  T
	Cross T
}

// NewGen creates a generic instance from main and cross components.
func NewGen[T any](main, cross T) Gen[T] {
	return Gen[T]{Main: main, Cross: cross}
}

// Get returns the component for the requested axis.
func (g Gen[T]) Get(axis GenAxis) T {
	if axis == GenAxisMain {
		return g.Main
	}
	return g.Cross
}

// Size is a width/height pair of absolute lengths.
type Size struct {
	W Length
	H Length
}

// Sides holds a value for each of the four sides of a rectangle.
type Sides[T any] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// UniformSides creates an instance with all four sides set to value.
func UniformSides[T any](value T) Sides[T] {
	return Sides[T]{Left: value, Top: value, Right: value, Bottom: value}
}

// ResolveSides resolves linear sides against the given font size.
func ResolveSides(s Sides[Linear], em Length) Sides[Length] {
	return Sides[Length]{
		Left:   s.Left.Resolve(em),
		Top:    s.Top.Resolve(em),
		Right:  s.Right.Resolve(em),
		Bottom: s.Bottom.Resolve(em),
	}
}
