package geom

//go:generate go tool go-enum --marshal --names

// Specification of a concrete layout direction.
// ENUM(ltr, rtl, ttb, btt)
type Dir int

// Horizontal reports whether the direction runs along the horizontal axis.
func (d Dir) Horizontal() bool {
	return d == DirLtr || d == DirRtl
}

// Positive reports whether the direction points towards growing coordinates.
func (d Dir) Positive() bool {
	return d == DirLtr || d == DirTtb
}

// Specification of one of the two generic layout axes.
// ENUM(main, cross)
type GenAxis int

// Other returns the other generic axis.
func (a GenAxis) Other() GenAxis {
	if a == GenAxisMain {
		return GenAxisCross
	}
	return GenAxisMain
}

// Specification of alignment along a single axis.
// ENUM(start, center, end)
type Align int
