package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit conversion constants. The internal unit is the typographic point,
// everything else is converted on construction.
const (
	ptPerIn = 72.0
	ptPerCm = ptPerIn / 2.54
	ptPerMm = ptPerCm / 10.0
)

// Length is an absolute typographic length stored in raw points.
type Length struct {
	raw float64
}

// Pt creates a length from a value in points.
func Pt(v float64) Length { return Length{raw: v} }

// Mm creates a length from a value in millimeters.
func Mm(v float64) Length { return Length{raw: v * ptPerMm} }

// Cm creates a length from a value in centimeters.
func Cm(v float64) Length { return Length{raw: v * ptPerCm} }

// In creates a length from a value in inches.
func In(v float64) Length { return Length{raw: v * ptPerIn} }

// Pt returns the length in points.
func (l Length) Pt() float64 { return l.raw }

// Mm returns the length in millimeters.
func (l Length) Mm() float64 { return l.raw / ptPerMm }

// Add returns the sum of two lengths.
func (l Length) Add(other Length) Length { return Length{raw: l.raw + other.raw} }

// Scale returns the length multiplied by factor.
func (l Length) Scale(factor float64) Length { return Length{raw: l.raw * factor} }

// IsZero reports whether the length is exactly zero.
func (l Length) IsZero() bool { return l.raw == 0 }

// ApproxEq reports whether two lengths are equal within a small tolerance,
// shielding comparisons from unit conversion rounding.
func (l Length) ApproxEq(other Length) bool {
	return math.Abs(l.raw-other.raw) < 1e-9
}

func (l Length) String() string {
	return strconv.FormatFloat(l.raw, 'f', -1, 64) + "pt"
}

// MarshalText implements the text marshaller method.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (l *Length) UnmarshalText(text []byte) error {
	v, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLength parses an absolute length with an explicit unit suffix, one of
// "pt", "mm", "cm" or "in".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	for _, u := range []struct {
		suffix string
		make   func(float64) Length
	}{
		{"pt", Pt},
		{"mm", Mm},
		{"cm", Cm},
		{"in", In},
	} {
		if strings.HasSuffix(s, u.suffix) {
			v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), 64)
			if err != nil {
				return Length{}, fmt.Errorf("invalid length value in %q: %w", s, err)
			}
			return u.make(v), nil
		}
	}
	return Length{}, fmt.Errorf("length %q is missing a unit (pt, mm, cm, in)", s)
}

// Linear is a length expression linear in the current font size:
// Rel*em + Abs. Spacing and margin settings are stored this way so that they
// follow font size changes inside nested scopes.
type Linear struct {
	Rel float64
	Abs Length
}

// Rel creates a purely font-relative linear.
func Rel(scale float64) Linear { return Linear{Rel: scale} }

// Abs creates a purely absolute linear.
func Abs(length Length) Linear { return Linear{Abs: length} }

// Resolve evaluates the linear against the given font size.
func (l Linear) Resolve(em Length) Length {
	return em.Scale(l.Rel).Add(l.Abs)
}

// IsZero reports whether both components are zero.
func (l Linear) IsZero() bool { return l.Rel == 0 && l.Abs.IsZero() }

func (l Linear) String() string {
	switch {
	case l.Abs.IsZero():
		return strconv.FormatFloat(l.Rel, 'f', -1, 64) + "em"
	case l.Rel == 0:
		return l.Abs.String()
	default:
		return fmt.Sprintf("%sem + %s", strconv.FormatFloat(l.Rel, 'f', -1, 64), l.Abs)
	}
}

// MarshalText implements the text marshaller method.
func (l Linear) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (l *Linear) UnmarshalText(text []byte) error {
	v, err := ParseLinear(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLinear parses either a font-relative term with an "em" suffix or an
// absolute length, optionally both joined by "+".
func ParseLinear(s string) (Linear, error) {
	var out Linear
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		if strings.HasSuffix(term, "em") {
			v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(term, "em")), 64)
			if err != nil {
				return Linear{}, fmt.Errorf("invalid relative term in %q: %w", s, err)
			}
			out.Rel += v
			continue
		}
		abs, err := ParseLength(term)
		if err != nil {
			return Linear{}, err
		}
		out.Abs = out.Abs.Add(abs)
	}
	return out, nil
}
