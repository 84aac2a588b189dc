package geom

import (
	"testing"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "10pt", want: Pt(10)},
		{in: "2.5cm", want: Cm(2.5)},
		{in: "210mm", want: Mm(210)},
		{in: "1in", want: Pt(72)},
		{in: " 11pt ", want: Pt(11)},
		{in: "-3pt", want: Pt(-3)},
		{in: "10", wantErr: true},
		{in: "abcpt", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !got.ApproxEq(tt.want) {
				t.Errorf("ParseLength(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnitConversion(t *testing.T) {
	if !In(1).ApproxEq(Cm(2.54)) {
		t.Error("inch and centimeter disagree")
	}
	if !Cm(1).ApproxEq(Mm(10)) {
		t.Error("centimeter and millimeter disagree")
	}
	if got := Mm(25.4).Pt(); got != 72 {
		t.Errorf("25.4mm = %vpt, want 72pt", got)
	}
}

func TestParseLinear(t *testing.T) {
	tests := []struct {
		in      string
		em      Length
		want    Length
		wantErr bool
	}{
		{in: "1.5em", em: Pt(10), want: Pt(15)},
		{in: "12pt", em: Pt(10), want: Pt(12)},
		{in: "1em + 2pt", em: Pt(10), want: Pt(12)},
		{in: "0.5em+0.5em", em: Pt(10), want: Pt(10)},
		{in: "xxem", wantErr: true},
		{in: "12", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLinear(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLinear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !got.Resolve(tt.em).ApproxEq(tt.want) {
				t.Errorf("ParseLinear(%q).Resolve(%s) = %s, want %s", tt.in, tt.em, got.Resolve(tt.em), tt.want)
			}
		})
	}
}

func TestLinearString(t *testing.T) {
	tests := []struct {
		in   Linear
		want string
	}{
		{in: Rel(1.5), want: "1.5em"},
		{in: Abs(Pt(12)), want: "12pt"},
		{in: Linear{Rel: 1, Abs: Pt(2)}, want: "1em + 2pt"},
		{in: Linear{}, want: "0em"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLengthRoundTrip(t *testing.T) {
	orig := Pt(13.2)
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Length
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !back.ApproxEq(orig) {
		t.Errorf("round trip changed value: %s -> %s", orig, back)
	}
}

func TestResolveSides(t *testing.T) {
	sides := UniformSides(Rel(2))
	got := ResolveSides(sides, Pt(10))
	for _, v := range []Length{got.Left, got.Top, got.Right, got.Bottom} {
		if !v.ApproxEq(Pt(20)) {
			t.Fatalf("expected all sides resolved to 20pt, got %+v", got)
		}
	}
}
