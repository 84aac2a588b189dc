package syntax

import (
	"testing"
)

func TestSpanJoin(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{name: "overlapping", a: NewSpan(1, 5), b: NewSpan(3, 8), want: NewSpan(1, 8)},
		{name: "disjoint", a: NewSpan(10, 12), b: NewSpan(1, 2), want: NewSpan(1, 12)},
		{name: "left detached", a: Detached(), b: NewSpan(3, 4), want: NewSpan(3, 4)},
		{name: "right detached", a: NewSpan(3, 4), b: Detached(), want: NewSpan(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Join(tt.b); got != tt.want {
				t.Errorf("Join = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanString(t *testing.T) {
	if got := NewSpan(3, 7).String(); got != "3..7" {
		t.Errorf("String() = %q", got)
	}
	if got := Detached().String(); got != "<detached>" {
		t.Errorf("detached String() = %q", got)
	}
	if !Detached().IsDetached() || NewSpan(0, 0).IsDetached() {
		t.Error("IsDetached misclassifies spans")
	}
}
