package exec

import (
	"strings"

	"dtc/geom"
	"dtc/layout"
)

// Env resolves abstract font settings into the concrete shaping request
// carried by text nodes. It is supplied by the embedding program and is
// read-only from the execution core's perspective.
type Env interface {
	// ResolveSize returns the concrete font size for the given settings.
	ResolveSize(font FontState) geom.Length

	// ResolveProps returns the shaping properties for the given settings.
	ResolveProps(font FontState) layout.TextProps
}

// BaseEnv is the default environment: sizes are taken from the state with a
// fallback default, the family chain is the preference list joined with the
// configured fallbacks. Real font lookup happens downstream during shaping.
type BaseEnv struct {
	DefaultSize geom.Length
	Fallback    []string
}

// NewBaseEnv creates an environment with an 11pt default size and a generic
// serif fallback.
func NewBaseEnv() *BaseEnv {
	return &BaseEnv{
		DefaultSize: geom.Pt(11),
		Fallback:    []string{"serif"},
	}
}

func (e *BaseEnv) ResolveSize(font FontState) geom.Length {
	if font.Size.IsZero() {
		return e.DefaultSize
	}
	return font.Size
}

func (e *BaseEnv) ResolveProps(font FontState) layout.TextProps {
	chain := make([]string, 0, len(font.Families)+len(e.Fallback))
	chain = append(chain, font.Families...)
	for _, fam := range e.Fallback {
		if !contains(chain, fam) {
			chain = append(chain, fam)
		}
	}
	return layout.TextProps{
		Family:    strings.Join(chain, ", "),
		Size:      e.ResolveSize(font),
		Strong:    font.Strong,
		Emph:      font.Emph,
		Monospace: len(font.Families) > 0 && font.Families[0] == MonospaceFamily,
	}
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
