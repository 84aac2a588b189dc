package exec

import (
	"slices"

	"golang.org/x/text/language"

	"dtc/geom"
)

// State bundles the formatting settings active at one point of the event
// stream. It has value semantics: entering a nested scope snapshots it with
// Clone and restores the snapshot on exit, so mutations inside the scope
// never leak into the parent.
type State struct {
	Font   FontState
	Par    ParState
	Page   PageState
	Aligns geom.Gen[geom.Align]
	Lang   LangState
}

// Clone returns a deep snapshot of the state.
func (s State) Clone() State {
	s.Font.Families = slices.Clone(s.Font.Families)
	return s
}

// FontState describes the text settings subsequent text runs are shaped with.
type FontState struct {
	// Families is the font preference list, most preferred first.
	Families []string
	Size     geom.Length
	Strong   bool
	Emph     bool
}

// PrependFamily puts a family at the front of the preference list. The list
// is copied first, state snapshots taken earlier stay untouched.
func (f *FontState) PrependFamily(name string) {
	f.Families = slices.Insert(slices.Clone(f.Families), 0, name)
}

// ParState describes paragraph metrics. All values are font-relative linear
// expressions so they track font size changes inside nested scopes.
type ParState struct {
	// Leading is the spacing between lines of a paragraph.
	Leading geom.Linear
	// Spacing is the gap inserted between paragraphs.
	Spacing geom.Linear
	// WordSpacing is the width of a word space.
	WordSpacing geom.Linear
}

// PageState describes page geometry for pages started under this state.
type PageState struct {
	Size    geom.Size
	Margins geom.Sides[geom.Linear]
}

// LangState describes the active language and the text direction derived
// from it.
type LangState struct {
	Tag language.Tag
	Dir geom.Dir
}

// scripts written right-to-left, keyed by ISO 15924 code
var rtlScripts = map[string]struct{}{
	"Adlm": {},
	"Arab": {},
	"Hebr": {},
	"Mand": {},
	"Nkoo": {},
	"Syrc": {},
	"Thaa": {},
}

// NewLangState parses a BCP-47 tag and derives the writing direction from
// its likely script.
func NewLangState(tag string) (LangState, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return LangState{}, err
	}
	ls := LangState{Tag: t, Dir: geom.DirLtr}
	if script, _ := t.Script(); script.String() != "" {
		if _, rtl := rtlScripts[script.String()]; rtl {
			ls.Dir = geom.DirRtl
		}
	}
	return ls, nil
}

// NewState returns execution defaults: A4 pages with 2.5cm margins, an 11pt
// serif font and conventional paragraph metrics. The configuration layer
// normally derives the initial state from user settings instead.
func NewState() State {
	return State{
		Font: FontState{
			Families: []string{"serif"},
			Size:     geom.Pt(11),
		},
		Par: ParState{
			Leading:     geom.Rel(0.5),
			Spacing:     geom.Rel(1.2),
			WordSpacing: geom.Rel(0.25),
		},
		Page: PageState{
			Size:    geom.Size{W: geom.Mm(210), H: geom.Mm(297)},
			Margins: geom.UniformSides(geom.Abs(geom.Cm(2.5))),
		},
		Aligns: geom.NewGen(geom.AlignStart, geom.AlignStart),
		Lang:   LangState{Tag: language.English, Dir: geom.DirLtr},
	}
}
