// Package markup implements the XML template frontend: it parses a small
// markup vocabulary into a template tree whose execution drives the exec
// context with push and break events. It exists for the command line surface
// and for end-to-end exercising of the execution stage - real template
// evaluation is expected to be supplied by an embedding program.
package markup

import (
	"dtc/diag"
	"dtc/exec"
	"dtc/geom"
	"dtc/syntax"
)

// node is one evaluatable element of a parsed template.
type node interface {
	exec(ctx *exec.Context)
}

// Doc is a parsed template document. It implements exec.Template.
type Doc struct {
	children []node
}

// Exec drives the context with the document's events in document order.
func (d *Doc) Exec(ctx *exec.Context) {
	for _, child := range d.children {
		child.exec(ctx)
	}
}

// execScoped executes children with the formatting state snapshotted around
// them, the way styling elements isolate their effect.
func execScoped(ctx *exec.Context, children []node, mutate func(ctx *exec.Context)) {
	snapshot := ctx.State.Clone()
	mutate(ctx)
	for _, child := range children {
		child.exec(ctx)
	}
	ctx.State = snapshot
}

// wordsNode holds free-flowing character data. Runs of whitespace between
// words become soft word spaces.
type wordsNode struct {
	words []string
}

func (n wordsNode) exec(ctx *exec.Context) {
	for i, w := range n.words {
		if i > 0 {
			ctx.PushWordSpace()
		}
		ctx.PushText(w)
	}
}

// wordSpaceNode is a soft word space emitted for whitespace adjacent to
// other content. The break automaton drops it unless content actually
// precedes and follows, so emitting one speculatively is always safe.
type wordSpaceNode struct{}

func (wordSpaceNode) exec(ctx *exec.Context) { ctx.PushWordSpace() }

// verbatimNode holds text pushed exactly as written, including embedded
// newlines which the context turns into forced line breaks.
type verbatimNode struct {
	text string
}

func (n verbatimNode) exec(ctx *exec.Context) {
	ctx.PushText(n.text)
}

type parbreakNode struct{}

func (parbreakNode) exec(ctx *exec.Context) { ctx.Parbreak() }

type linebreakNode struct{}

func (linebreakNode) exec(ctx *exec.Context) { ctx.Linebreak() }

// spacingNode inserts explicit spacing along one axis. The amount may be
// font-relative and is resolved against the font size active at execution
// time.
type spacingNode struct {
	axis   geom.GenAxis
	amount geom.Linear
}

func (n spacingNode) exec(ctx *exec.Context) {
	em := ctx.Env.ResolveSize(ctx.State.Font)
	ctx.PushSpacing(n.axis, n.amount.Resolve(em))
}

type pagebreakNode struct {
	keep bool
	span syntax.Span
}

func (n pagebreakNode) exec(ctx *exec.Context) {
	ctx.Pagebreak(n.keep, true, n.span)
}

// groupNode executes its body in an isolated scope and embeds the resulting
// stack into the open paragraph.
type groupNode struct {
	body []node
}

func (n groupNode) exec(ctx *exec.Context) {
	inner := ctx.ExecGroup(exec.TemplateFunc(func(ctx *exec.Context) {
		for _, child := range n.body {
			child.exec(ctx)
		}
	}))
	ctx.Push(inner)
}

// fontNode applies font settings to its body.
type fontNode struct {
	size     *geom.Linear
	families []string
	strong   *bool
	emph     *bool
	mono     bool
	body     []node
}

func (n fontNode) exec(ctx *exec.Context) {
	execScoped(ctx, n.body, func(ctx *exec.Context) {
		if n.size != nil {
			em := ctx.Env.ResolveSize(ctx.State.Font)
			ctx.State.Font.Size = n.size.Resolve(em)
		}
		if len(n.families) > 0 {
			ctx.State.Font.Families = n.families
		}
		if n.strong != nil {
			ctx.State.Font.Strong = *n.strong
		}
		if n.emph != nil {
			ctx.State.Font.Emph = *n.emph
		}
		if n.mono {
			ctx.SetMonospace()
		}
	})
}

// alignNode applies alignment to its body.
type alignNode struct {
	main  *geom.Align
	cross *geom.Align
	body  []node
}

func (n alignNode) exec(ctx *exec.Context) {
	execScoped(ctx, n.body, func(ctx *exec.Context) {
		if n.main != nil {
			ctx.State.Aligns.Main = *n.main
		}
		if n.cross != nil {
			ctx.State.Aligns.Cross = *n.cross
		}
	})
}

// langNode applies a language (and its writing direction) to its body.
type langNode struct {
	lang exec.LangState
	body []node
}

func (n langNode) exec(ctx *exec.Context) {
	execScoped(ctx, n.body, func(ctx *exec.Context) {
		ctx.State.Lang = n.lang
	})
}

// pageNode mutates the page setup. The new geometry takes effect on the next
// page started, matching how page builders snapshot geometry at creation.
type pageNode struct {
	size    *geom.Size
	margins *geom.Linear
	span    syntax.Span
}

func (n pageNode) exec(ctx *exec.Context) {
	if n.size != nil {
		ctx.State.Page.Size = *n.size
	}
	if n.margins != nil {
		ctx.State.Page.Margins = geom.UniformSides(*n.margins)
	}
	// start a fresh page so the settings apply immediately
	ctx.Pagebreak(false, false, n.span)
}

// unknownNode reports an element the vocabulary does not know. Execution
// continues, the element's content is skipped.
type unknownNode struct {
	tag  string
	span syntax.Span
}

func (n unknownNode) exec(ctx *exec.Context) {
	ctx.Diag(diag.Warning(n.span, "unknown element <%s>", n.tag))
}
