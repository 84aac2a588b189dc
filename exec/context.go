// Package exec implements the execution stage of the document compiler: it
// consumes the stream of structural events an evaluated template produces
// and incrementally assembles the renderer-ready layout tree of pages,
// stacks, paragraphs and text runs.
package exec

import (
	"strings"

	"go.uber.org/zap"

	"dtc/diag"
	"dtc/geom"
	"dtc/layout"
	"dtc/syntax"
)

// MonospaceFamily is the generic family name SetMonospace prepends to the
// font preference list.
const MonospaceFamily = "monospace"

// maxGroupDepth caps structural recursion through ExecGroup. Document
// nesting is user input, a runaway depth must not exhaust the stack.
const maxGroupDepth = 256

// Template is the contract of the external evaluator: executing it drives
// the context with push and break events in document order.
type Template interface {
	Exec(ctx *Context)
}

// TemplateFunc adapts a plain function to the Template interface.
type TemplateFunc func(ctx *Context)

func (f TemplateFunc) Exec(ctx *Context) { f(ctx) }

// Context threads the mutable execution state through the event stream. It
// owns the active page and stack builders, the finished page runs and the
// collected diagnostics. A single logical pass owns the context exclusively:
// nested scopes borrow it through ExecGroup and restore everything they swap
// out before returning.
type Context struct {
	// Env supplies resolved font metrics for the active state.
	Env Env
	// State is the live formatting state.
	State State
	// Diags collects execution diagnostics.
	Diags diag.Set

	tree layout.Tree
	// page holds the metrics of the page being built. While a nested group
	// executes it is nil - groups never own page geometry.
	page  *pageBuilder
	stack *stackBuilder

	log      *zap.Logger
	depth    int
	finished bool
}

// NewContext creates an execution context with a base state. The logger may
// be nil.
func NewContext(env Env, state State, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := &Context{
		Env:   env,
		State: state,
		log:   log,
	}
	ctx.page = newPageBuilder(&ctx.State, true)
	ctx.stack = newStackBuilder(env, &ctx.State)
	return ctx
}

// Diag records a diagnostic.
func (c *Context) Diag(d diag.Diag) {
	c.Diags.Insert(d)
}

// SetMonospace prepends the monospace family to the font preference list.
func (c *Context) SetMonospace() {
	c.State.Font.PrependFamily(MonospaceFamily)
}

// ExecGroup executes a template in an isolated scope and returns the result
// as a stack node. The formatting state is snapshotted and restored, and the
// page context is hidden for the duration so nested content cannot issue
// page breaks.
func (c *Context) ExecGroup(template Template) *layout.StackNode {
	if c.depth >= maxGroupDepth {
		c.Diag(diag.Error(syntax.Detached(), "maximum group nesting depth (%d) exceeded", maxGroupDepth))
		return &layout.StackNode{Dirs: geom.NewGen(geom.DirTtb, c.State.Lang.Dir)}
	}
	c.depth++

	snapshot := c.State.Clone()
	page := c.page
	c.page = nil
	outer := c.stack
	c.stack = newStackBuilder(c.Env, &c.State)

	template.Exec(c)

	c.State = snapshot
	c.page = page
	inner := c.stack
	c.stack = outer
	c.depth--
	return inner.build()
}

// Push routes a node into the open paragraph with the current cross
// alignment.
func (c *Context) Push(node layout.Node) {
	align := c.State.Aligns.Cross
	c.stack.par.push(layout.ParAny{Node: node, Align: align})
}

// PushWordSpace pushes a word space into the open paragraph. Word spaces are
// soft: they materialize only between two pieces of content.
func (c *Context) PushWordSpace() {
	em := c.Env.ResolveSize(c.State.Font)
	amount := c.State.Par.WordSpacing.Resolve(em)
	c.stack.par.pushSoft(layout.ParSpacing{Amount: amount})
}

// PushText pushes text into the open paragraph, splitting it into lines at
// newlines. A carriage return directly followed by a line feed counts as a
// single boundary, so embedded newlines produce exactly one forced line
// break each.
func (c *Context) PushText(text string) {
	var buf strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			i++
		}
		if isNewline(r) {
			c.stack.par.pushText(c.Env, &c.State, buf.String())
			buf.Reset()
			c.Linebreak()
			continue
		}
		buf.WriteRune(r)
	}
	c.stack.par.pushText(c.Env, &c.State, buf.String())
}

// PushSpacing pushes spacing into the paragraph or the stack depending on
// the axis. Block-axis spacing always separates paragraphs, so the open
// paragraph is closed first.
func (c *Context) PushSpacing(axis geom.GenAxis, amount geom.Length) {
	switch axis {
	case geom.GenAxisMain:
		c.stack.parbreak(c.Env, &c.State)
		c.stack.pushHard(layout.StackSpacing{Amount: amount})
	case geom.GenAxisCross:
		c.stack.par.pushHard(layout.ParSpacing{Amount: amount})
	}
}

// Linebreak applies a forced line break.
func (c *Context) Linebreak() {
	c.stack.par.pushHard(layout.ParLinebreak{})
}

// Parbreak applies a forced paragraph break. The paragraph gap is soft:
// consecutive breaks with no content between them collapse to a single gap.
func (c *Context) Parbreak() {
	em := c.Env.ResolveSize(c.State.Font)
	amount := c.State.Par.Spacing.Resolve(em)
	c.stack.parbreak(c.Env, &c.State)
	c.stack.pushSoft(layout.StackSpacing{Amount: amount})
}

// Pagebreak applies a forced page break. The finished page is appended to
// the tree unless it is empty and not kept. Inside a nested group there is
// no page to break - the request is diagnosed and ignored so the rest of
// the document keeps executing.
func (c *Context) Pagebreak(keep, hard bool, source syntax.Span) {
	if c.page == nil {
		c.Diag(diag.Error(source, "cannot modify page from here"))
		c.log.Debug("Page break ignored inside group", zap.Stringer("span", source))
		return
	}
	page := c.page
	c.page = newPageBuilder(&c.State, hard)
	stack := c.stack
	c.stack = newStackBuilder(c.Env, &c.State)
	if run, ok := page.build(stack.build(), keep); ok {
		c.tree.Runs = append(c.tree.Runs, run)
	}
}

// Finish ends execution and returns the layout tree together with all
// collected diagnostics. Only the top-level pass may call it; calling it
// from a nested group or twice is a caller bug, not a document error.
func (c *Context) Finish() diag.Pass[*layout.Tree] {
	if c.page == nil || c.finished {
		panic("exec: Finish called without an active page context")
	}
	c.finished = true
	c.Pagebreak(true, false, syntax.Detached())
	c.log.Debug("Execution finished",
		zap.Int("pages", len(c.tree.Runs)),
		zap.Int("diagnostics", c.Diags.Len()))
	return diag.NewPass(&c.tree, c.Diags)
}

// isNewline reports whether the rune terminates a line, matching the
// Unicode mandatory break set.
func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
