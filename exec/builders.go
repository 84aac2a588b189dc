package exec

import (
	"dtc/geom"
	"dtc/layout"
)

// pageBuilder tracks the geometry the next finished page will be emitted
// with. Geometry is fixed when the page is started - later state mutations
// affect only subsequent pages.
type pageBuilder struct {
	size    geom.Size
	padding geom.Sides[geom.Linear]
	// hard records whether this page was started by an explicit page break
	hard bool
}

func newPageBuilder(state *State, hard bool) *pageBuilder {
	return &pageBuilder{
		size:    state.Page.Size,
		padding: state.Page.Margins,
		hard:    hard,
	}
}

// build wraps the finished stack in the page margins and emits a page run.
// Empty pages are discarded unless the caller insists on keeping a page that
// was started explicitly, so runs of page breaks with no content between
// them collapse to nothing.
func (b *pageBuilder) build(child *layout.StackNode, keep bool) (layout.PageRun, bool) {
	if len(child.Children) == 0 && !(keep && b.hard) {
		return layout.PageRun{}, false
	}
	return layout.PageRun{
		Size:  b.size,
		Child: &layout.PadNode{Padding: b.padding, Child: child},
	}, true
}

// stackBuilder accumulates the block-level children of one flow. It owns the
// currently open paragraph: paragraphs are never opened explicitly, they are
// whatever inline content accumulated since the last block-level break.
type stackBuilder struct {
	dirs     geom.Gen[geom.Dir]
	children []layout.StackChild
	last     breaker[layout.StackChild]
	par      *parBuilder
}

func newStackBuilder(env Env, state *State) *stackBuilder {
	return &stackBuilder{
		dirs: geom.NewGen(geom.DirTtb, state.Lang.Dir),
		par:  newParBuilder(env, state),
	}
}

func (b *stackBuilder) pushSoft(child layout.StackChild) {
	b.last.soft(child)
}

func (b *stackBuilder) pushHard(child layout.StackChild) {
	b.last.hard()
	b.children = append(b.children, child)
}

// parbreak closes the open paragraph and starts a fresh one seeded from
// state. The closed paragraph becomes a block child only if it has content;
// a pending soft block item is flushed first in that case.
func (b *stackBuilder) parbreak(env Env, state *State) {
	par := b.par
	b.par = newParBuilder(env, state)
	if node, ok := par.build(); ok {
		if item, pending := b.last.take(); pending {
			b.children = append(b.children, item)
		}
		b.children = append(b.children, node)
	}
}

// build finalizes the trailing paragraph and returns the finished stack.
// The builder must not be used afterwards.
func (b *stackBuilder) build() *layout.StackNode {
	if node, ok := b.par.build(); ok {
		if item, pending := b.last.take(); pending {
			b.children = append(b.children, item)
		}
		b.children = append(b.children, node)
	}
	return &layout.StackNode{Dirs: b.dirs, Children: b.children}
}

// parBuilder accumulates the inline children of one paragraph. Direction,
// alignment and line spacing are captured once at creation; per-run text
// properties are resolved from the live state on every text push.
type parBuilder struct {
	aligns      geom.Gen[geom.Align]
	dir         geom.Dir
	lineSpacing geom.Length
	children    []layout.ParChild
	last        breaker[layout.ParChild]
}

func newParBuilder(env Env, state *State) *parBuilder {
	em := env.ResolveSize(state.Font)
	return &parBuilder{
		aligns:      state.Aligns,
		dir:         state.Lang.Dir,
		lineSpacing: state.Par.Leading.Resolve(em),
	}
}

// push appends an inline child verbatim, flushing a pending soft item first.
func (b *parBuilder) push(child layout.ParChild) {
	if item, pending := b.last.take(); pending {
		b.children = append(b.children, item)
	}
	b.children = append(b.children, child)
}

// pushText appends text, merging into the previous child when it is a text
// run with identical alignment and identical resolved properties. A
// paragraph therefore never contains two adjacent runs that could merge.
func (b *parBuilder) pushText(env Env, state *State, text string) {
	if item, pending := b.last.take(); pending {
		b.children = append(b.children, item)
	}

	align := state.Aligns.Cross
	props := env.ResolveProps(state.Font)

	if len(b.children) > 0 {
		if prev, ok := b.children[len(b.children)-1].(layout.ParText); ok {
			if prev.Align == align && prev.Node.Props == props {
				prev.Node.Text += text
				return
			}
		}
	}

	b.children = append(b.children, layout.ParText{
		Node:  &layout.TextNode{Text: text, Props: props},
		Align: align,
	})
}

func (b *parBuilder) pushSoft(child layout.ParChild) {
	b.last.soft(child)
}

func (b *parBuilder) pushHard(child layout.ParChild) {
	b.last.hard()
	b.children = append(b.children, child)
}

// build finalizes the paragraph. Paragraphs with no children at all never
// materialize, so a stray inline spacing request with no surrounding text
// produces nothing.
func (b *parBuilder) build() (layout.StackChild, bool) {
	if len(b.children) == 0 {
		return nil, false
	}
	node := &layout.ParNode{
		Dir:         b.dir,
		LineSpacing: b.lineSpacing,
		Children:    b.children,
	}
	return layout.StackAny{Node: node, Aligns: b.aligns}, true
}
