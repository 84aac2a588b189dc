// Package layout defines the renderer-ready tree the execution stage
// produces: a sequence of page runs, each holding padded block content made
// of stacks, paragraphs and text runs. Nodes are assembled by the exec
// package and are not modified once a page run is finished.
package layout

import (
	"dtc/geom"
)

// Node is a layout tree node. The concrete set is closed - downstream
// layouting switches over it exhaustively.
type Node interface {
	isNode()
}

// Tree is the finished layout tree: the ordered sequence of page runs.
type Tree struct {
	Runs []PageRun
}

// PageRun is one finished page: its size and the padded block content.
type PageRun struct {
	Size  geom.Size
	Child Node
}

// PadNode wraps its child with padding on all four sides.
type PadNode struct {
	Padding geom.Sides[geom.Linear]
	Child   Node
}

func (*PadNode) isNode() {}

// StackNode arranges block-level children along the main axis.
type StackNode struct {
	// Dirs carries the block flow directions: main is the direction
	// paragraphs stack in, cross the direction text runs in.
	Dirs     geom.Gen[geom.Dir]
	Children []StackChild
}

func (*StackNode) isNode() {}

// StackChild is a block-level child: spacing or an aligned node.
type StackChild interface {
	isStackChild()
}

// StackSpacing is an absolute gap between block-level children.
type StackSpacing struct {
	Amount geom.Length
}

func (StackSpacing) isStackChild() {}

// StackAny holds an arbitrary node with its alignment on both axes.
type StackAny struct {
	Node   Node
	Aligns geom.Gen[geom.Align]
}

func (StackAny) isStackChild() {}

// ParNode holds the inline content of one paragraph.
type ParNode struct {
	Dir         geom.Dir
	LineSpacing geom.Length
	Children    []ParChild
}

func (*ParNode) isNode() {}

// ParChild is an inline child: a text run, spacing, a forced line break or
// an embedded node.
type ParChild interface {
	isParChild()
}

// ParText is a run of text with uniform properties.
type ParText struct {
	Node  *TextNode
	Align geom.Align
}

func (ParText) isParChild() {}

// ParSpacing is an absolute gap between inline children.
type ParSpacing struct {
	Amount geom.Length
}

func (ParSpacing) isParChild() {}

// ParLinebreak forces a line break inside the paragraph.
type ParLinebreak struct{}

func (ParLinebreak) isParChild() {}

// ParAny embeds an arbitrary node into the paragraph flow.
type ParAny struct {
	Node  Node
	Align geom.Align
}

func (ParAny) isParChild() {}

// TextNode owns a run of text and the properties it should be shaped with.
// The text is appended to while the enclosing paragraph is being built and
// frozen once the paragraph is finished.
type TextNode struct {
	Text  string
	Props TextProps
}

func (*TextNode) isNode() {}

// TextProps is the resolved shaping request for a run of text. It is a
// comparable value: two adjacent runs merge exactly when their props and
// alignment are equal.
type TextProps struct {
	// Family is the resolved font preference chain, first match wins
	// downstream.
	Family    string
	Size      geom.Length
	Strong    bool
	Emph      bool
	Monospace bool
}
