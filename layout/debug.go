package layout

import (
	"dtc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// DebugTree renders a stable, human readable dump of the tree. Used by the
// --dump-tree debugging surface and by tests comparing structure.
func (t *Tree) DebugTree() string {
	tw := treeWriter{debug.NewTreeWriter()}

	tw.Line(0, "tree")
	tw.Field(1, "runs", len(t.Runs))
	for i, run := range t.Runs {
		tw.Line(1, "page %d", i)
		tw.Field(2, "width", run.Size.W.String())
		tw.Field(2, "height", run.Size.H.String())
		tw.node(2, run.Child)
	}
	return tw.String()
}

func (tw treeWriter) node(depth int, n Node) {
	switch v := n.(type) {
	case *PadNode:
		tw.Line(depth, "pad")
		tw.Field(depth+1, "left", v.Padding.Left.String())
		tw.Field(depth+1, "top", v.Padding.Top.String())
		tw.Field(depth+1, "right", v.Padding.Right.String())
		tw.Field(depth+1, "bottom", v.Padding.Bottom.String())
		tw.node(depth+1, v.Child)
	case *StackNode:
		tw.Line(depth, "stack main=%s cross=%s children=%d", v.Dirs.Main, v.Dirs.Cross, len(v.Children))
		for _, child := range v.Children {
			tw.stackChild(depth+1, child)
		}
	case *ParNode:
		tw.Line(depth, "par dir=%s line_spacing=%s children=%d", v.Dir, v.LineSpacing, len(v.Children))
		for _, child := range v.Children {
			tw.parChild(depth+1, child)
		}
	case *TextNode:
		tw.Line(depth, "text")
		tw.Field(depth+1, "content", v.Text)
	default:
		tw.Line(depth, "node %T", n)
	}
}

func (tw treeWriter) stackChild(depth int, c StackChild) {
	switch v := c.(type) {
	case StackSpacing:
		tw.Line(depth, "spacing %s", v.Amount)
	case StackAny:
		tw.Line(depth, "child main=%s cross=%s", v.Aligns.Main, v.Aligns.Cross)
		tw.node(depth+1, v.Node)
	}
}

func (tw treeWriter) parChild(depth int, c ParChild) {
	switch v := c.(type) {
	case ParText:
		tw.Line(depth, "text align=%s size=%s family=%s", v.Align, v.Node.Props.Size, v.Node.Props.Family)
		tw.Field(depth+1, "content", v.Node.Text)
	case ParSpacing:
		tw.Line(depth, "spacing %s", v.Amount)
	case ParLinebreak:
		tw.Line(depth, "linebreak")
	case ParAny:
		tw.Line(depth, "any align=%s", v.Align)
		tw.node(depth+1, v.Node)
	}
}
