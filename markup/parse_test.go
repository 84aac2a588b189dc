package markup

import (
	"strings"
	"testing"

	"dtc/diag"
	"dtc/exec"
	"dtc/geom"
	"dtc/layout"
)

func execute(t *testing.T, src string) diag.Pass[*layout.Tree] {
	t.Helper()
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("unable to parse template: %v", err)
	}
	ctx := exec.NewContext(exec.NewBaseEnv(), exec.NewState(), nil)
	doc.Exec(ctx)
	return ctx.Finish()
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "not xml", src: "<doc><unclosed</doc>"},
		{name: "no root", src: "  "},
		{name: "wrong root", src: "<body>text</body>"},
		{name: "bad spacing amount", src: `<doc><vspace amount="wide"/></doc>`},
		{name: "bad keep attribute", src: `<doc><pagebreak keep="perhaps"/></doc>`},
		{name: "bad font size", src: `<doc><font size="big">x</font></doc>`},
		{name: "bad alignment", src: `<doc><align main="justify">x</align></doc>`},
		{name: "bad language tag", src: `<doc><lang tag="no-such-tag-at-all!">x</lang></doc>`},
		{name: "page width without height", src: `<doc><page width="100pt"/></doc>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Errorf("expected parse of %q to fail", tt.src)
			}
		})
	}
}

func TestWordSplitting(t *testing.T) {
	pass := execute(t, "<doc>  hello\n\t world  </doc>")

	par := singlePar(t, pass.Output)
	if len(par.Children) != 3 {
		t.Fatalf("expected [text, spacing, text], got %d children", len(par.Children))
	}
	first := par.Children[0].(layout.ParText)
	last := par.Children[2].(layout.ParText)
	if first.Node.Text != "hello" || last.Node.Text != "world" {
		t.Errorf("unexpected words: %q, %q", first.Node.Text, last.Node.Text)
	}
}

func TestInterElementWhitespace(t *testing.T) {
	// space around <font> must produce exactly one word space on each side
	pass := execute(t, `<doc>a <font strong="true">b</font> c</doc>`)

	par := singlePar(t, pass.Output)
	var kinds []string
	for _, child := range par.Children {
		switch child.(type) {
		case layout.ParText:
			kinds = append(kinds, "text")
		case layout.ParSpacing:
			kinds = append(kinds, "space")
		default:
			kinds = append(kinds, "other")
		}
	}
	want := "text space text space text"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("children = %q, want %q", got, want)
	}
}

func TestFontScopeIsIsolated(t *testing.T) {
	pass := execute(t, `<doc>plain <font strong="true" size="2em">strong</font> plain</doc>`)

	par := singlePar(t, pass.Output)
	var texts []layout.ParText
	for _, child := range par.Children {
		if text, ok := child.(layout.ParText); ok {
			texts = append(texts, text)
		}
	}
	if len(texts) != 3 {
		t.Fatalf("expected three text runs, got %d", len(texts))
	}
	if texts[0].Node.Props.Strong || texts[2].Node.Props.Strong {
		t.Error("strong setting leaked out of <font> scope")
	}
	if !texts[1].Node.Props.Strong {
		t.Error("strong setting not applied inside <font>")
	}
	if !texts[1].Node.Props.Size.ApproxEq(geom.Pt(22)) {
		t.Errorf("relative font size not resolved against outer size: %s", texts[1].Node.Props.Size)
	}
}

func TestParagraphAndPageBreaks(t *testing.T) {
	pass := execute(t, `<doc>one<p/>two<pagebreak/>three</doc>`)

	if len(pass.Output.Runs) != 2 {
		t.Fatalf("expected two pages, got %d", len(pass.Output.Runs))
	}
	first := pass.Output.Runs[0].Child.(*layout.PadNode).Child.(*layout.StackNode)
	if len(first.Children) != 3 {
		t.Errorf("expected [par, spacing, par] on first page, got %d children", len(first.Children))
	}
}

func TestPageElementChangesGeometry(t *testing.T) {
	pass := execute(t, `<doc>before<page width="100pt" height="200pt" margin="5pt"/>after</doc>`)

	runs := pass.Output.Runs
	if len(runs) != 2 {
		t.Fatalf("expected two pages, got %d", len(runs))
	}
	// page one keeps the default geometry, page two uses the new one
	if runs[0].Size.W.ApproxEq(geom.Pt(100)) {
		t.Error("new geometry must not affect the already open page")
	}
	if !runs[1].Size.W.ApproxEq(geom.Pt(100)) || !runs[1].Size.H.ApproxEq(geom.Pt(200)) {
		t.Errorf("new geometry not applied to next page: %+v", runs[1].Size)
	}
}

func TestGroupEmbedsInParagraph(t *testing.T) {
	pass := execute(t, `<doc>a <group><align cross="center">b</align></group> c</doc>`)

	par := singlePar(t, pass.Output)
	var embedded *layout.StackNode
	for _, child := range par.Children {
		if any, ok := child.(layout.ParAny); ok {
			embedded = any.Node.(*layout.StackNode)
		}
	}
	if embedded == nil {
		t.Fatal("expected embedded group stack in paragraph")
	}
	inner := embedded.Children[0].(layout.StackAny).Node.(*layout.ParNode)
	if inner.Children[0].(layout.ParText).Align != geom.AlignCenter {
		t.Error("alignment inside group not applied")
	}
}

func TestVerbatimKeepsLineBreaks(t *testing.T) {
	pass := execute(t, "<doc><text>line one\nline two</text></doc>")

	par := singlePar(t, pass.Output)
	var breaks int
	for _, child := range par.Children {
		if _, ok := child.(layout.ParLinebreak); ok {
			breaks++
		}
	}
	if breaks != 1 {
		t.Errorf("expected one forced line break, got %d", breaks)
	}
}

func TestUnknownElementWarns(t *testing.T) {
	pass := execute(t, `<doc>text<widget/></doc>`)

	list := pass.Diags.List()
	if len(list) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(list))
	}
	if list[0].Level != diag.LevelWarning || !strings.Contains(list[0].Message, "widget") {
		t.Errorf("unexpected diagnostic: %s", list[0])
	}
}

func TestLangSwitchesDirection(t *testing.T) {
	// paragraph direction is captured when the paragraph starts, so the
	// language switch must be followed by a paragraph break to take effect
	pass := execute(t, `<doc><lang tag="he"><p/>shalom</lang></doc>`)

	stack := pass.Output.Runs[0].Child.(*layout.PadNode).Child.(*layout.StackNode)
	par := stack.Children[0].(layout.StackAny).Node.(*layout.ParNode)
	if par.Dir != geom.DirRtl {
		t.Errorf("expected right-to-left paragraph for Hebrew, got %s", par.Dir)
	}
}

func singlePar(t *testing.T, tree *layout.Tree) *layout.ParNode {
	t.Helper()
	if len(tree.Runs) != 1 {
		t.Fatalf("expected exactly one page, got %d", len(tree.Runs))
	}
	stack, ok := tree.Runs[0].Child.(*layout.PadNode).Child.(*layout.StackNode)
	if !ok {
		t.Fatal("expected stack under page padding")
	}
	if len(stack.Children) != 1 {
		t.Fatalf("expected exactly one paragraph, got %d children", len(stack.Children))
	}
	return stack.Children[0].(layout.StackAny).Node.(*layout.ParNode)
}
