package exec

import (
	"testing"

	"dtc/geom"
	"dtc/layout"
)

func testSetup() (Env, State) {
	return NewBaseEnv(), NewState()
}

func TestParBuilderMergesCompatibleText(t *testing.T) {
	env, state := testSetup()
	pb := newParBuilder(env, &state)

	pb.pushText(env, &state, "Hello,")
	pb.pushText(env, &state, " world")

	node, ok := pb.build()
	if !ok {
		t.Fatal("expected a paragraph")
	}
	par := node.(layout.StackAny).Node.(*layout.ParNode)
	if len(par.Children) != 1 {
		t.Fatalf("expected merged single text child, got %d children", len(par.Children))
	}
	text := par.Children[0].(layout.ParText)
	if text.Node.Text != "Hello, world" {
		t.Errorf("expected concatenated text, got %q", text.Node.Text)
	}
}

func TestParBuilderKeepsIncompatibleTextApart(t *testing.T) {
	env, state := testSetup()
	pb := newParBuilder(env, &state)

	pb.pushText(env, &state, "normal ")
	state.Font.Strong = true
	pb.pushText(env, &state, "strong")

	node, ok := pb.build()
	if !ok {
		t.Fatal("expected a paragraph")
	}
	par := node.(layout.StackAny).Node.(*layout.ParNode)
	if len(par.Children) != 2 {
		t.Fatalf("expected two text children, got %d", len(par.Children))
	}
}

func TestParBuilderNoMergeAcrossLinebreak(t *testing.T) {
	env, state := testSetup()
	pb := newParBuilder(env, &state)

	pb.pushText(env, &state, "a")
	pb.pushHard(layout.ParLinebreak{})
	pb.pushText(env, &state, "b")

	node, _ := pb.build()
	par := node.(layout.StackAny).Node.(*layout.ParNode)
	if len(par.Children) != 3 {
		t.Fatalf("expected [text, linebreak, text], got %d children", len(par.Children))
	}
	if _, ok := par.Children[1].(layout.ParLinebreak); !ok {
		t.Errorf("expected a linebreak in the middle, got %T", par.Children[1])
	}
}

func TestParBuilderEmptyNeverMaterializes(t *testing.T) {
	env, state := testSetup()
	pb := newParBuilder(env, &state)

	// a stray soft spacing with no surrounding content
	pb.pushSoft(layout.ParSpacing{Amount: geom.Pt(5)})

	if _, ok := pb.build(); ok {
		t.Error("paragraph with no children must not materialize")
	}
}

func TestParBuilderDropsTrailingSoftItem(t *testing.T) {
	env, state := testSetup()
	pb := newParBuilder(env, &state)

	pb.pushText(env, &state, "a")
	pb.pushSoft(layout.ParSpacing{Amount: geom.Pt(5)})

	node, _ := pb.build()
	par := node.(layout.StackAny).Node.(*layout.ParNode)
	if len(par.Children) != 1 {
		t.Fatalf("trailing soft spacing must be discarded, got %d children", len(par.Children))
	}
}

func TestStackBuilderFlushesTrailingParagraph(t *testing.T) {
	env, state := testSetup()
	sb := newStackBuilder(env, &state)

	sb.par.pushText(env, &state, "tail")

	stack := sb.build()
	if len(stack.Children) != 1 {
		t.Fatalf("expected trailing paragraph to be flushed, got %d children", len(stack.Children))
	}
}

func TestStackBuilderPendingSoftFlushedBeforeParagraph(t *testing.T) {
	env, state := testSetup()
	sb := newStackBuilder(env, &state)

	sb.par.pushText(env, &state, "a")
	sb.parbreak(env, &state)
	sb.pushSoft(layout.StackSpacing{Amount: geom.Pt(13)})
	sb.par.pushText(env, &state, "b")

	stack := sb.build()
	if len(stack.Children) != 3 {
		t.Fatalf("expected [par, spacing, par], got %d children", len(stack.Children))
	}
	if sp, ok := stack.Children[1].(layout.StackSpacing); !ok || !sp.Amount.ApproxEq(geom.Pt(13)) {
		t.Errorf("expected 13pt spacing between paragraphs, got %+v", stack.Children[1])
	}
}

func TestStackBuilderDirections(t *testing.T) {
	env, state := testSetup()
	state.Lang.Dir = geom.DirRtl

	stack := newStackBuilder(env, &state).build()
	if stack.Dirs.Main != geom.DirTtb {
		t.Errorf("block axis must be top-to-bottom, got %s", stack.Dirs.Main)
	}
	if stack.Dirs.Cross != geom.DirRtl {
		t.Errorf("cross axis must follow language direction, got %s", stack.Dirs.Cross)
	}
}

func TestPageBuilderEmission(t *testing.T) {
	env, state := testSetup()

	content := newStackBuilder(env, &state)
	content.par.pushText(env, &state, "x")

	tests := []struct {
		name  string
		hard  bool
		keep  bool
		child *layout.StackNode
		want  bool
	}{
		{name: "empty discarded", hard: false, keep: false, child: newStackBuilder(env, &state).build(), want: false},
		{name: "empty kept but soft", hard: false, keep: true, child: newStackBuilder(env, &state).build(), want: false},
		{name: "empty hard not kept", hard: true, keep: false, child: newStackBuilder(env, &state).build(), want: false},
		{name: "empty hard kept", hard: true, keep: true, child: newStackBuilder(env, &state).build(), want: true},
		{name: "content always emitted", hard: false, keep: false, child: content.build(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := newPageBuilder(&state, tt.hard)
			run, ok := pb.build(tt.child, tt.keep)
			if ok != tt.want {
				t.Fatalf("emitted = %v, want %v", ok, tt.want)
			}
			if !ok {
				return
			}
			if !run.Size.W.ApproxEq(state.Page.Size.W) || !run.Size.H.ApproxEq(state.Page.Size.H) {
				t.Errorf("page size not taken from state: %+v", run.Size)
			}
			if _, isPad := run.Child.(*layout.PadNode); !isPad {
				t.Errorf("page content must be wrapped in margins, got %T", run.Child)
			}
		})
	}
}
