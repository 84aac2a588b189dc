package exec

import (
	"testing"
)

func TestBreakerSoftRequiresPrecedingContent(t *testing.T) {
	var b breaker[string]

	// no content was emitted yet - request must be dropped
	b.soft("gap")
	if item, ok := b.take(); ok {
		t.Errorf("expected no pending item, got %q", item)
	}
}

func TestBreakerKeepsFirstSoftItem(t *testing.T) {
	var b breaker[string]

	b.take() // content
	b.soft("first")
	b.soft("second")
	b.soft("third")

	item, ok := b.take()
	if !ok {
		t.Fatal("expected a pending item")
	}
	if item != "first" {
		t.Errorf("expected armed item to survive later requests, got %q", item)
	}
}

func TestBreakerHardCancelsPending(t *testing.T) {
	var b breaker[string]

	b.take() // content
	b.soft("gap")
	b.hard()

	if item, ok := b.take(); ok {
		t.Errorf("expected hard break to cancel pending item, got %q", item)
	}
}

func TestBreakerTakeDisarms(t *testing.T) {
	var b breaker[string]

	b.take() // content
	b.soft("gap")

	if _, ok := b.take(); !ok {
		t.Fatal("expected a pending item")
	}
	if item, ok := b.take(); ok {
		t.Errorf("expected pending item to be consumed, got %q", item)
	}
}

func TestBreakerSoftAfterHardNeedsNewContent(t *testing.T) {
	var b breaker[string]

	b.take() // content
	b.hard()
	b.soft("gap")
	if item, ok := b.take(); ok {
		t.Errorf("soft item right after hard break must be dropped, got %q", item)
	}

	// now content was emitted again (take above), arming works
	b.soft("gap")
	if item, ok := b.take(); !ok || item != "gap" {
		t.Errorf("expected %q pending after content, got %q (%v)", "gap", item, ok)
	}
}
