package exec

// breakerState enumerates the three states of the break coalescing machine.
type breakerState int

const (
	// nothing pending and no content emitted since the last hard break
	breakerNone breakerState = iota
	// content has been emitted, a soft break may be armed
	breakerAny
	// a soft break is armed and fires once more content arrives
	breakerSoft
)

// breaker decides whether pending "soft" spacing and break items materialize.
// A soft item is retained only when content precedes it and emitted only when
// content follows it, so no builder output ever starts or ends with a gap and
// no two gaps are ever adjacent, no matter how redundant the event stream is.
type breaker[N any] struct {
	state breakerState
	item  N
}

// soft arms the item. Requests are dropped unless content was just emitted:
// an armed item is never overridden and a gap never opens a sequence.
func (b *breaker[N]) soft(item N) {
	if b.state == breakerAny {
		b.state = breakerSoft
		b.item = item
	}
}

// hard cancels any armed item and suppresses coalescing across the break.
func (b *breaker[N]) hard() {
	var zero N
	b.state = breakerNone
	b.item = zero
}

// take returns the armed item, if any, and notes that content follows.
// Callers invoke it immediately before appending real content.
func (b *breaker[N]) take() (N, bool) {
	var zero N
	if b.state == breakerSoft {
		item := b.item
		b.state = breakerAny
		b.item = zero
		return item, true
	}
	b.state = breakerAny
	return zero, false
}
