package levenshtein

import "github.com/katalvlaran/seqalign/bittrace"

// element is one DP cell of the infix sweep: the accumulated cost and the
// edit-decision history that produced it. Elements are immutable — every
// transition forks the parent's trace (an O(1) value copy) and returns a
// new element.
type element struct {
	cost  int
	trace bittrace.Trace
}

// del consumes one target symbol without a query symbol (deletion).
func (e element) del(cost int) element {
	res := element{cost: e.cost + cost, trace: e.trace}
	res.trace.Append(false)

	return res
}

// ins consumes one query symbol without a target symbol (insertion).
func (e element) ins(cost int) element {
	res := element{cost: e.cost + cost, trace: e.trace}
	res.trace.Append(true)

	return res
}

// rep consumes both symbols at a mismatch (replacement).
// The target bit is recorded before the query bit; path replay depends on
// this order, do not swap the two appends.
func (e element) rep(cost int) element {
	res := element{cost: e.cost + cost, trace: e.trace}
	res.trace.Append(false)
	res.trace.Append(true)

	return res
}

// eq consumes both symbols at a match; no cost. Same bit order as rep.
func (e element) eq() element {
	res := element{cost: e.cost, trace: e.trace}
	res.trace.Append(false)
	res.trace.Append(true)

	return res
}
