package bittrace

import "math/bits"

// segmentBits is the width W of one packed segment.
const segmentBits = 64

// segment is one frozen, full 64-bit block of the history chain.
// A segment is never mutated after it is linked into a chain, so any
// number of Traces may share a chain suffix without synchronization.
type segment struct {
	bitmap uint64   // 64 recorded events, oldest at bit 0
	prev   *segment // next-older segment, nil at the chain's origin
}

// Trace records a sequence of consume-events ("query symbol consumed" /
// "target symbol consumed") without storing them as a flat growable slice.
//
// The zero value is an empty Trace, ready to use.
//
// A Trace is a value type: assigning it forks the history in O(1).
// The head segment (bitmap, nbits) is copied by value and the frozen
// chain is shared by reference. Only the holder of a Trace value may
// append to it, so the mutable head is never aliased between holders.
type Trace struct {
	bitmap uint64   // current head segment, oldest event at bit 0
	nbits  int      // valid bits in the head segment, 0 ≤ nbits < 64
	prev   *segment // frozen chain, newest segment first (shared)
}

// Append records one consume-event: true means a query symbol was
// consumed, false means a target symbol was consumed.
//
// When the head segment fills up, it is frozen onto the chain (sharing
// the existing chain tail by reference) and the head resets to empty.
// O(1) amortized; allocates only on the freeze, once per 64 events.
func (t *Trace) Append(queryConsumed bool) {
	if queryConsumed {
		t.bitmap |= 1 << uint(t.nbits)
	}
	t.nbits++

	if t.nbits == segmentBits {
		t.prev = &segment{bitmap: t.bitmap, prev: t.prev}
		t.bitmap = 0
		t.nbits = 0
	}
}

// Len returns the total number of events recorded in the Trace.
func (t Trace) Len() int {
	n := t.nbits
	for s := t.prev; s != nil; s = s.prev {
		n += segmentBits
	}

	return n
}

// QueryBits returns how many of the recorded events consumed a query
// symbol (the count of 1-bits). For any complete alignment path this
// equals the query length: every query symbol is consumed exactly once.
func (t Trace) QueryBits() int {
	n := bits.OnesCount64(t.bitmap)
	for s := t.prev; s != nil; s = s.prev {
		n += bits.OnesCount64(s.bitmap)
	}

	return n
}

// Render returns the recorded events in chronological order, oldest
// first, as ASCII '1' (query symbol consumed) and '0' (target symbol
// consumed) bytes. len(result) == t.Len().
//
// Pure: Render never mutates the Trace. O(total events).
func (t Trace) Render() []byte {
	// 1) Collect the frozen chain (stored newest-first).
	var frozen []*segment
	for s := t.prev; s != nil; s = s.prev {
		frozen = append(frozen, s)
	}

	// 2) Emit oldest segment first; within a segment bit 0 is oldest.
	buf := make([]byte, 0, len(frozen)*segmentBits+t.nbits)
	for i := len(frozen) - 1; i >= 0; i-- {
		buf = appendBits(buf, frozen[i].bitmap, segmentBits)
	}

	// 3) The head segment holds the newest events.
	return appendBits(buf, t.bitmap, t.nbits)
}

// String renders the Trace as a '0'/'1' string in chronological order.
func (t Trace) String() string {
	return string(t.Render())
}

// appendBits flushes the n lowest bits of bitmap onto dst, bit 0 first.
func appendBits(dst []byte, bitmap uint64, n int) []byte {
	for i := 0; i < n; i++ {
		if bitmap&(1<<uint(i)) != 0 {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}

	return dst
}
