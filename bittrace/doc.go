// Package bittrace provides a persistent, append-only, bit-packed log of
// alignment edit decisions.
//
// 🚀 What is bittrace?
//
//	Every cell of a dynamic-programming alignment sweep needs the full
//	history of edit decisions that led to it, so the winning paths can be
//	reconstructed afterwards.  Storing that history as a flat slice would
//	cost O(path length) per cell copy — and the sweep copies histories on
//	every single transition.  A Trace instead packs decisions into 64-bit
//	segments: a single mutable head segment owned by the holder, plus an
//	immutable, structurally shared chain of frozen segments behind it.
//
// ✨ Key properties:
//
//   - Forking a Trace is a plain value copy: two scalars and one pointer.
//     The frozen chain is never walked, copied, or mutated.
//   - Appending is O(1) amortized; at most one small allocation per 64
//     appended events (the segment freeze).
//   - Frozen segments are immutable and may be shared by any number of
//     live Traces; the garbage collector reclaims a segment when the last
//     referencing Trace dies.
//
// Bit semantics:
//
//	1 — a query symbol was consumed at this step
//	0 — a target symbol was consumed at this step
//
// Rendering returns the events in chronological order (oldest first),
// regardless of how they are packed internally.
//
// Complexity:
//
//   - Append: O(1) amortized
//   - Fork (value copy): O(1)
//   - Render / Len / QueryBits: O(total events)
package bittrace
