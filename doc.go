// Package seqalign is a small toolkit for approximate (fuzzy) substring
// alignment between a short query sequence and a long target sequence.
//
// 🚀 What is seqalign?
//
//	A pure-Go library that solves the infix Levenshtein problem:
//	edit-distance alignment where gaps at the start and end of the
//	target are free, but the whole query must be consumed.
//	  • Deleting a prefix or suffix of the target costs nothing
//	  • Every end position achieving the minimum cost is reported
//	  • Each match carries a replayable backtrace of edit decisions
//
// ✨ Why choose seqalign?
//
//   - Rolling-row DP — O(len(query)) working memory for the sweep
//   - Persistent bit-packed backtraces — forking history is O(1),
//     never a path-length copy
//   - Deterministic tie-break policy — reproducible results
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	bittrace/    — persistent, append-only, bit-packed edit-decision log
//	levenshtein/ — the infix alignment engine and path replay
//
// Quick ASCII example:
//
//	query  =      A C T
//	target = C G  A C T  G A C
//	              └─┴─┴── distance 0, ending at target index 4
//
// Dive into the per-package doc.go files for algorithm outlines,
// complexity notes and usage examples.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
