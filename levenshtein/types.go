// Package levenshtein defines result types and configuration options for
// the infix alignment engine.
//
// Options:
//
//	– InsertCost:  cost of consuming a query symbol with no target symbol.
//	– DeleteCost:  cost of consuming a target symbol with no query symbol.
//	– ReplaceCost: cost of consuming both symbols when they differ.
//
// All weights must be non-negative integers; all default to 1.
//
// Errors (sentinel):
//
//	– ErrEmptyTarget   if the target sequence is empty (caller contract).
//	– ErrNegativeCost  if any cost weight is negative.
//	– ErrTraceMismatch if a backtrace is replayed against sequences it
//	  was not produced from.
package levenshtein

import (
	"errors"

	"github.com/katalvlaran/seqalign/bittrace"
)

// Sentinel errors returned by the infix alignment engine.
var (
	// ErrEmptyTarget indicates the target sequence was empty. A non-empty
	// target is a caller precondition, not a recoverable condition; the
	// engine refuses to proceed.
	ErrEmptyTarget = errors.New("levenshtein: target sequence must be non-empty")

	// ErrNegativeCost indicates a negative cost weight was supplied.
	// Negative weights break the DP minimization and are rejected up front.
	ErrNegativeCost = errors.New("levenshtein: cost weights must be non-negative")

	// ErrTraceMismatch indicates that replaying an Alignment's backtrace
	// against the given query/target did not consume them consistently —
	// the sequences are not the ones the alignment was computed from.
	ErrTraceMismatch = errors.New("levenshtein: backtrace does not replay over the given sequences")
)

// Options configures the infix alignment engine.
//
// InsertCost / DeleteCost / ReplaceCost are the weights of the three edit
// operations. Each must be ≥ 0; Distance returns ErrNegativeCost otherwise.
// A nil *Options passed to Distance is equivalent to DefaultOptions().
type Options struct {
	InsertCost  int // cost of consuming a query symbol alone
	DeleteCost  int // cost of consuming a target symbol alone
	ReplaceCost int // cost of consuming both symbols when they differ
}

// DefaultOptions returns the standard unit-cost configuration:
// every insert, delete and replace costs exactly 1.
func DefaultOptions() Options {
	return Options{
		InsertCost:  1,
		DeleteCost:  1,
		ReplaceCost: 1,
	}
}

// Alignment is one minimal-cost match reported by Distance.
//
// Cost equals the returned distance. Position is the 0-based index into
// the target of the last consumed target symbol. Trace records the edit
// decisions along the path; replay it with Steps, or inspect the raw
// chronological bit sequence via Trace.Render.
type Alignment struct {
	Cost     int            // accumulated edit cost, equals the distance
	Position int            // 0-based target index of the last consumed symbol
	Trace    bittrace.Trace // edit-decision history of this path
}

// Start returns the 0-based target index of the first symbol consumed by
// the alignment. The trace records one 0-bit per consumed target symbol,
// so the span is derived from Position and the trace alone.
func (a Alignment) Start() int {
	targetBits := a.Trace.Len() - a.Trace.QueryBits()

	return a.Position - targetBits + 1
}

// Op identifies one replayed edit operation.
type Op int

const (
	// OpMatch consumes one query and one target symbol that are equal.
	OpMatch Op = iota

	// OpReplace consumes one query and one target symbol that differ.
	OpReplace

	// OpInsert consumes one query symbol with no target symbol.
	OpInsert

	// OpDelete consumes one target symbol with no query symbol.
	OpDelete
)

// String returns the lowercase name of the operation.
func (op Op) String() string {
	switch op {
	case OpMatch:
		return "match"
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Step is one replayed edit operation of an alignment path.
// Query and Target are the consumed indexes; the side an operation does
// not consume is -1 (Target for OpInsert, Query for OpDelete).
type Step struct {
	Op     Op  // which edit operation this step performed
	Query  int // consumed query index, -1 for OpDelete
	Target int // consumed target index, -1 for OpInsert
}
