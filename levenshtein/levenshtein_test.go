package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_EmptyTarget verifies the caller-contract error: an empty
// target is rejected for any query.
func TestDistance_EmptyTarget(t *testing.T) {
	_, _, err := levenshtein.Distance([]byte("ACT"), []byte{}, nil)
	assert.ErrorIs(t, err, levenshtein.ErrEmptyTarget, "empty target must error")

	_, _, err = levenshtein.Distance([]byte{}, []byte{}, nil)
	assert.ErrorIs(t, err, levenshtein.ErrEmptyTarget, "empty target must error even for empty query")
}

// TestDistance_EmptyQuery verifies the degenerate success: distance 0 and
// no distinguished match positions.
func TestDistance_EmptyQuery(t *testing.T) {
	dist, matches, err := levenshtein.Distance([]byte{}, []byte("CGACTGAC"), nil)
	assert.NoError(t, err, "empty query is not an error")
	assert.Equal(t, 0, dist, "empty query aligns at zero cost")
	assert.Empty(t, matches, "no target position is distinguished")
}

// TestDistance_NegativeCost verifies that negative weights are rejected.
func TestDistance_NegativeCost(t *testing.T) {
	opts := levenshtein.DefaultOptions()
	opts.ReplaceCost = -1

	_, _, err := levenshtein.Distance([]byte("A"), []byte("A"), &opts)
	assert.ErrorIs(t, err, levenshtein.ErrNegativeCost, "negative weight must error ErrNegativeCost")
}

// TestDistance_ExactInfixMatch checks the canonical zero-cost case:
// "ACT" occurs inside "CGACTGAC"; trimming "CG" and "GAC" is free.
func TestDistance_ExactInfixMatch(t *testing.T) {
	query, target := []byte("ACT"), []byte("CGACTGAC")

	dist, matches, err := levenshtein.Distance(query, target, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dist, "exact infix occurrence costs nothing")
	require.Len(t, matches, 1, "exactly one zero-cost end position")

	m := matches[0]
	assert.Equal(t, 0, m.Cost)
	assert.Equal(t, 4, m.Position, "match ends at the 'T' of target")
	assert.Equal(t, 2, m.Start(), "match starts at the 'A' of target")
	assert.Equal(t, "010101", m.Trace.String(), "three diagonal steps, no edits")
}

// TestDistance_TieMultiplicity verifies that two disjoint exact
// occurrences both survive, in ascending position order.
func TestDistance_TieMultiplicity(t *testing.T) {
	dist, matches, err := levenshtein.Distance([]byte("AB"), []byte("ABXXAB"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dist)
	require.Len(t, matches, 2, "both occurrences must be reported")
	assert.Equal(t, 1, matches[0].Position, "first occurrence ends at index 1")
	assert.Equal(t, 5, matches[1].Position, "second occurrence ends at index 5")
	assert.Equal(t, "0101", matches[0].Trace.String())
	assert.Equal(t, "0101", matches[1].Trace.String())
}

// TestDistance_StrictImprovementClearing verifies that a later, strictly
// cheaper match voids every earlier tied candidate: "AB" costs 1 ending at
// positions 0, 1 and 2 of "AXAB", then 0 at position 3.
func TestDistance_StrictImprovementClearing(t *testing.T) {
	dist, matches, err := levenshtein.Distance([]byte("AB"), []byte("AXAB"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dist)
	require.Len(t, matches, 1, "higher-cost earlier ties must be cleared")
	assert.Equal(t, 3, matches[0].Position)
}

// TestDistance_TieBreakDeterminism pins the delete > insert > replace
// policy through the recorded trace: "AB" against "CB" must report the
// insert-then-match path, bit for bit.
func TestDistance_TieBreakDeterminism(t *testing.T) {
	dist, matches, err := levenshtein.Distance([]byte("AB"), []byte("CB"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dist)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Position)
	assert.Equal(t, "101", matches[0].Trace.String(), "insert A, then match B")
}

// TestDistance_DeletionInPath exercises a surviving path that consumes a
// target symbol alone: "AB" inside "AXB" keeps match-delete-match as one
// of the three cost-1 ties.
func TestDistance_DeletionInPath(t *testing.T) {
	dist, matches, err := levenshtein.Distance([]byte("AB"), []byte("AXB"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dist)
	require.Len(t, matches, 3, "positions 0, 1 and 2 all tie at cost 1")
	assert.Equal(t, 0, matches[0].Position)
	assert.Equal(t, 1, matches[1].Position)
	assert.Equal(t, 2, matches[2].Position)
	assert.Equal(t, "01001", matches[2].Trace.String(), "match A, delete X, match B")
}

// TestDistance_QueryBitCountInvariant verifies that every reported path
// consumes each query symbol exactly once, across assorted inputs.
func TestDistance_QueryBitCountInvariant(t *testing.T) {
	cases := []struct {
		name          string
		query, target string
	}{
		{"exact", "ACT", "CGACTGAC"},
		{"mismatch", "AB", "CB"},
		{"ties", "AB", "AXB"},
		{"long", "ACGTACGT", "TTTTACGTACGTTTTTGGGACGTTT"},
		{"disjoint", "HELLO", "XXHALLOXXHELLAXX"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, matches, err := levenshtein.Distance([]byte(tc.query), []byte(tc.target), nil)
			require.NoError(t, err)
			require.NotEmpty(t, matches, "non-empty query and target guarantee a match")
			for _, m := range matches {
				assert.Equal(t, len(tc.query), m.Trace.QueryBits(),
					"path ending at %d must consume every query symbol once", m.Position)
			}
		})
	}
}

// TestDistance_Monotonicity verifies that raising any single cost weight
// never lowers the distance, and vice versa.
func TestDistance_Monotonicity(t *testing.T) {
	query, target := []byte("ACGTAC"), []byte("TTACTTGTACCA")

	distWith := func(opts levenshtein.Options) int {
		dist, _, err := levenshtein.Distance(query, target, &opts)
		require.NoError(t, err)

		return dist
	}

	prev := -1
	for c := 0; c <= 3; c++ {
		opts := levenshtein.DefaultOptions()
		opts.InsertCost = c
		d := distWith(opts)
		assert.GreaterOrEqual(t, d, prev, "distance must be monotone in InsertCost")
		prev = d
	}

	prev = -1
	for c := 0; c <= 3; c++ {
		opts := levenshtein.DefaultOptions()
		opts.DeleteCost = c
		d := distWith(opts)
		assert.GreaterOrEqual(t, d, prev, "distance must be monotone in DeleteCost")
		prev = d
	}

	prev = -1
	for c := 0; c <= 3; c++ {
		opts := levenshtein.DefaultOptions()
		opts.ReplaceCost = c
		d := distWith(opts)
		assert.GreaterOrEqual(t, d, prev, "distance must be monotone in ReplaceCost")
		prev = d
	}
}

// TestDistance_GenericElements verifies the engine over a non-byte
// element type (int tokens).
func TestDistance_GenericElements(t *testing.T) {
	query := []int{7, 8, 9}
	target := []int{1, 2, 7, 8, 9, 3}

	dist, matches, err := levenshtein.Distance(query, target, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dist)
	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].Position)
	assert.Equal(t, 2, matches[0].Start())
}

// TestDistance_CustomWeights checks a non-unit configuration: with
// replacement at cost 3, "AB" vs "CB" prefers insert+delete... still the
// cheapest whole-query consumption wins.
func TestDistance_CustomWeights(t *testing.T) {
	opts := levenshtein.DefaultOptions()
	opts.ReplaceCost = 3

	dist, matches, err := levenshtein.Distance([]byte("AB"), []byte("CB"), &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, dist, "insert-then-match path costs one insertion")
	require.NotEmpty(t, matches)
	assert.Equal(t, 1, matches[0].Position)
}
