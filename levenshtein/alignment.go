package levenshtein

// Steps replays an Alignment's backtrace against the query and target it
// was computed from, returning the concrete edit operations in
// chronological order (oldest first).
//
// The backtrace records one bit per consumed symbol: 1 for a query
// symbol, 0 for a target symbol. A 0-bit immediately followed by a 1-bit
// consumes both sides in one diagonal step — OpMatch when the symbols are
// equal, OpReplace otherwise. A lone 1-bit is an OpInsert, a lone 0-bit
// an OpDelete.
//
// Steps returns ErrTraceMismatch when the replay does not consume exactly
// len(query) query symbols and the target span ending at a.Position —
// i.e. when the sequences are not the ones the alignment came from.
func Steps[T comparable](a Alignment, query, target []T) ([]Step, error) {
	bits := a.Trace.Render()

	qi, ti := 0, a.Start()
	if ti < 0 || ti > len(target) {
		return nil, ErrTraceMismatch
	}

	steps := make([]Step, 0, len(bits))
	for i := 0; i < len(bits); i++ {
		switch {
		case bits[i] == '0' && i+1 < len(bits) && bits[i+1] == '1':
			// Diagonal: target symbol then query symbol.
			if qi >= len(query) || ti >= len(target) {
				return nil, ErrTraceMismatch
			}
			op := OpReplace
			if query[qi] == target[ti] {
				op = OpMatch
			}
			steps = append(steps, Step{Op: op, Query: qi, Target: ti})
			qi++
			ti++
			i++ // the 1-bit belongs to this step

		case bits[i] == '1':
			if qi >= len(query) {
				return nil, ErrTraceMismatch
			}
			steps = append(steps, Step{Op: OpInsert, Query: qi, Target: -1})
			qi++

		default:
			if ti >= len(target) {
				return nil, ErrTraceMismatch
			}
			steps = append(steps, Step{Op: OpDelete, Query: -1, Target: ti})
			ti++
		}
	}

	// Every query symbol must be consumed exactly once, and the last
	// consumed target symbol must sit at a.Position.
	if qi != len(query) || ti != a.Position+1 {
		return nil, ErrTraceMismatch
	}

	return steps, nil
}
