package parsec

// Position is a (line, column) source coordinate, computed on demand
// from a code-point index by LineInfoAt.
type Position struct {
	Line   int
	Column int
}

// Marked pairs a successfully parsed value with the source positions
// immediately before and after it was parsed.
type Marked[T any] struct {
	Start Position
	Value T
	End   Position
}

// Mark runs p and, on success, reports the positions bracketing the
// span it consumed alongside its value. Failure of p propagates
// unchanged.
func Mark[T any](p Parser[T]) Parser[Marked[T]] {
	return func(s Scanner, index int) Result[Marked[T]] {
		r := p(s, index)
		if !r.ok {
			return failure[Marked[T]](r.diag())
		}

		startLine, startCol, _ := LineInfoAt(s.Text(), index)
		endLine, endCol, _ := LineInfoAt(s.Text(), r.index)

		return success(r.index, Marked[T]{
			Start: Position{Line: startLine, Column: startCol},
			Value: r.value,
			End:   Position{Line: endLine, Column: endCol},
		}, r.diag())
	}
}

// Desc replaces a Result's expected set with {label}, but only when
// the Result did not progress past its own starting index -- if p's
// diagnostics point further into the input than where it started, the
// more specific inner diagnostics win per the merge rule. This is how
// an alternation of descriptively-labeled parsers produces a clean
// expectation in its failure message instead of a dump of every leaf
// primitive it tried.
func Desc[T any](p Parser[T], label string) Parser[T] {
	return func(s Scanner, index int) Result[T] {
		r := p(s, index)
		if r.furthest != index {
			return r
		}

		return withDiag(r, diagnostics{furthest: r.furthest, expected: newExpected(label)})
	}
}
