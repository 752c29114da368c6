package parsec

// Or runs a; if it succeeds, its result is returned. If a fails, b
// runs from the same starting index as a -- full backtracking, with
// any consumption by a before it failed discarded. Either way the two
// branches' diagnostics merge into the outgoing Result regardless of
// which branch's value is chosen. Callers wanting committed
// alternation must lift common prefixes out of a and b themselves.
func Or[T any](a, b Parser[T]) Parser[T] {
	return func(s Scanner, index int) Result[T] {
		ra := a(s, index)
		if ra.ok {
			return ra
		}

		rb := b(s, index)
		return withDiag(rb, ra.diag().merge(rb.diag()))
	}
}

// Alt generalizes Or left to right across ps. Alt() with no arguments
// always fails with an empty expected set.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s Scanner, index int) Result[T] {
		if len(ps) == 0 {
			return failure[T](diagnostics{furthest: index})
		}

		d := noContribution
		for _, p := range ps {
			r := p(s, index)
			d = d.merge(r.diag())
			if r.ok {
				return withDiag(r, d)
			}
		}

		return failure[T](d)
	}
}

// Choice behaves like Alt but replaces the merged expected set with a
// single label, msg, when every branch fails without progressing past
// the starting index. It is useful at the seams of a grammar where
// naming the whole production reads better than listing every leaf
// alternative.
func Choice[T any](msg string, ps ...Parser[T]) Parser[T] {
	return Desc(Alt(ps...), msg)
}
