package parsec

import "strings"

// Then runs a, then runs b at the resulting index, and returns b's
// Result with diagnostics merged from both a and b. On failure of a,
// a's failure propagates unchanged. This is avram's `>>` operator.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(s Scanner, index int) Result[B] {
		ra := a(s, index)
		if !ra.ok {
			return failure[B](ra.diag())
		}

		rb := b(s, ra.index)
		return withDiag(rb, ra.diag().merge(rb.diag()))
	}
}

// Bind runs p, passes its result to f, runs the parser f produces, and
// returns that parser's Result with diagnostics merged from both p and
// the produced parser. f is only ever invoked on success.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s Scanner, index int) Result[B] {
		ra := p(s, index)
		if !ra.ok {
			return failure[B](ra.diag())
		}

		rb := f(ra.value)(s, ra.index)
		return withDiag(rb, ra.diag().merge(rb.diag()))
	}
}

// Map replaces a successful result's value with f(value); it has no
// effect on diagnostics since it consults no additional input.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s Scanner, index int) Result[B] {
		ra := p(s, index)
		if !ra.ok {
			return failure[B](ra.diag())
		}

		return success(ra.index, f(ra.value), ra.diag())
	}
}

// DiscardLeft runs p, discards its value, then runs q and returns its
// result. It is identical to Then, named for symmetry with
// DiscardRight at call sites that read left-to-right.
func DiscardLeft[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Then(p, q)
}

// DiscardRight runs p, then runs q, discards q's value, and returns
// p's value merged with q's diagnostics. This is avram's `<<`
// operator.
func DiscardRight[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(s Scanner, index int) Result[A] {
		ra := p(s, index)
		if !ra.ok {
			return failure[A](ra.diag())
		}

		rb := q(s, ra.index)
		if !rb.ok {
			return failure[A](ra.diag().merge(rb.diag()))
		}

		return success(rb.index, ra.value, ra.diag().merge(rb.diag()))
	}
}

// Wrap runs left, discards its value, runs p, runs right, discards its
// value, and returns p's result.
func Wrap[A, B, C any](left Parser[A], p Parser[B], right Parser[C]) Parser[B] {
	return DiscardRight(DiscardLeft(left, p), right)
}

// Seq runs each parser in ps in order, threading the index, and
// collects their values into an ordered slice. Diagnostics merge
// across every attempt. An empty Seq succeeds immediately with an
// empty slice.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(s Scanner, index int) Result[[]T] {
		out := make([]T, 0, len(ps))
		d := noContribution

		for _, p := range ps {
			r := p(s, index)
			d = d.merge(r.diag())
			if !r.ok {
				return failure[[]T](d)
			}

			out = append(out, r.value)
			index = r.index
		}

		return success(index, out, d)
	}
}

// Combine maps a sequence-producing parser through f, the uniformly
// typed realization of avram's `a.combine(f)`: f receives the
// collected slice rather than a variadic unpacking of it.
func Combine[T, R any](p Parser[[]T], f func([]T) R) Parser[R] {
	return Map(p, f)
}

// Combine2 lifts a binary function into a parser by running p1 then
// p2 and applying f to their results in order.
func Combine2[A, B, R any](f func(A, B) R, p1 Parser[A], p2 Parser[B]) Parser[R] {
	return func(s Scanner, index int) Result[R] {
		ra := p1(s, index)
		if !ra.ok {
			return failure[R](ra.diag())
		}

		rb := p2(s, ra.index)
		d := ra.diag().merge(rb.diag())
		if !rb.ok {
			return failure[R](d)
		}

		return success(rb.index, f(ra.value, rb.value), d)
	}
}

// Combine3 lifts a ternary function into a parser analogously to
// Combine2.
func Combine3[A, B, C, R any](f func(A, B, C) R, p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[R] {
	return func(s Scanner, index int) Result[R] {
		ra := p1(s, index)
		if !ra.ok {
			return failure[R](ra.diag())
		}

		rb := p2(s, ra.index)
		d := ra.diag().merge(rb.diag())
		if !rb.ok {
			return failure[R](d)
		}

		rc := p3(s, rb.index)
		d = d.merge(rc.diag())
		if !rc.ok {
			return failure[R](d)
		}

		return success(rc.index, f(ra.value, rb.value, rc.value), d)
	}
}

// TryMap runs p and then applies the fallible function f to its
// value. If f returns an error, the error's text becomes the failure
// label reported at the position immediately following p -- this is
// the bridge used when a successfully-parsed token turns out to be
// semantically invalid, such as an out-of-range numeral.
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return Bind(p, func(a A) Parser[B] {
		return func(s Scanner, index int) Result[B] {
			b, err := f(a)
			if err != nil {
				return failure[B](diagnostics{furthest: index, expected: newExpected(err.Error())})
			}

			return success(index, b, noContribution)
		}
	})
}

// Concat runs a then b and joins their matched text, realizing
// avram's `a + b` operator for string-valued parsers.
func Concat(a, b Parser[string]) Parser[string] {
	return Combine2(func(x, y string) string {
		var sb strings.Builder
		sb.WriteString(x)
		sb.WriteString(y)
		return sb.String()
	}, a, b)
}
