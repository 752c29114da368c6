package parsec

// Unbounded marks the upper bound of a repetition as infinite.
const Unbounded = -1

// Times applies p repeatedly: first exactly min times, where any
// failure in that prefix fails the whole repeat; then up to max-min
// further times (or without limit when max is Unbounded), stopping
// successfully the first time p fails and merging that failing
// attempt's diagnostics into the success. The collected values are
// returned in order.
func Times[T any](p Parser[T], min, max int) Parser[[]T] {
	return func(s Scanner, index int) Result[[]T] {
		out := make([]T, 0, maxCap(min))
		d := noContribution

		for i := 0; i < min; i++ {
			r := p(s, index)
			d = d.merge(r.diag())
			if !r.ok {
				return failure[[]T](d)
			}

			out = append(out, r.value)
			index = r.index
		}

		for max == Unbounded || len(out) < max {
			r := p(s, index)
			d = d.merge(r.diag())
			if !r.ok {
				break
			}

			out = append(out, r.value)
			index = r.index
		}

		return success(index, out, d)
	}
}

func maxCap(n int) int {
	if n < 0 {
		return 0
	}

	return n
}

// Many runs p zero or more times.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Times(p, 0, Unbounded)
}

// TimesExact runs p exactly n times.
func TimesExact[T any](p Parser[T], n int) Parser[[]T] {
	return Times(p, n, n)
}

// AtMost runs p at most n times.
func AtMost[T any](p Parser[T], n int) Parser[[]T] {
	return Times(p, 0, n)
}

// AtLeast runs p at least n times, with no upper bound.
func AtLeast[T any](p Parser[T], n int) Parser[[]T] {
	return Times(p, n, Unbounded)
}

// SepBy parses p (sep p)* with the number of p occurrences constrained
// to [min, max] (max == Unbounded for no upper bound). No trailing
// separator is permitted: once a separator matches, a following p is
// required or the whole parse fails. With max == 0 the parser succeeds
// immediately with an empty slice without consulting input.
func SepBy[T, S any](p Parser[T], sep Parser[S], min, max int) Parser[[]T] {
	return func(s Scanner, index int) Result[[]T] {
		if max == 0 {
			return success(index, []T{}, noContribution)
		}

		d := noContribution

		first := p(s, index)
		d = d.merge(first.diag())
		if !first.ok {
			if min == 0 {
				return success(index, []T{}, d)
			}

			return failure[[]T](d)
		}

		out := []T{first.value}
		index = first.index
		count := 1

		for max == Unbounded || count < max {
			rsep := sep(s, index)
			d = d.merge(rsep.diag())
			if !rsep.ok {
				break
			}

			relem := p(s, rsep.index)
			d = d.merge(relem.diag())
			if !relem.ok {
				return failure[[]T](d)
			}

			out = append(out, relem.value)
			index = relem.index
			count++
		}

		if count < min {
			return failure[[]T](d)
		}

		return success(index, out, d)
	}
}

// SepBy1 is SepBy with min fixed at 1 and no upper bound.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return SepBy(p, sep, 1, Unbounded)
}

// Count runs p exactly n times, returning a slice of its results. It
// differs from TimesExact only in that it reads as a verb at call
// sites built around a fixed repetition count known ahead of time,
// such as a length-prefixed field.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return TimesExact(p, n)
}

// ManyTill runs p zero or more times until end succeeds, returning the
// slice of p's results. end is not itself consumed into the result.
func ManyTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return func(s Scanner, index int) Result[[]T] {
		out := make([]T, 0)
		d := noContribution

		for {
			re := end(s, index)
			d = d.merge(re.diag())
			if re.ok {
				return success(index, out, d)
			}

			rp := p(s, index)
			d = d.merge(rp.diag())
			if !rp.ok {
				return failure[[]T](d)
			}

			out = append(out, rp.value)
			index = rp.index
		}
	}
}

// SkipMany runs p zero or more times, discarding its results.
func SkipMany[T any](p Parser[T]) Parser[Unit] {
	return Map(Many(p), func([]T) Unit { return Unit{} })
}

// SkipMany1 runs p one or more times, discarding its results.
func SkipMany1[T any](p Parser[T]) Parser[Unit] {
	return Map(AtLeast(p, 1), func([]T) Unit { return Unit{} })
}
