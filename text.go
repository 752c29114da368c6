package parsec

// SkipWS ignores any whitespace surrounding the value parsed by p.
func SkipWS[T any](p Parser[T]) Parser[T] {
	return Wrap(SkipMany(Whitespace), p, SkipMany(Whitespace))
}

// TrailingWS requires and discards one or more whitespace code points
// following the value parsed by p.
func TrailingWS[T any](p Parser[T]) Parser[T] {
	return DiscardRight(p, SkipMany1(Whitespace))
}

// PrecedingWS requires and discards one or more whitespace code points
// preceding the value parsed by p.
func PrecedingWS[T any](p Parser[T]) Parser[T] {
	return DiscardLeft(SkipMany1(Whitespace), p)
}

// Consumed runs p and returns the exact text it consumed rather than
// p's own value.
func Consumed[T any](p Parser[T]) Parser[string] {
	return func(s Scanner, index int) Result[string] {
		r := p(s, index)
		if !r.ok {
			return failure[string](r.diag())
		}

		return success(r.index, s.Slice(index, r.index), r.diag())
	}
}

// TakeWhile accepts input for as long as f returns true and returns
// the accepted code points as a string. It never fails: if f rejects
// the very first code point, it returns an empty string.
func TakeWhile(f func(rune) bool) Parser[string] {
	return Consumed(Many(TestChar(f, "")))
}

// TakeWhile1 is TakeWhile but requires f to accept at least one code
// point, failing with label otherwise.
func TakeWhile1(f func(rune) bool, label string) Parser[string] {
	return Consumed(AtLeast(TestChar(f, label), 1))
}

// TakeTill accepts input for as long as f returns false.
func TakeTill(f func(rune) bool) Parser[string] {
	return TakeWhile(negate(f))
}

// TakeTill1 is TakeTill but requires at least one code point to have
// matched before f rejects.
func TakeTill1(f func(rune) bool, label string) Parser[string] {
	return TakeWhile1(negate(f), label)
}

func negate(f func(rune) bool) func(rune) bool {
	return func(r rune) bool { return !f(r) }
}
