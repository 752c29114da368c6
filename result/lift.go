package result

// Lift promotes an error-returning function into one returning a Result.
func Lift[A, B any](f func(A) (B, error)) func(A) Result[B] {
	return func(a A) Result[B] {
		b, err := f(a)
		return result[B]{value: b, err: err}
	}
}

// Lift2 promotes a 2-ary error-returning function into one returning
// a Result.
func Lift2[A, B, C any](f func(A, B) (C, error)) func(A, B) Result[C] {
	return func(a A, b B) Result[C] {
		c, err := f(a, b)
		return result[C]{value: c, err: err}
	}
}

// Lift3 promotes a 3-ary error-returning function into one returning
// a Result.
func Lift3[A, B, C, D any](f func(A, B, C) (D, error)) func(A, B, C) Result[D] {
	return func(a A, b B, c C) Result[D] {
		d, err := f(a, b, c)
		return result[D]{value: d, err: err}
	}
}
