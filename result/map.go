package result

// Map applies f to res's wrapped value. If res already wraps an
// error, f is never called and the error passes through unchanged.
func Map[A, B any](f func(A) (B, error), res Result[A]) Result[B] {
	value, err := res.Unwrap()
	if err != nil {
		return result[B]{err: err}
	}

	out, err := f(value)

	return result[B]{value: out, err: err}
}
