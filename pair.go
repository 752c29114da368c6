package parsec

// Pair is a simple A * B product type holding two different subtypes
// in its Left and Right branches.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// MakePair constructs a single Pair from the two provided arguments.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Left: a, Right: b}
}

// Both runs p followed by q and returns both results as a Pair.
func Both[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Combine2(MakePair[A, B], p, q)
}
