package parsec

import "sync"

// Fix computes the fixed point of f and runs the resultant parser.
// f receives the result of Fix(f) itself, which it must use to refer
// to the grammar being defined -- this is how a mutually or directly
// recursive grammar is expressed without a mutable cyclic object
// graph.
func Fix[T any](f func(Parser[T]) Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]

	var r Parser[T]
	r = func(s Scanner, index int) Result[T] {
		once.Do(func() {
			p = f(r)
		})

		return p(s, index)
	}

	return r
}

// Forward returns a parser slot that can be bound exactly once via its
// Set method, along with the parser itself. Parsers built from the
// slot before it is Set panic the moment they're invoked rather than
// deadlocking or recursing infinitely --
// this is the "forward declaration" needed by grammars with
// mutually-recursive, rather than self-recursive, productions, where
// Fix's single self-reference isn't enough.
func Forward[T any]() (set func(Parser[T]), p Parser[T]) {
	var bound Parser[T]
	var once sync.Once
	var isSet bool

	set = func(target Parser[T]) {
		once.Do(func() {
			bound = target
			isSet = true
		})
	}

	p = func(s Scanner, index int) Result[T] {
		if !isSet {
			panic("parsec: Forward parser invoked before Set")
		}

		return bound(s, index)
	}

	return set, p
}

// ChainL1 parses one or more occurrences of p, separated by op, and
// returns the value obtained by left-associative application of every
// function op returns to the values p returns. It is the standard way
// to eliminate the left recursion that would otherwise be needed to
// express a left-associative binary operator grammar.
func ChainL1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	var chain func(T) Parser[T]
	chain = func(acc T) Parser[T] {
		return Or(
			Bind(op, func(f func(T, T) T) Parser[T] {
				return Bind(p, func(x T) Parser[T] {
					return chain(f(acc, x))
				})
			}),
			Return(acc),
		)
	}

	return Bind(p, chain)
}
