package parsec

import (
	"fmt"
	"strings"
)

// Unit is the empty type, used as the result of parsers run only for
// their side effect of consuming input.
type Unit struct{}

// Result is the outcome of one parser run at one position: either a
// Success carrying a value and the new index, or a Failure. Both
// variants carry the diagnostic fields furthest/expected -- the
// furthest index any sub-parser consulted while producing this
// Result, and the set of labels describing what was expected there.
// A successful Result still carries diagnostics so that an enclosing
// alternation can merge them with a later failure and report the most
// informative expectation.
type Result[T any] struct {
	ok       bool
	value    T
	index    int
	furthest int
	expected Expected
}

// OK reports whether the Result represents a successful parse.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the parsed value. It is the zero value of T when the
// Result is a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Index returns the index immediately following a successful parse.
func (r Result[T]) Index() int {
	return r.index
}

func (r Result[T]) diag() diagnostics {
	return diagnostics{furthest: r.furthest, expected: r.expected}
}

func success[T any](index int, value T, d diagnostics) Result[T] {
	return Result[T]{ok: true, value: value, index: index, furthest: d.furthest, expected: d.expected}
}

func failure[T any](d diagnostics) Result[T] {
	return Result[T]{ok: false, furthest: d.furthest, expected: d.expected}
}

// withDiag rewrites r's diagnostic fields, leaving its value/index/ok
// untouched. It is how combinators apply the merge rule to an outgoing
// Result regardless of which sub-result's value was chosen.
func withDiag[T any](r Result[T], d diagnostics) Result[T] {
	r.furthest = d.furthest
	r.expected = d.expected
	return r
}

// Parser wraps an opaque function from (scanner, index) to Result. A
// Parser has no mutable state of its own; every combinator in this
// package produces new Parsers by composing existing ones. Because
// Scanner is an immutable value and Parser holds no state, the same
// Parser can be run concurrently from multiple goroutines.
type Parser[T any] func(s Scanner, index int) Result[T]

// Return builds a parser that always succeeds with v, consuming no
// input and contributing no diagnostics.
func Return[T any](v T) Parser[T] {
	return func(s Scanner, index int) Result[T] {
		return success(index, v, noContribution)
	}
}

// Fail builds a parser that always fails at its starting position,
// reporting label as what was expected there.
func Fail[T any](label string) Parser[T] {
	return func(s Scanner, index int) Result[T] {
		return failure[T](diagnostics{furthest: index, expected: newExpected(label)})
	}
}

// ParseError is raised by Parse when a parser fails to consume the
// input it was given. It carries the input stream, the furthest index
// reached by any sub-parser, and the set of labels describing what
// was expected there.
type ParseError struct {
	Expected Expected
	Stream   string
	Index    int
}

func (e *ParseError) Error() string {
	line, col, err := LineInfoAt(e.Stream, e.Index)
	if err != nil {
		line, col = 0, 0
	}

	labels := e.Expected.sorted()

	switch len(labels) {
	case 0:
		return fmt.Sprintf("parse failed at %d:%d", line, col)
	case 1:
		return fmt.Sprintf("expected '%s' at %d:%d", labels[0], line, col)
	default:
		quoted := make([]string, len(labels))
		for i, l := range labels {
			quoted[i] = fmt.Sprintf("'%s'", l)
		}

		return fmt.Sprintf("expected one of %s at %d:%d", strings.Join(quoted, ", "), line, col)
	}
}

// eof is the primitive that succeeds only at the end of input.
func eof(s Scanner, index int) Result[Unit] {
	if index == s.Len() {
		return success(index, Unit{}, noContribution)
	}

	return failure[Unit](diagnostics{furthest: index, expected: newExpected("EOF")})
}

// Parse runs p at index 0 and then requires the entirety of input to
// have been consumed. On failure it returns a *ParseError carrying the
// diagnostics merged across every attempt made at the furthest
// position reached.
func Parse[T any](p Parser[T], input string) (T, error) {
	s := NewScanner(input)

	res := DiscardRight(p, Parser[Unit](eof))(s, 0)
	if !res.ok {
		var zero T
		return zero, &ParseError{Expected: res.expected, Stream: input, Index: res.furthest}
	}

	return res.value, nil
}

// ParsePartial runs p at index 0 without requiring end of input,
// returning the parsed value alongside the index immediately
// following the consumed portion of the input.
func ParsePartial[T any](p Parser[T], input string) (T, int, error) {
	s := NewScanner(input)

	res := p(s, 0)
	if !res.ok {
		var zero T
		return zero, 0, &ParseError{Expected: res.expected, Stream: input, Index: res.furthest}
	}

	return res.value, res.index, nil
}

// LineInfoAt computes the (line, column) coordinates of index within
// text, counting '\n' occurrences up to but not including index, with
// the column measured from the last line break (or 0). index must lie
// in [0, len(text)] measured in code points; any other value is a
// programmer error and is reported as such.
func LineInfoAt(text string, index int) (line int, column int, err error) {
	runes := []rune(text)
	if index < 0 || index > len(runes) {
		return 0, 0, fmt.Errorf("line_info_at: index %d out of range for input of length %d", index, len(runes))
	}

	lastBreak := -1
	for i := 0; i < index; i++ {
		if runes[i] == '\n' {
			line++
			lastBreak = i
		}
	}

	return line, index - lastBreak - 1, nil
}
