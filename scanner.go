package parsec

import (
	"regexp"
	"unicode/utf8"
)

// Scanner is an immutable, reusable view over a complete input string,
// indexed by code point rather than by byte. Scanner carries no
// position of its own -- every matching primitive is handed the index
// to match at and reports the index it would advance to -- so the
// same Scanner value can be shared across concurrent parses of the
// same input without synchronization.
//
// Scanner exposes three matching primitives for primitives to use:
//
//  1. MatchString - matching on concrete strings
//  2. MatchRegexp - matching on compiled regular expressions
//  3. MatchRune   - matching on a single code point via predicate
//
// None of these methods advance any state; they report the new index
// the caller should continue from.
type Scanner struct {
	text  string
	runes []rune
}

// NewScanner constructs a Scanner over the provided input string,
// decoding it into code points once up front.
func NewScanner(input string) Scanner {
	return Scanner{text: input, runes: []rune(input)}
}

// Len reports the length of the input, in code points.
func (s Scanner) Len() int {
	return len(s.runes)
}

// Text returns the original input string, byte for byte.
func (s Scanner) Text() string {
	return s.text
}

// Slice returns the code points in [from, to) rendered back to a string.
func (s Scanner) Slice(from, to int) string {
	return string(s.runes[from:to])
}

// MatchString attempts to match target exactly, code point by code
// point, starting at index. It reports the index immediately past the
// match on success.
func (s Scanner) MatchString(index int, target string) (newIndex int, ok bool) {
	want := []rune(target)
	if index+len(want) > len(s.runes) {
		return index, false
	}

	for i, r := range want {
		if s.runes[index+i] != r {
			return index, false
		}
	}

	return index + len(want), true
}

// MatchRegexp attempts to match re anchored at index, returning the
// matched text and the index immediately past it on success.
func (s Scanner) MatchRegexp(index int, re *regexp.Regexp) (matched string, newIndex int, ok bool) {
	rest := string(s.runes[index:])

	loc := re.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return "", index, false
	}

	matched = rest[loc[0]:loc[1]]
	newIndex = index + utf8.RuneCountInString(matched)

	return matched, newIndex, true
}

// MatchRune reads the single code point at index and reports it if
// pred accepts it. It fails at end of input without consulting pred.
func (s Scanner) MatchRune(index int, pred func(rune) bool) (r rune, newIndex int, ok bool) {
	if index >= len(s.runes) {
		return 0, index, false
	}

	r = s.runes[index]
	if !pred(r) {
		return 0, index, false
	}

	return r, index + 1, true
}
