package parsec

import (
	"regexp"
	"sort"
	"unicode"
)

// String succeeds if the input at index begins with s, consuming it
// and returning it as the value. On failure the expected set is {s};
// a success contributes nothing to the diagnostics algebra.
func String(target string) Parser[string] {
	return func(s Scanner, index int) Result[string] {
		newIndex, ok := s.MatchString(index, target)
		if !ok {
			return failure[string](diagnostics{furthest: index, expected: newExpected(target)})
		}

		return success(newIndex, target, noContribution)
	}
}

// Regexp delegates to the host regex engine anchored at index. On a
// match it consumes the matched text and returns it; on no match it
// fails with the pattern's source as the expected label.
func Regexp(re *regexp.Regexp) Parser[string] {
	return func(s Scanner, index int) Result[string] {
		matched, newIndex, ok := s.MatchRegexp(index, re)
		if !ok {
			return failure[string](diagnostics{furthest: index, expected: newExpected(re.String())})
		}

		return success(newIndex, matched, noContribution)
	}
}

// TestChar reads one code point at index; it fails at end of input or
// when predicate rejects the code point, reporting label as what was
// expected, and otherwise succeeds consuming the one code point.
func TestChar(predicate func(rune) bool, label string) Parser[rune] {
	return func(s Scanner, index int) Result[rune] {
		r, newIndex, ok := s.MatchRune(index, predicate)
		if !ok {
			return failure[rune](diagnostics{furthest: index, expected: newExpected(label)})
		}

		return success(newIndex, r, noContribution)
	}
}

// AnyChar accepts any single code point.
var AnyChar = TestChar(func(rune) bool { return true }, "any character")

// CharFrom accepts any code point present in chars, labeling the
// failure with the bracketed rendering of the set.
func CharFrom(chars string) Parser[rune] {
	set := make(map[rune]struct{})
	for _, r := range chars {
		set[r] = struct{}{}
	}

	return TestChar(func(r rune) bool {
		_, ok := set[r]
		return ok
	}, "["+chars+"]")
}

// StringFrom accepts any one of the given strings, trying longer
// alternatives first so that a prefix like "Mr" does not shadow a
// longer match like "Mr.".
func StringFrom(targets ...string) Parser[string] {
	sorted := append([]string(nil), targets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	ps := make([]Parser[string], len(sorted))
	for i, t := range sorted {
		ps[i] = String(t)
	}

	return Alt(ps...)
}

// Whitespace accepts a single Unicode whitespace code point.
var Whitespace = TestChar(unicode.IsSpace, "whitespace")

// Letter accepts a single Unicode letter code point.
var Letter = TestChar(unicode.IsLetter, "letter")

// Digit accepts any Unicode decimal digit code point (the ones
// unicode.IsDigit classifies as digits) and, in addition, the
// superscript and subscript digits such as '¹', which Unicode files
// outside that category. See DecimalDigit for the ASCII-only
// equivalent.
var Digit = TestChar(func(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(scriptDigits, r)
}, "digit")

// scriptDigits holds the superscript and subscript digit code points.
var scriptDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
	},
	LatinOffset: 2,
}

// DecimalDigit accepts only the ASCII code points '0' through '9'.
var DecimalDigit = TestChar(func(r rune) bool {
	return r >= '0' && r <= '9'
}, "decimal digit")
