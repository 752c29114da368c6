package parsec

import "sort"

// Expected is the set of short human-readable labels describing what
// input would have let parsing continue at a given position. Labels
// are deduplicated by string identity; render them sorted for a
// deterministic error message.
type Expected map[string]struct{}

// newExpected builds an Expected set from the given labels.
func newExpected(labels ...string) Expected {
	if len(labels) == 0 {
		return nil
	}

	e := make(Expected, len(labels))
	for _, l := range labels {
		e[l] = struct{}{}
	}

	return e
}

// union returns the set union of e and o, favoring neither argument.
func (e Expected) union(o Expected) Expected {
	if len(e) == 0 {
		return o
	}

	if len(o) == 0 {
		return e
	}

	out := make(Expected, len(e)+len(o))
	for l := range e {
		out[l] = struct{}{}
	}

	for l := range o {
		out[l] = struct{}{}
	}

	return out
}

// sorted renders the set as a lexicographically ascending slice.
func (e Expected) sorted() []string {
	out := make([]string, 0, len(e))
	for l := range e {
		out = append(out, l)
	}

	sort.Strings(out)

	return out
}

// diagnostics is the (furthest, expected) pair carried by every Result,
// both success and failure. It is the unit the merge rule operates on.
type diagnostics struct {
	furthest int
	expected Expected
}

// noContribution is the diagnostics value of a Result that has nothing
// to add to the furthest/expected algebra -- a bare success that never
// consulted a failing alternative. Its furthest sentinel of -1 never
// wins a merge against a real failure's furthest (always >= 0), so a
// successful parse never shadows a later, more informative failure
// with its own position and label. Only a Result that itself forwards
// an earlier failure's diagnostics (as alternation does) carries a
// non-sentinel furthest while still succeeding.
var noContribution = diagnostics{furthest: -1}

// merge combines two diagnostics per the furthest-wins, tie-union rule:
// the pair reporting the greater furthest index wins outright; on a tie
// the expected sets are unioned.
func (d diagnostics) merge(o diagnostics) diagnostics {
	switch {
	case d.furthest > o.furthest:
		return d
	case o.furthest > d.furthest:
		return o
	default:
		return diagnostics{furthest: d.furthest, expected: d.expected.union(o.expected)}
	}
}
