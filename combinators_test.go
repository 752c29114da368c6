package parsec_test

import (
	"errors"
	"testing"

	"github.com/stntngo/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThen(t *testing.T) {
	p := parsec.Then(parsec.String("a"), parsec.String("b"))

	got, err := parsec.Parse(p, "ab")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = parsec.Parse(p, "ac")
	require.Error(t, err)
	// a's success contributes nothing to the diagnostics algebra, so
	// only b's failure label survives -- matching the messages "should
	// bubble up" from the internal failing parser.
	assert.Equal(t, "expected 'b' at 0:1", err.Error())
}

func TestBind(t *testing.T) {
	repeatChar := parsec.Bind(parsec.AnyChar, func(r rune) parsec.Parser[string] {
		return parsec.String(string(r) + string(r))
	})

	got, err := parsec.Parse(repeatChar, "aa")
	require.NoError(t, err)
	assert.Equal(t, "aa", got)

	_, err = parsec.Parse(repeatChar, "ab")
	require.Error(t, err)
}

func TestMap(t *testing.T) {
	p := parsec.Map(parsec.AnyChar, func(r rune) string {
		return string(r) + "!"
	})

	got, err := parsec.Parse(p, "x")
	require.NoError(t, err)
	assert.Equal(t, "x!", got)
}

func TestDiscardLeftAndRight(t *testing.T) {
	left := parsec.DiscardLeft(parsec.String("("), parsec.String("x"))
	right := parsec.DiscardRight(parsec.String("x"), parsec.String(")"))

	got, err := parsec.Parse(left, "(x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = parsec.Parse(right, "x)")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestWrap(t *testing.T) {
	p := parsec.Wrap(parsec.String("("), parsec.String("x"), parsec.String(")"))

	got, err := parsec.Parse(p, "(x)")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = parsec.Parse(p, "(x")
	require.Error(t, err)
}

func TestSeq(t *testing.T) {
	p := parsec.Seq(parsec.String("a"), parsec.String("b"), parsec.String("c"))

	got, err := parsec.Parse(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	t.Run("empty sequence succeeds immediately", func(t *testing.T) {
		empty := parsec.Seq[string]()
		got, _, err := parsec.ParsePartial(empty, "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCombine(t *testing.T) {
	digits := parsec.Times(parsec.DecimalDigit, 1, parsec.Unbounded)
	sum := parsec.Combine(digits, func(rs []rune) int {
		total := 0
		for _, r := range rs {
			total += int(r - '0')
		}

		return total
	})

	got, err := parsec.Parse(sum, "123")
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestCombine2(t *testing.T) {
	p := parsec.Combine2(func(a, b string) string { return b + a }, parsec.String("a"), parsec.String("b"))

	got, err := parsec.Parse(p, "ab")
	require.NoError(t, err)
	assert.Equal(t, "ba", got)
}

func TestCombine3(t *testing.T) {
	p := parsec.Combine3(
		func(a, b, c string) string { return c + b + a },
		parsec.String("a"), parsec.String("b"), parsec.String("c"),
	)

	got, err := parsec.Parse(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, "cba", got)
}

func TestTryMap(t *testing.T) {
	digits := parsec.Consumed(parsec.AtLeast(parsec.DecimalDigit, 1))
	tooSmall := errors.New("value must be at least 10")

	p := parsec.TryMap(digits, func(s string) (int, error) {
		n := 0
		for _, r := range s {
			n = n*10 + int(r-'0')
		}

		if n < 10 {
			return 0, tooSmall
		}

		return n, nil
	})

	got, err := parsec.Parse(p, "42")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = parsec.Parse(p, "4")
	require.Error(t, err)
	// the digits parser's own success diagnostics (it could always have
	// consumed one more decimal digit) merge, at the same furthest
	// index, with the conversion failure's label.
	assert.Equal(t, "expected one of 'decimal digit', 'value must be at least 10' at 0:1", err.Error())
}

func TestConcat(t *testing.T) {
	p := parsec.Concat(parsec.String("foo"), parsec.String("bar"))

	got, err := parsec.Parse(p, "foobar")
	require.NoError(t, err)
	assert.Equal(t, "foobar", got)
}
