package parsec_test

import (
	"testing"

	"github.com/stntngo/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	p := parsec.Mark(parsec.Many(parsec.Letter))

	got, err := parsec.Parse(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, parsec.Position{Line: 0, Column: 0}, got.Start)
	assert.Equal(t, []rune{'a', 'b', 'c'}, got.Value)
	assert.Equal(t, parsec.Position{Line: 0, Column: 3}, got.End)

	t.Run("failure propagates unmarked", func(t *testing.T) {
		_, err := parsec.Parse(parsec.Mark(parsec.String("x")), "y")
		require.Error(t, err)
	})
}

func TestDesc(t *testing.T) {
	p := parsec.Desc(parsec.String("x"), "an x")

	_, err := parsec.Parse(p, "y")
	require.Error(t, err)
	assert.Equal(t, "expected 'an x' at 0:0", err.Error())

	t.Run("inner diagnostics win once progress was made", func(t *testing.T) {
		inner := parsec.Then(parsec.String("x"), parsec.String("y"))
		p := parsec.Desc(inner, "xy pair")

		_, err := parsec.Parse(p, "xz")
		require.Error(t, err)
		assert.Equal(t, "expected 'y' at 0:1", err.Error())
	})
}
