package parsec_test

import (
	"testing"

	"github.com/stntngo/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var x, y string

	xy := parsec.Generate(func(env *parsec.Env) int {
		x = parsec.Yield(env, parsec.String("x"))
		y = parsec.Yield(env, parsec.String("y"))
		return 3
	})

	got, err := parsec.Parse(xy, "xy")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, "x", x)
	assert.Equal(t, "y", y)
}

func TestGenerateReturnParser(t *testing.T) {
	example := parsec.GenerateChain(func(env *parsec.Env) parsec.Parser[string] {
		parsec.Yield(env, parsec.String("x"))
		return parsec.String("y")
	})

	got, err := parsec.Parse(example, "xy")
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestGenerateDesc(t *testing.T) {
	thing := parsec.GenerateDesc("a thing", func(env *parsec.Env) parsec.Unit {
		parsec.Yield(env, parsec.String("t"))
		return parsec.Unit{}
	})

	_, err := parsec.Parse(thing, "x")
	require.Error(t, err)
	assert.Equal(t, "expected 'a thing' at 0:0", err.Error())
}

func TestGenerateDefaultDesc(t *testing.T) {
	// No default desc is applied to a bare generator -- the internal
	// parsers' own messages should bubble up.
	thing := parsec.Generate(func(env *parsec.Env) parsec.Unit {
		parsec.Yield(env, parsec.String("a"))
		parsec.Yield(env, parsec.String("b"))
		return parsec.Unit{}
	})

	_, err := parsec.Parse(thing, "ax")
	require.Error(t, err)
	assert.Equal(t, "expected 'b' at 0:1", err.Error())
}

func TestGenerateBacktracking(t *testing.T) {
	ranPastY := false

	xy := parsec.Generate(func(env *parsec.Env) string {
		parsec.Yield(env, parsec.String("x"))
		parsec.Yield(env, parsec.String("y"))
		ranPastY = true
		return "xy"
	})

	got, err := parsec.Parse(parsec.Or(xy, parsec.String("z")), "z")
	require.NoError(t, err)
	assert.Equal(t, "z", got)
	assert.False(t, ranPastY, "generator body must not resume past its failing yield")
}
