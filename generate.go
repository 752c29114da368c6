package parsec

// Env threads the running position and diagnostics of a Generate
// procedure between successive calls to Yield. A fresh Env is created
// for every parse attempt of a generator, so nothing it holds is
// shared across concurrent parses of the same Parser.
type Env struct {
	scanner  Scanner
	index    int
	furthest int
	expected Expected
}

func (e *Env) diag() diagnostics {
	return diagnostics{furthest: e.furthest, expected: e.expected}
}

// abandoned is the sentinel panicked by Yield on a failed sub-parser,
// unwinding the generator body in place of resuming it. It never
// escapes Generate or GenerateChain.
type abandoned struct{}

// Yield runs p at env's current position. On success it advances env
// to the resulting index, merges diagnostics, and returns the parsed
// value. On failure it merges diagnostics and panics with abandoned,
// unwinding the enclosing generator body without resuming it -- the
// body's remaining statements, including its return, never execute.
func Yield[T any](env *Env, p Parser[T]) T {
	r := p(env.scanner, env.index)
	merged := env.diag().merge(r.diag())
	env.furthest, env.expected = merged.furthest, merged.expected
	if !r.ok {
		panic(abandoned{})
	}

	env.index = r.index
	return r.value
}

// Generate drives body as a straight-line procedure that calls Yield
// to run sub-parsers and obtain their successfully parsed values,
// translating it into an ordinary Parser. If a yielded parser fails,
// body is abandoned at that point -- as if it had never been resumed
// past the failing Yield -- and the failure propagates with
// diagnostics merged across every sub-parser attempted. Because a
// fresh Env is built for every invocation and Parsers are pure
// functions of (scanner, index), a generator inside an alternation
// branch that fails partway through leaves no observable trace for
// the sibling branch to trip over.
func Generate[R any](body func(env *Env) R) Parser[R] {
	return func(s Scanner, index int) (out Result[R]) {
		env := &Env{scanner: s, index: index, furthest: -1}

		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abandoned); ok {
					out = failure[R](env.diag())
					return
				}

				panic(r)
			}
		}()

		value := body(env)
		return success(env.index, value, env.diag())
	}
}

// GenerateChain drives body exactly as Generate does, except body's
// return value is itself a Parser: that parser is run at the
// generator's final position and its Result -- not body's return --
// becomes the outcome. This is the tail-call-chaining realization of
// a generator whose last statement returns a parser rather than a
// plain value.
func GenerateChain[R any](body func(env *Env) Parser[R]) Parser[R] {
	return func(s Scanner, index int) (out Result[R]) {
		env := &Env{scanner: s, index: index, furthest: -1}

		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abandoned); ok {
					out = failure[R](env.diag())
					return
				}

				panic(r)
			}
		}()

		tail := body(env)
		rt := tail(env.scanner, env.index)
		return withDiag(rt, env.diag().merge(rt.diag()))
	}
}

// GenerateDesc is Generate followed by Desc(label): the optional label
// that may adorn a generator in the surface grammar.
func GenerateDesc[R any](label string, body func(env *Env) R) Parser[R] {
	return Desc(Generate(body), label)
}
