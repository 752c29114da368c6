package result

import "github.com/stntngo/parsec"

// Unwrap takes a parser that produces a Result-wrapped value and
// collapses the Result into the parser's own failure channel. If the
// wrapped value's conversion failed, the resulting parser fails at the
// position immediately following the successfully matched text,
// reporting the conversion error's text as the expected label.
func Unwrap[A any](p parsec.Parser[Result[A]]) parsec.Parser[A] {
	return parsec.Bind(p, func(res Result[A]) parsec.Parser[A] {
		v, err := res.Unwrap()
		if err != nil {
			return parsec.Fail[A](err.Error())
		}

		return parsec.Return(v)
	})
}
