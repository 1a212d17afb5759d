package parser

import (
	"fmt"
	"strings"

	"rcl/internal/diag"
	"rcl/internal/source"
	"rcl/internal/token"
)

// Error is the single failure a parse run can produce. Parsing is
// fail-fast: the first lexical or syntactic error aborts the run and no
// partial tree is returned.
type Error struct {
	Code     diag.Code
	Span     source.Span
	Pos      source.LineCol // 1-based line/column of Span.Start
	Expected []token.Kind   // token kinds that would have been accepted
	Found    token.Kind
	Msg      string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s: %s", e.Pos.Line, e.Pos.Col, e.Code.ID(), e.Msg)
	if len(e.Expected) > 0 {
		b.WriteString(" (expected ")
		for i, k := range e.Expected {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k.String())
		}
		fmt.Fprintf(&b, "; found %s)", e.Found)
	}
	return b.String()
}
