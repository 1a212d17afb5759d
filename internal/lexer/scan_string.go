package lexer

import (
	"rcl/internal/diag"
	"rcl/internal/token"
)

// scanString scans a quote-delimited string. Capture is raw: the body is
// any run of non-quote bytes, a backslash is just a byte, and escape
// decoding is deliberately left to a later stage. A newline or EOF before
// the closing quote is an unterminated string.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: sp.Text(lx.file)}
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: sp.Text(lx.file)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: sp.Text(lx.file)}
}
