package lexer

import (
	"rcl/internal/diag"
	"rcl/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation, greedy: two-byte
// forms (<=, >=, ==, !=) before single bytes. Unrecognized bytes produce
// an Invalid token and a LexUnknownChar report.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: sp.Text(lx.file),
		}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '|':
		return emit(token.Pipe)
	case '*':
		return emit(token.Star)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '/':
		return emit(token.Slash)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '=':
		return emit(token.Assign)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unrecognized character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: sp.Text(lx.file)}
}
