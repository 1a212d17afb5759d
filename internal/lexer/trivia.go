package lexer

import (
	"rcl/internal/token"
)

// skipWhitespace consumes a maximal run of spaces, tabs, carriage returns,
// form feeds, and newlines. A run with two or more newlines is significant
// and comes back as one Blank token spanning the whole run; anything less
// is discarded and (false) is returned.
func (lx *Lexer) skipWhitespace() (token.Token, bool) {
	start := lx.cursor.Mark()
	newlines := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			newlines++
			lx.cursor.Bump()
			continue
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\f' {
			lx.cursor.Bump()
			continue
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() || newlines < 2 {
		return token.Token{}, false
	}
	return token.Token{
		Kind: token.Blank,
		Span: sp,
		Text: sp.Text(lx.file),
	}, true
}

// isCommentStart checks for "//" at the cursor.
func (lx *Lexer) isCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '/'
}

// scanComment consumes "//" through the end of the line, the terminating
// newline included. At EOF the comment simply ends there.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Comment,
		Span: sp,
		Text: sp.Text(lx.file),
	}
}
