package lexer

import (
	"rcl/internal/token"
)

// scanNumber scans one of the three number shapes, tried in priority order:
// 0b[01_]+, 0x[0-9a-fA-F_]+, then decimal (0|[1-9][0-9_]*) with optional
// fraction and exponent. The prefixes must win before the decimal rule,
// since "0b"/"0x" are not valid decimal starts. There is no implicit
// conversion between the shapes; each keeps its own token kind.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: sp.Text(lx.file)}
	}

	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
			switch b1 {
			case 'b':
				if lx.scanPrefixedDigits(isBinDigit) {
					return emit(token.BinLit)
				}
			case 'x':
				if lx.scanPrefixedDigits(isHex) {
					return emit(token.HexLit)
				}
			}
		}
	}

	// Decimal integer part: either a lone 0 or a non-zero-leading run.
	// "01" therefore lexes as "0" followed by "1".
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
	} else {
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// Fraction: a dot counts only when a digit follows, so "1.len" leaves
	// the dot to the field-access rule.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// Exponent: e/E, optional sign, digits. Without a digit the e belongs
	// to a following identifier, so rewind.
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	return emit(token.DecLit)
}

// scanPrefixedDigits consumes "0<base-letter>" plus at least one digit or
// underscore accepted by the classifier. Without a digit it rewinds and
// reports false, leaving the "0" to the decimal rule.
func (lx *Lexer) scanPrefixedDigits(accept func(byte) bool) bool {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // 'b' or 'x'
	seen := false
	for {
		b := lx.cursor.Peek()
		if b == '_' || accept(b) {
			lx.cursor.Bump()
			seen = true
			continue
		}
		break
	}
	if !seen {
		lx.cursor.Reset(mark)
	}
	return seen
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }
