package token

import (
	"rcl/internal/source"
)

// Token represents a single source token with its location and verbatim text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token is a comment or blank-line marker.
// Trivia reach the parser as ordinary tokens; plain whitespace never does.
func (t Token) IsTrivia() bool {
	return t.Kind == Comment || t.Kind == Blank
}

// IsNumber reports whether the token is one of the number literal variants.
func (t Token) IsNumber() bool {
	switch t.Kind {
	case BinLit, HexLit, DecLit:
		return true
	default:
		return false
	}
}

// IsBinOp reports whether the token can start or continue a binary
// operator chain.
func (t Token) IsBinOp() bool {
	return IsBinOpKind(t.Kind)
}

// IsBinOpKind reports whether k is a binary operator kind.
func IsBinOpKind(k Kind) bool {
	switch k {
	case KwAnd, KwOr, Pipe, Star, Plus, Minus, Slash, Lt, LtEq, Gt, GtEq, EqEq, BangEq:
		return true
	default:
		return false
	}
}

// IsUnOpKind reports whether k is a unary operator kind.
func IsUnOpKind(k Kind) bool {
	return k == KwNot || k == Minus
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwOr, KwNot, KwLet, KwFor, KwIn, KwIf:
		return true
	default:
		return false
	}
}
