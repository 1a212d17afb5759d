package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIf represents the 'if' keyword.
	KwIf // if

	// StringLit represents a raw quote-delimited string literal.
	StringLit
	// BinLit represents a binary number literal (0b...).
	BinLit
	// HexLit represents a hexadecimal number literal (0x...).
	HexLit
	// DecLit represents a decimal number literal.
	DecLit

	// Pipe represents the pipe operator token.
	Pipe // |
	// Star represents the star operator token.
	Star // *
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Slash represents the slash operator token.
	Slash // /
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=

	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Assign represents the assign token.
	Assign // =

	// Comment represents a line comment, terminating newline included.
	Comment
	// Blank is a whitespace run holding two or more newlines.
	Blank
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwAnd:     "and",
	KwOr:      "or",
	KwNot:     "not",
	KwLet:     "let",
	KwFor:     "for",
	KwIn:      "in",
	KwIf:      "if",
	StringLit: "String",
	BinLit:    "BinLit",
	HexLit:    "HexLit",
	DecLit:    "DecLit",
	Pipe:      "'|'",
	Star:      "'*'",
	Plus:      "'+'",
	Minus:     "'-'",
	Slash:     "'/'",
	Lt:        "'<'",
	LtEq:      "'<='",
	Gt:        "'>'",
	GtEq:      "'>='",
	EqEq:      "'=='",
	BangEq:    "'!='",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LBracket:  "'['",
	RBracket:  "']'",
	LParen:    "'('",
	RParen:    "')'",
	Colon:     "':'",
	Semicolon: "';'",
	Comma:     "','",
	Dot:       "'.'",
	Assign:    "'='",
	Comment:   "Comment",
	Blank:     "Blank",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
