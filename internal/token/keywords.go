package token

var keywords = map[string]Kind{
	"and": KwAnd,
	"or":  KwOr,
	"not": KwNot,
	"let": KwLet,
	"for": KwFor,
	"in":  KwIn,
	"if":  KwIf,
}

// LookupKeyword returns the keyword kind for an identifier-shaped lexeme.
// The lookup runs after maximal-munch identifier scanning, so "letter" never
// splits into "let" + "ter". Keywords are reserved: a match always wins over
// plain identifier classification.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
