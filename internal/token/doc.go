// Package token defines the lexical vocabulary of RCL: token kinds, the
// reserved-keyword table, and the Token value the lexer produces. Comments
// and blank-line markers are token kinds of their own because the grammar
// keeps them in the tree; ordinary whitespace is consumed by the lexer and
// never materializes.
package token
