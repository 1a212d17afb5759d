// Package parser turns one source file into a concrete syntax tree.
//
// The grammar is deliberately precedence-free: binary operators form
// uniform chains, mixing two operator symbols in one chain is an error,
// and unary operators never appear as chain operands without explicit
// grouping. Comments and blank lines are real tokens and become trivia
// nodes at well-defined prefix positions, so rendering the tree back
// out reproduces the input byte for byte.
//
// Parsing is fail-fast: the first lexical or syntactic error aborts the
// run and Result carries either a tree or a single *Error, never both.
package parser
