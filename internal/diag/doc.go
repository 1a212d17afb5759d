// Package diag carries diagnostics between phases: severities, stable codes,
// the Diagnostic value, and the Bag collector. The parser itself is
// fail-fast, but the lexer and batch tooling report through the same
// Reporter contract.
package diag
