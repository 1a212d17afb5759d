package lexer

import (
	"rcl/internal/diag"
	"rcl/internal/source"
)

// Reporter is a thin interface so the lexer does not format diagnostics
// itself; it only calls out with the parameters.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil; errors are then dropped but lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}

// BagAdapter forwards lexer reports into a diag.Bag as errors.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(code diag.Code, span source.Span, msg string) {
	if a.Bag == nil {
		return
	}
	a.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
