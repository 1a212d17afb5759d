package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rcl/internal/diag"
	"rcl/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgHiBlack)
)

// Pretty formats diagnostics for a terminal. Callers should bag.Sort()
// first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Severity, d.Primary, opts,
			fmt.Sprintf("%s %s: %s", d.Severity, d.Code.ID(), d.Message))
		writeSnippet(w, fs, d.Primary)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeading(w, fs, diag.SevInfo, n.Span, opts, "note: "+n.Msg)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, span source.Span, opts PrettyOpts, msg string) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	prefix := fmt.Sprintf("%s:%d:%d: ", formatPath(f, opts.PathMode), start.Line, start.Col)
	if opts.Color {
		msg = sevColor(sev).Sprint(msg)
	}
	fmt.Fprintf(w, "%s%s\n", prefix, msg)
}

// writeSnippet prints the first line the span touches and an underline
// beneath the spanned columns. Display width is measured per rune, so
// tabs and wide characters keep the caret aligned.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := f.GetLine(start.Line)
	if line == "" && span.Len() == 0 && start.Col == 1 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol < startCol {
		endCol = len(line) + 1 // span runs off the line; underline to its end
	}

	var b strings.Builder
	b.WriteString("  ")
	col := 1
	for _, r := range line {
		if col >= startCol {
			break
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		col++
	}
	b.WriteString("^")
	for i := startCol + 1; i < endCol; i++ {
		b.WriteString("~")
	}
	fmt.Fprintf(w, "%s\n", b.String())
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	case diag.SevInfo:
		return infoColor
	default:
		return noteColor
	}
}
