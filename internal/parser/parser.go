package parser

import (
	"fmt"

	"fortio.org/safecast"

	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/lexer"
	"rcl/internal/source"
	"rcl/internal/token"
)

// DefaultMaxDepth bounds recursive-descent depth against adversarial
// nesting (deep parens, long postfix chains through groups).
const DefaultMaxDepth = 500

type Options struct {
	MaxDepth uint          // 0 means DefaultMaxDepth
	Reporter diag.Reporter // optional mirror of the failure; may be nil
	NodeHint uint          // arena capacity hint
}

// Result of one parse run. Exactly one of Tree and Err is set.
type Result struct {
	Tree *cst.Tree
	Err  *Error
}

// Parser holds the per-invocation state: a cursor into the token stream
// and the in-progress builder. There is no global state; independent
// invocations on independent buffers may run concurrently.
type Parser struct {
	lx       *lexer.Lexer
	b        *cst.Builder
	fs       *source.FileSet
	file     *source.File
	opts     Options
	err      *Error
	depth    uint
	lastSpan source.Span
}

// ParseFile parses one whole file into a CST. The parse is pure and
// synchronous; the first error aborts it.
func ParseFile(fs *source.FileSet, id source.FileID, opts Options) Result {
	file := fs.Get(id)
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	p := &Parser{
		fs:   fs,
		file: file,
		opts: opts,
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: (*lexSink)(p)})
	p.b = cst.NewBuilder(file, opts.NodeHint)
	p.lastSpan = source.Span{File: file.ID}

	root, ok := p.parseSourceFile()
	if !ok || p.err != nil {
		return Result{Err: p.err}
	}
	p.b.SetRoot(root)
	return Result{Tree: p.b.Finish()}
}

// parseSourceFile builds the root: leading trivia, the outermost
// expression, trailing trivia, EOF. Anything left over is trailing input.
func (p *Parser) parseSourceFile() (cst.NodeID, bool) {
	var children []cst.Child
	p.parsePrefix(&children)

	expr, ok := p.parseExpr()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{ID: expr})

	p.parsePrefix(&children)

	if !p.at(token.EOF) {
		return cst.NoNodeID, p.fail(diag.SynTrailingInput,
			"trailing input after expression", token.EOF)
	}

	end, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		panic(fmt.Errorf("file length overflow: %w", err))
	}
	span := source.Span{File: p.file.ID, Start: 0, End: end}
	return p.b.Node(cst.NodeSourceFile, span, children), true
}

// lexSink funnels lexer reports into the parser's single error slot.
type lexSink Parser

func (s *lexSink) Report(code diag.Code, span source.Span, msg string) {
	p := (*Parser)(s)
	p.setErr(code, span, msg, nil, token.Invalid)
}
