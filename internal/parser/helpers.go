package parser

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/source"
	"rcl/internal/token"
)

// at reports whether the next token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the best span for an error at the current position. At
// EOF the span degenerates to the position right after the last token.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && peek.Span.Empty() {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or fails with the given code.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{Kind: token.Invalid}, p.fail(code, msg, k)
}

// fail records the first error and always returns false. The found token
// is the current lookahead; the expected set is what the caller would have
// accepted here.
func (p *Parser) fail(code diag.Code, msg string, expected ...token.Kind) bool {
	p.setErr(code, p.diagSpan(), msg, expected, p.lx.Peek().Kind)
	return false
}

func (p *Parser) setErr(code diag.Code, sp source.Span, msg string, expected []token.Kind, found token.Kind) {
	if p.err != nil {
		return // fail-fast: first error wins
	}
	pos, _ := p.fs.Resolve(sp)
	p.err = &Error{
		Code:     code,
		Span:     sp,
		Pos:      pos,
		Expected: expected,
		Found:    found,
		Msg:      msg,
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// enter guards recursion depth; every matching leave() restores it.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.fail(diag.SynNestingTooDeep, "expression nesting is too deep")
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// parsePrefix consumes zero or more blank/comment tokens into trivia
// nodes, appended as leading siblings of whatever follows.
func (p *Parser) parsePrefix(children *[]cst.Child) {
	for {
		switch p.lx.Peek().Kind {
		case token.Comment:
			*children = append(*children, cst.Child{ID: p.b.Leaf(cst.NodeComment, p.advance())})
		case token.Blank:
			*children = append(*children, cst.Child{ID: p.b.Leaf(cst.NodeBlank, p.advance())})
		default:
			return
		}
	}
}
