package parser

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/token"
)

// parseExprNotOp parses a term followed by any number of postfix
// operations. Postfix binds tighter than any operator and associates
// left: a.b(x)[i] applies field, then call, then index.
//
//	expr_not_op := term postfix*
//	postfix     := "(" args ")" | "[" expr "]" | "." ident
func (p *Parser) parseExprNotOp() (cst.NodeID, bool) {
	if !p.enter() {
		return cst.NoNodeID, false
	}
	defer p.leave()

	node, ok := p.parseTerm()
	if !ok {
		return cst.NoNodeID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			node, ok = p.parseCall(node)
		case token.LBracket:
			node, ok = p.parseIndex(node)
		case token.Dot:
			node, ok = p.parseField(node)
		default:
			return node, true
		}
		if !ok {
			return cst.NoNodeID, false
		}
	}
}

// parseCall parses the argument list of fn(...). Arguments are full
// expressions; a trailing comma is allowed.
func (p *Parser) parseCall(fn cst.NodeID) (cst.NodeID, bool) {
	p.advance() // '('
	children := []cst.Child{{Field: cst.FieldFunction, ID: fn}}
	p.parsePrefix(&children)

	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return cst.NoNodeID, p.fail(diag.SynUnclosedParen,
				"unclosed '(' in call", token.RParen)
		}
		arg, ok := p.parseExpr()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldArg, ID: arg})
		p.parsePrefix(&children)
		if p.at(token.Comma) {
			p.advance()
			p.parsePrefix(&children)
			continue
		}
		break
	}

	closeTok, ok := p.expectClose(token.RParen, diag.SynUnclosedParen, "unclosed '(' in call")
	if !ok {
		return cst.NoNodeID, false
	}
	span := p.b.Span(fn).Cover(closeTok.Span)
	return p.b.Node(cst.NodeExprCall, span, children), true
}

// parseIndex parses coll[expr].
func (p *Parser) parseIndex(coll cst.NodeID) (cst.NodeID, bool) {
	p.advance() // '['
	children := []cst.Child{{Field: cst.FieldCollection, ID: coll}}
	p.parsePrefix(&children)

	index, ok := p.parseExpr()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{Field: cst.FieldIndex, ID: index})
	p.parsePrefix(&children)

	closeTok, ok := p.expectClose(token.RBracket, diag.SynUnclosedBracket, "unclosed '[' in index")
	if !ok {
		return cst.NoNodeID, false
	}
	span := p.b.Span(coll).Cover(closeTok.Span)
	return p.b.Node(cst.NodeExprIndex, span, children), true
}

// parseField parses inner.ident. The right side must be a plain
// identifier; keywords are not field names.
func (p *Parser) parseField(inner cst.NodeID) (cst.NodeID, bool) {
	p.advance() // '.'
	identTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name after '.'")
	if !ok {
		return cst.NoNodeID, false
	}
	ident := p.b.Leaf(cst.NodeIdent, identTok)
	span := p.b.Span(inner).Cover(identTok.Span)
	return p.b.Node(cst.NodeExprField, span, []cst.Child{
		{Field: cst.FieldInner, ID: inner},
		{Field: cst.FieldField, ID: ident},
	}), true
}

// expectClose consumes a closing delimiter. A missing close at EOF gets
// the delimiter-specific unclosed code; anything else is an ordinary
// unexpected token.
func (p *Parser) expectClose(k token.Kind, atEOF diag.Code, eofMsg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if p.at(token.EOF) {
		return token.Token{Kind: token.Invalid}, p.fail(atEOF, eofMsg, k)
	}
	return token.Token{Kind: token.Invalid}, p.fail(diag.SynUnexpectedToken,
		"expected '"+k.String()+"'", k)
}
