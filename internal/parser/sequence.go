package parser

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/token"
)

// parseSeqContainer parses the body shared by {..}, [..] and (..): a
// comma-separated list of sequence items with optional trailing comma,
// trivia welcome between any two elements.
//
//	seq := prefix* (item ("," prefix* item)* ","? prefix*)?
func (p *Parser) parseSeqContainer(kind cst.NodeKind, closeKind token.Kind, unclosed diag.Code) (cst.NodeID, bool) {
	openTok := p.advance()
	var children []cst.Child
	p.parsePrefix(&children)

	for !p.at(closeKind) {
		if p.at(token.EOF) {
			return cst.NoNodeID, p.fail(unclosed,
				"unclosed '"+openTok.Kind.String()+"'", closeKind)
		}
		item, ok := p.parseSeqItem()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{ID: item})
		p.parsePrefix(&children)
		if p.at(token.Comma) {
			p.advance()
			p.parsePrefix(&children)
			continue
		}
		break
	}

	closeTok, ok := p.expectClose(closeKind, unclosed, "unclosed '"+openTok.Kind.String()+"'")
	if !ok {
		return cst.NoNodeID, false
	}
	return p.b.Node(kind, openTok.Span.Cover(closeTok.Span), children), true
}

// parseSeqItem parses one element of a sequence. Items come in six
// shapes: a bare element, a key:value assoc, a name = value assoc, an
// inline let over the next item, a for comprehension, and an if filter.
func (p *Parser) parseSeqItem() (cst.NodeID, bool) {
	if !p.enter() {
		return cst.NoNodeID, false
	}
	defer p.leave()

	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseSeqStmt()
	case token.KwFor:
		return p.parseSeqFor()
	case token.KwIf:
		return p.parseSeqIf()
	}

	key, ok := p.parseExprOp()
	if !ok {
		return cst.NoNodeID, false
	}

	switch {
	case p.at(token.Colon):
		p.advance()
		children := []cst.Child{{Field: cst.FieldField, ID: key}}
		p.parsePrefix(&children)
		value, ok := p.parseExpr()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldValue, ID: value})
		span := p.b.Span(key).Cover(p.b.Span(value))
		return p.b.Node(cst.NodeSeqAssocExpr, span, children), true

	case p.at(token.Assign) && p.b.Kind(key) == cst.NodeIdent:
		p.advance()
		children := []cst.Child{{Field: cst.FieldIdent, ID: key}}
		p.parsePrefix(&children)
		value, ok := p.parseExpr()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldValue, ID: value})
		span := p.b.Span(key).Cover(p.b.Span(value))
		return p.b.Node(cst.NodeSeqAssocIdent, span, children), true

	default:
		span := p.b.Span(key)
		return p.b.Node(cst.NodeSeqElem, span, []cst.Child{
			{Field: cst.FieldValue, ID: key},
		}), true
	}
}

// parseSeqStmt parses "let" ident "=" expr ";" item. The binding scopes
// over the single item that follows, not over the rest of the sequence.
func (p *Parser) parseSeqStmt() (cst.NodeID, bool) {
	stmt, ok := p.parseStmtLet()
	if !ok {
		return cst.NoNodeID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after let binding"); !ok {
		return cst.NoNodeID, false
	}
	children := []cst.Child{{Field: cst.FieldStmt, ID: stmt}}
	p.parsePrefix(&children)

	body, ok := p.parseSeqItem()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{Field: cst.FieldBody, ID: body})
	span := p.b.Span(stmt).Cover(p.b.Span(body))
	return p.b.Node(cst.NodeSeqStmt, span, children), true
}

// parseSeqFor parses "for" ident ("," ident)* "in" expr ":" item. The
// loop variables take no trailing comma.
func (p *Parser) parseSeqFor() (cst.NodeID, bool) {
	forTok := p.advance() // 'for'
	var children []cst.Child

	for {
		identTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected loop variable after 'for'")
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldIdent, ID: p.b.Leaf(cst.NodeIdent, identTok)})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' after loop variables"); !ok {
		return cst.NoNodeID, false
	}
	coll, ok := p.parseExpr()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{Field: cst.FieldCollection, ID: coll})

	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after 'for' collection"); !ok {
		return cst.NoNodeID, false
	}
	p.parsePrefix(&children)

	body, ok := p.parseSeqItem()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{Field: cst.FieldBody, ID: body})
	span := forTok.Span.Cover(p.b.Span(body))
	return p.b.Node(cst.NodeSeqFor, span, children), true
}

// parseSeqIf parses "if" expr ":" item.
func (p *Parser) parseSeqIf() (cst.NodeID, bool) {
	ifTok := p.advance() // 'if'

	cond, ok := p.parseExpr()
	if !ok {
		return cst.NoNodeID, false
	}
	children := []cst.Child{{Field: cst.FieldCondition, ID: cond}}

	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after 'if' condition"); !ok {
		return cst.NoNodeID, false
	}
	p.parsePrefix(&children)

	body, ok := p.parseSeqItem()
	if !ok {
		return cst.NoNodeID, false
	}
	children = append(children, cst.Child{Field: cst.FieldBody, ID: body})
	span := ifTok.Span.Cover(p.b.Span(body))
	return p.b.Node(cst.NodeSeqIf, span, children), true
}
