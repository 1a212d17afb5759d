package parser

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/token"
)

// termStarters is the expected set reported when no expression can start
// at the current token.
var termStarters = []token.Kind{
	token.LBrace, token.LBracket, token.LParen,
	token.StringLit, token.BinLit, token.HexLit, token.DecLit,
	token.Ident,
}

// parseExpr parses a full expression: either a statement chained into a
// trailing expression, or a plain operator expression.
//
//	expr      := expr_stmt | expr_op
//	expr_stmt := stmt ";" prefix* expr
func (p *Parser) parseExpr() (cst.NodeID, bool) {
	if !p.enter() {
		return cst.NoNodeID, false
	}
	defer p.leave()

	if p.at(token.KwLet) {
		stmt, ok := p.parseStmtLet()
		if !ok {
			return cst.NoNodeID, false
		}
		if _, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after let binding"); !ok {
			return cst.NoNodeID, false
		}
		children := []cst.Child{{Field: cst.FieldStmt, ID: stmt}}
		p.parsePrefix(&children)
		body, ok := p.parseExpr()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldBody, ID: body})
		span := p.b.Span(stmt).Cover(p.b.Span(body))
		return p.b.Node(cst.NodeExprStmt, span, children), true
	}

	return p.parseExprOp()
}

// parseStmtLet parses "let" ident "=" expr. The bound name scopes over
// the trailing expression or sequence item only; the parser records
// structure, name resolution belongs elsewhere.
func (p *Parser) parseStmtLet() (cst.NodeID, bool) {
	letTok := p.advance() // 'let'

	identTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after 'let'")
	if !ok {
		return cst.NoNodeID, false
	}
	ident := p.b.Leaf(cst.NodeIdent, identTok)

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in let binding"); !ok {
		return cst.NoNodeID, false
	}

	value, ok := p.parseExpr()
	if !ok {
		return cst.NoNodeID, false
	}

	span := letTok.Span.Cover(p.b.Span(value))
	return p.b.Node(cst.NodeStmtLet, span, []cst.Child{
		{Field: cst.FieldIdent, ID: ident},
		{Field: cst.FieldValue, ID: value},
	}), true
}

// parseExprOp parses a unary chain or a uniform-operator binary chain.
//
//	expr_op     := expr_unop | binop_chain | expr_not_op
//	expr_unop   := unop (expr_not_op | expr_unop)
//	binop_chain := expr_not_op (op expr_not_op)+   // one op symbol per chain
//
// There is no precedence: every operator in a chain must be the same
// symbol, and chain operands are postfix expressions only. Mixing symbols
// or negating an operand requires explicit grouping.
func (p *Parser) parseExprOp() (cst.NodeID, bool) {
	if token.IsUnOpKind(p.lx.Peek().Kind) {
		return p.parseExprUnop()
	}

	first, ok := p.parseExprNotOp()
	if !ok {
		return cst.NoNodeID, false
	}
	if !token.IsBinOpKind(p.lx.Peek().Kind) {
		return first, true
	}

	chainOp := p.lx.Peek().Kind
	children := []cst.Child{{Field: cst.FieldOperand, ID: first}}
	for token.IsBinOpKind(p.lx.Peek().Kind) {
		if p.lx.Peek().Kind != chainOp {
			return cst.NoNodeID, p.fail(diag.SynMixedOperatorChain,
				"operator differs from the chain's operator; group the sub-expression explicitly",
				chainOp)
		}
		opTok := p.advance()
		children = append(children, cst.Child{Field: cst.FieldOperator, ID: p.b.Leaf(cst.NodeBinOp, opTok)})

		operand, ok := p.parseExprNotOp()
		if !ok {
			return cst.NoNodeID, false
		}
		children = append(children, cst.Child{Field: cst.FieldOperand, ID: operand})
	}

	span := p.b.Span(first).Cover(p.b.Span(children[len(children)-1].ID))
	return p.b.Node(cst.NodeExprBinopChain, span, children), true
}

// parseExprUnop parses a stack of unary operators over a postfix
// expression. Unary chains never feed a binary chain without grouping.
func (p *Parser) parseExprUnop() (cst.NodeID, bool) {
	if !p.enter() {
		return cst.NoNodeID, false
	}
	defer p.leave()

	opTok := p.advance() // 'not' or '-'
	op := p.b.Leaf(cst.NodeUnOp, opTok)

	var operand cst.NodeID
	var ok bool
	if token.IsUnOpKind(p.lx.Peek().Kind) {
		operand, ok = p.parseExprUnop()
	} else {
		operand, ok = p.parseExprNotOp()
	}
	if !ok {
		return cst.NoNodeID, false
	}

	span := opTok.Span.Cover(p.b.Span(operand))
	return p.b.Node(cst.NodeExprUnop, span, []cst.Child{
		{Field: cst.FieldOperator, ID: op},
		{Field: cst.FieldOperand, ID: operand},
	}), true
}
