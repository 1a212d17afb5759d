package parser

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/token"
)

// parseTerm parses an atom: a literal, an identifier, or one of the
// three sequence containers.
//
//	term := "{" seq "}" | "[" seq "]" | "(" seq ")"
//	      | string | number | ident
func (p *Parser) parseTerm() (cst.NodeID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseSeqContainer(cst.NodeExprTermBraces, token.RBrace, diag.SynUnclosedBrace)
	case token.LBracket:
		return p.parseSeqContainer(cst.NodeExprTermBrackets, token.RBracket, diag.SynUnclosedBracket)
	case token.LParen:
		return p.parseSeqContainer(cst.NodeExprTermParens, token.RParen, diag.SynUnclosedParen)
	case token.StringLit:
		return p.b.Leaf(cst.NodeString, p.advance()), true
	case token.BinLit, token.HexLit, token.DecLit:
		return p.b.Leaf(cst.NodeNumber, p.advance()), true
	case token.Ident:
		return p.b.Leaf(cst.NodeIdent, p.advance()), true
	default:
		return cst.NoNodeID, p.fail(diag.SynExpectExpression,
			"expected an expression", termStarters...)
	}
}
