package cst

// NodeKind tags the variant of a syntax node.
type NodeKind uint8

const (
	// NodeInvalid indicates an erroneous node; a well-formed tree has none.
	NodeInvalid NodeKind = iota
	// NodeSourceFile is the root: leading trivia, one expression, trailing trivia.
	NodeSourceFile

	// NodeBlank is a preserved blank-line marker.
	NodeBlank
	// NodeComment is a preserved line comment.
	NodeComment

	// NodeIdent is an identifier leaf.
	NodeIdent
	// NodeString is a raw string literal leaf.
	NodeString
	// NodeNumber is a number literal leaf; the token kind keeps the variant.
	NodeNumber
	// NodeUnOp is a unary operator leaf ('not' or '-').
	NodeUnOp
	// NodeBinOp is a binary operator leaf.
	NodeBinOp

	// NodeExprUnop applies a unary operator to an operand.
	NodeExprUnop
	// NodeExprBinopChain is a uniform-operator chain with two or more operands.
	NodeExprBinopChain
	// NodeExprCall is a function call.
	NodeExprCall
	// NodeExprIndex is a bracket index.
	NodeExprIndex
	// NodeExprField is a dotted field access.
	NodeExprField
	// NodeExprTermBraces is a brace-delimited sequence term.
	NodeExprTermBraces
	// NodeExprTermBrackets is a bracket-delimited sequence term.
	NodeExprTermBrackets
	// NodeExprTermParens is a paren-delimited sequence term.
	NodeExprTermParens

	// NodeStmtLet is a let binding.
	NodeStmtLet
	// NodeExprStmt chains a statement into a trailing expression.
	NodeExprStmt

	// NodeSeqElem is a bare element inside a sequence.
	NodeSeqElem
	// NodeSeqAssocExpr is an expression-keyed association.
	NodeSeqAssocExpr
	// NodeSeqAssocIdent is an identifier-keyed association.
	NodeSeqAssocIdent
	// NodeSeqStmt chains a statement into a trailing sequence item.
	NodeSeqStmt
	// NodeSeqFor is a for-comprehension clause.
	NodeSeqFor
	// NodeSeqIf is an if-filter clause.
	NodeSeqIf
)

var nodeKindNames = [...]string{
	NodeInvalid:          "Invalid",
	NodeSourceFile:       "SourceFile",
	NodeBlank:            "Blank",
	NodeComment:          "Comment",
	NodeIdent:            "Ident",
	NodeString:           "String",
	NodeNumber:           "Number",
	NodeUnOp:             "UnOp",
	NodeBinOp:            "BinOp",
	NodeExprUnop:         "ExprUnop",
	NodeExprBinopChain:   "ExprBinopChain",
	NodeExprCall:         "ExprCall",
	NodeExprIndex:        "ExprIndex",
	NodeExprField:        "ExprField",
	NodeExprTermBraces:   "ExprTermBraces",
	NodeExprTermBrackets: "ExprTermBrackets",
	NodeExprTermParens:   "ExprTermParens",
	NodeStmtLet:          "StmtLet",
	NodeExprStmt:         "ExprStmt",
	NodeSeqElem:          "SeqElem",
	NodeSeqAssocExpr:     "SeqAssocExpr",
	NodeSeqAssocIdent:    "SeqAssocIdent",
	NodeSeqStmt:          "SeqStmt",
	NodeSeqFor:           "SeqFor",
	NodeSeqIf:            "SeqIf",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// IsTrivia reports whether the kind is a preserved trivia node.
func (k NodeKind) IsTrivia() bool {
	return k == NodeBlank || k == NodeComment
}

// IsLeaf reports whether nodes of this kind carry verbatim text and no
// children.
func (k NodeKind) IsLeaf() bool {
	switch k {
	case NodeBlank, NodeComment, NodeIdent, NodeString, NodeNumber, NodeUnOp, NodeBinOp:
		return true
	default:
		return false
	}
}
