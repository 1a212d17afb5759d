package cst

import (
	"rcl/internal/source"
	"rcl/internal/token"
)

// Child is one owned child of a node, optionally tagged with the field it
// fills in the parent.
type Child struct {
	Field Field
	ID    NodeID
}

// Node is a single syntax node. Leaves carry the producing token kind and
// interned verbatim text; interior nodes carry ordered children whose spans
// ascend and, together with the consumed punctuation, tile the node's span.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Tok      token.Kind      // leaves only
	Text     source.StringID // leaves only
	Children []Child
}
