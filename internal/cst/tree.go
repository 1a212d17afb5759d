package cst

import (
	"rcl/internal/source"
	"rcl/internal/token"
)

// Tree is the immutable result of a parse: an arena of nodes addressed by
// NodeID, a string interner for leaf text, and the file the spans point
// into. There is no mutation API; independent trees may be read from
// separate goroutines without synchronization.
type Tree struct {
	arena    *Arena[Node]
	interner *source.Interner
	file     *source.File
	root     NodeID
}

// Root returns the SourceFile node.
func (t *Tree) Root() NodeID {
	return t.root
}

// File returns the file the tree was parsed from.
func (t *Tree) File() *source.File {
	return t.file
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() uint32 {
	return t.arena.Len()
}

// Kind returns the node's kind, or NodeInvalid for NoNodeID.
func (t *Tree) Kind(id NodeID) NodeKind {
	n := t.arena.Get(uint32(id))
	if n == nil {
		return NodeInvalid
	}
	return n.Kind
}

// Span returns the node's byte span.
func (t *Tree) Span(id NodeID) source.Span {
	n := t.arena.Get(uint32(id))
	if n == nil {
		return source.Span{}
	}
	return n.Span
}

// TokenKind returns the producing token kind for leaves, token.Invalid
// otherwise. Number leaves keep their literal variant here.
func (t *Tree) TokenKind(id NodeID) token.Kind {
	n := t.arena.Get(uint32(id))
	if n == nil {
		return token.Invalid
	}
	return n.Tok
}

// Text returns a leaf's verbatim text; empty for interior nodes.
func (t *Tree) Text(id NodeID) string {
	n := t.arena.Get(uint32(id))
	if n == nil {
		return ""
	}
	s, _ := t.interner.Lookup(n.Text)
	return s
}

// Children returns the node's owned children in source order.
// The slice aliases tree storage; do not modify it.
func (t *Tree) Children(id NodeID) []Child {
	n := t.arena.Get(uint32(id))
	if n == nil {
		return nil
	}
	return n.Children
}

// Field returns the first child tagged with f, or NoNodeID.
func (t *Tree) Field(id NodeID, f Field) NodeID {
	for _, c := range t.Children(id) {
		if c.Field == f {
			return c.ID
		}
	}
	return NoNodeID
}

// FieldByName is Field with a textual field name.
func (t *Tree) FieldByName(id NodeID, name string) NodeID {
	f, ok := FieldByName(name)
	if !ok {
		return NoNodeID
	}
	return t.Field(id, f)
}

// ChildrenOf returns every child tagged with f, in source order.
func (t *Tree) ChildrenOf(id NodeID, f Field) []NodeID {
	var out []NodeID
	for _, c := range t.Children(id) {
		if c.Field == f {
			out = append(out, c.ID)
		}
	}
	return out
}
