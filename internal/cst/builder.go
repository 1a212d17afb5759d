package cst

import (
	"rcl/internal/source"
	"rcl/internal/token"
)

// Builder accumulates nodes bottom-up during parsing. Finish seals the
// arena into an immutable Tree.
type Builder struct {
	arena    *Arena[Node]
	interner *source.Interner
	file     *source.File
	root     NodeID
}

// NewBuilder creates a builder for one file. capHint sizes the node arena.
func NewBuilder(file *source.File, capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		arena:    NewArena[Node](capHint),
		interner: source.NewInterner(),
		file:     file,
	}
}

// Leaf creates a leaf node directly from a token.
func (b *Builder) Leaf(kind NodeKind, tok token.Token) NodeID {
	return NodeID(b.arena.Allocate(Node{
		Kind: kind,
		Span: tok.Span,
		Tok:  tok.Kind,
		Text: b.interner.Intern(tok.Text),
	}))
}

// Node creates an interior node owning the given children.
func (b *Builder) Node(kind NodeKind, span source.Span, children []Child) NodeID {
	return NodeID(b.arena.Allocate(Node{
		Kind:     kind,
		Span:     span,
		Children: children,
	}))
}

// Span returns the span of an already-built node.
func (b *Builder) Span(id NodeID) source.Span {
	n := b.arena.Get(uint32(id))
	if n == nil {
		return source.Span{}
	}
	return n.Span
}

// Kind returns the kind of an already-built node.
func (b *Builder) Kind(id NodeID) NodeKind {
	n := b.arena.Get(uint32(id))
	if n == nil {
		return NodeInvalid
	}
	return n.Kind
}

// SetRoot records the SourceFile node.
func (b *Builder) SetRoot(id NodeID) {
	b.root = id
}

// Finish seals the builder into a Tree. The builder must not be used
// afterwards.
func (b *Builder) Finish() *Tree {
	t := &Tree{
		arena:    b.arena,
		interner: b.interner,
		file:     b.file,
		root:     b.root,
	}
	b.arena = nil
	b.interner = nil
	return t
}
