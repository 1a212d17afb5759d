package diagfmt

import (
	"io"
	"strings"

	"rcl/internal/cst"
)

// Render writes the tree back out as source text. Leaf nodes carry
// their verbatim text; the whitespace between leaves never materializes
// in the tree, so it is recovered from the file content by span. For a
// tree produced by the parser the output is byte-identical to the
// input.
func Render(w io.Writer, tree *cst.Tree) error {
	var b strings.Builder
	RenderString(&b, tree)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString renders into a strings.Builder, leaf by leaf.
func RenderString(b *strings.Builder, tree *cst.Tree) {
	content := tree.File().Content
	fileSpan := tree.Span(tree.Root())

	pos := fileSpan.Start
	pos = renderNode(b, tree, tree.Root(), content, pos)
	if pos < fileSpan.End {
		b.Write(content[pos:fileSpan.End])
	}
}

func renderNode(b *strings.Builder, tree *cst.Tree, id cst.NodeID, content []byte, pos uint32) uint32 {
	children := tree.Children(id)
	if len(children) == 0 && tree.Kind(id).IsLeaf() {
		span := tree.Span(id)
		if span.Start > pos {
			b.Write(content[pos:span.Start]) // inter-leaf gap, verbatim
		}
		b.WriteString(tree.Text(id))
		return span.End
	}
	for _, c := range children {
		pos = renderNode(b, tree, c.ID, content, pos)
	}
	return pos
}
