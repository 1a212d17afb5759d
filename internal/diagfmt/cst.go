package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"rcl/internal/cst"
	"rcl/internal/source"
)

// CSTNodeOutput is one tree node in JSON output.
type CSTNodeOutput struct {
	Kind      string          `json:"kind"`
	Field     string          `json:"field,omitempty"`
	StartByte uint32          `json:"start_byte"`
	EndByte   uint32          `json:"end_byte"`
	Text      string          `json:"text,omitempty"`
	Children  []CSTNodeOutput `json:"children,omitempty"`
}

// FormatCSTPretty writes the tree as an indented outline, one node per
// line: the field tag (when any), the kind, the resolved span, and for
// leaves the verbatim text.
func FormatCSTPretty(w io.Writer, tree *cst.Tree, fs *source.FileSet) error {
	return writeNodePretty(w, tree, fs, tree.Root(), cst.FieldNone, "", true, true)
}

func writeNodePretty(w io.Writer, tree *cst.Tree, fs *source.FileSet, id cst.NodeID, field cst.Field, prefix string, isLast, isRoot bool) error {
	var line string
	if !isRoot {
		branch := "├─ "
		if isLast {
			branch = "└─ "
		}
		line = prefix + branch
	}

	if field != cst.FieldNone {
		line += field.String() + ": "
	}
	line += tree.Kind(id).String()
	line += " (" + formatSpan(tree.Span(id), fs) + ")"
	if text := tree.Text(id); text != "" {
		line += fmt.Sprintf(" %q", text)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	children := tree.Children(id)
	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}
	for i, c := range children {
		if err := writeNodePretty(w, tree, fs, c.ID, c.Field, childPrefix, i == len(children)-1, false); err != nil {
			return err
		}
	}
	return nil
}

// FormatCSTJSON writes the tree as an indented JSON document rooted at
// the SourceFile node.
func FormatCSTJSON(w io.Writer, tree *cst.Tree) error {
	root := buildNodeJSON(tree, tree.Root(), cst.FieldNone)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func buildNodeJSON(tree *cst.Tree, id cst.NodeID, field cst.Field) CSTNodeOutput {
	span := tree.Span(id)
	out := CSTNodeOutput{
		Kind:      tree.Kind(id).String(),
		StartByte: span.Start,
		EndByte:   span.End,
		Text:      tree.Text(id),
	}
	if field != cst.FieldNone {
		out.Field = field.String()
	}
	for _, c := range tree.Children(id) {
		out.Children = append(out.Children, buildNodeJSON(tree, c.ID, c.Field))
	}
	return out
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
