package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rcl/internal/diag"
	"rcl/internal/diagfmt"
	"rcl/internal/driver"
	"rcl/internal/source"
)

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"x",
		"let x = 1; x",
		"  a  ",
		"// head\nlet cfg = {\n  name = \"app\", // inline\n\n  ports: [80, 443,],\n};\ncfg\n\n",
		"{for k, v in pairs: if k: v}",
		"f(a, b,)[0].c",
		"not not -x",
		"a + b + c",
		"0b101",
		"(\n\n// only item\n1\n\n)",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result := driver.ParseBytes("rt.rcl", []byte(input), driver.ParseOpts{MaxDiagnostics: 10})
			if result.Err != nil {
				t.Fatalf("parse failed: %v", result.Err)
			}
			var buf bytes.Buffer
			if err := diagfmt.Render(&buf, result.Tree); err != nil {
				t.Fatal(err)
			}
			if buf.String() != input {
				t.Errorf("round trip mismatch:\n in: %q\nout: %q", input, buf.String())
			}
		})
	}
}

func TestRenderThenReparseIsStable(t *testing.T) {
	input := "let a = {x: 1}; // tail\na.x"
	first := driver.ParseBytes("r1.rcl", []byte(input), driver.ParseOpts{MaxDiagnostics: 10})
	if first.Err != nil {
		t.Fatal(first.Err)
	}
	var buf bytes.Buffer
	if err := diagfmt.Render(&buf, first.Tree); err != nil {
		t.Fatal(err)
	}
	second := driver.ParseBytes("r2.rcl", buf.Bytes(), driver.ParseOpts{MaxDiagnostics: 10})
	if second.Err != nil {
		t.Fatal(second.Err)
	}
	if first.Tree.Len() != second.Tree.Len() {
		t.Errorf("node counts differ after round trip: %d vs %d", first.Tree.Len(), second.Tree.Len())
	}
}

func failingBag(t *testing.T, input string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	result := driver.ParseBytes("bad.rcl", []byte(input), driver.ParseOpts{MaxDiagnostics: 10})
	if result.Err == nil {
		t.Fatalf("expected %q to fail", input)
	}
	return result.Bag, result.FileSet
}

func TestPrettyOutput(t *testing.T) {
	bag, fs := failingBag(t, "a +")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()

	for _, want := range []string{"bad.rcl:1:4:", "ERROR", "RCL2009", "a +", "^"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyUnderlineSpansToken(t *testing.T) {
	bag, fs := failingBag(t, "a ++ b")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()
	// The offending token starts at column 4 ("+" then "+ b" fails), so
	// the caret line must have its ^ under that column.
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected heading, snippet and caret lines:\n%s", out)
	}
	caret := lines[2]
	if !strings.Contains(caret, "^") {
		t.Fatalf("no caret in %q", caret)
	}
	if idx := strings.Index(caret, "^"); idx != 5 { // 2 indent + col 4
		t.Errorf("caret at byte %d, want 5:\n%s", idx, out)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	bag, fs := failingBag(t, "{1, 2")
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != diag.SynUnclosedBrace.ID() {
		t.Errorf("code = %q, want %q", d.Code, diag.SynUnclosedBrace.ID())
	}
	if d.Severity != "ERROR" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Location.StartLine == 0 {
		t.Error("positions requested but missing")
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag := diag.NewBag(10)
	fs := source.NewFileSet()
	fs.AddVirtual("x.rcl", []byte("abc"))
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "m",
			Primary:  source.Span{File: 0, Start: i, End: i + 1},
		})
	}
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	result := driver.TokenizeBytes("tok.rcl", []byte("let x = 1"), 10)
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, result.Tokens, result.FileSet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"let", "Ident", "'='", "DecLit", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("token dump missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	result := driver.TokenizeBytes("tok.rcl", []byte("a // c\n"), 10)
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, result.Tokens, result.FileSet); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	// Ident, Comment, EOF
	if len(out) != 3 {
		t.Fatalf("token count = %d, want 3: %v", len(out), out)
	}
	if out[1].Kind != "Comment" || out[1].Text != "// c\n" {
		t.Errorf("comment token = %+v", out[1])
	}
}

func TestFormatCSTPretty(t *testing.T) {
	result := driver.ParseBytes("t.rcl", []byte("let x = 1; x"), driver.ParseOpts{MaxDiagnostics: 10})
	if result.Err != nil {
		t.Fatal(result.Err)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatCSTPretty(&buf, result.Tree, result.FileSet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"SourceFile", "ExprStmt", "StmtLet", "ident: Ident", "value: Number", "body: Ident"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree dump missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCSTJSON(t *testing.T) {
	result := driver.ParseBytes("t.rcl", []byte("[1]"), driver.ParseOpts{MaxDiagnostics: 10})
	if result.Err != nil {
		t.Fatal(result.Err)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatCSTJSON(&buf, result.Tree); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.CSTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Kind != "SourceFile" {
		t.Errorf("root kind = %q", out.Kind)
	}
	if len(out.Children) != 1 || out.Children[0].Kind != "ExprTermBrackets" {
		t.Errorf("children = %+v", out.Children)
	}
}
