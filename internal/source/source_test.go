package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nx")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // the newline itself belongs to line 1
		{3, 2, 1},  // 'c'
		{5, 2, 3},  // newline after cd
		{6, 3, 1},  // empty line
		{7, 4, 1},  // 'x'
		{8, 4, 2},  // one past the end
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	got := toLineCol(nil, 5)
	if got.Line != 1 || got.Col != 6 {
		t.Errorf("toLineCol = %d:%d, want 1:6", got.Line, got.Col)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc" {
		t.Errorf("got %q, lone \\r should survive", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Error("no \\r means no change")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte("\xEF\xBB\xBFx"))
	if !had || string(out) != "x" {
		t.Errorf("removeBOM = %q, %v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("short input should pass through, got %q, %v", out, had)
	}
}

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.rcl", []byte("a\nb"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Error("virtual file should carry FileVirtual")
	}
	if len(f.LineIdx) != 1 || f.LineIdx[0] != 1 {
		t.Errorf("LineIdx = %v, want [1]", f.LineIdx)
	}
	if f.Hash == [32]byte{} {
		t.Error("hash should be computed")
	}

	got, ok := fs.GetByPath("mem.rcl")
	if !ok || got.ID != id {
		t.Errorf("GetByPath = %v, %v", got, ok)
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.rcl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Errorf("content = %q, want normalized a\\nb", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %v, want BOM and CRLF recorded", f.Flags)
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rcl", []byte("ab\ncd"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rcl", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSpanCoverAndText(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 6}
	b := Span{File: 0, Start: 1, End: 5}
	c := a.Cover(b)
	if c.Start != 1 || c.End != 6 {
		t.Errorf("Cover = %v, want 1-6", c)
	}

	other := Span{File: 1, Start: 0, End: 9}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover should be a no-op, got %v", got)
	}

	fs := NewFileSet()
	id := fs.AddVirtual("t.rcl", []byte("hello"))
	if got := (Span{File: id, Start: 1, End: 4}).Text(fs.Get(id)); got != "ell" {
		t.Errorf("Text = %q, want ell", got)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	if in.Len() != 1 {
		t.Fatalf("fresh interner Len = %d, want 1 (reserved empty)", in.Len())
	}
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string ID = %d, want 0", id)
	}

	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Errorf("same string interned twice: %d vs %d", a, b)
	}
	c := in.InternBytes([]byte("bar"))
	if c == a {
		t.Error("distinct strings share an ID")
	}

	if s, ok := in.Lookup(a); !ok || s != "foo" {
		t.Errorf("Lookup = %q, %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("unknown ID should not resolve")
	}
	if got := in.MustLookup(c); got != "bar" {
		t.Errorf("MustLookup = %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a//b/../c"); got != "a/c" {
		t.Errorf("normalizePath = %q, want a/c", got)
	}
}
