package lexer

import (
	"testing"

	"rcl/internal/source"
)

func newCursorFor(t *testing.T, content string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.rcl", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorBumpAndEOF(t *testing.T) {
	c := newCursorFor(t, "ab")
	if c.EOF() {
		t.Fatal("fresh cursor should not be at EOF")
	}
	if b := c.Bump(); b != 'a' {
		t.Errorf("Bump = %q, want 'a'", b)
	}
	if b := c.Bump(); b != 'b' {
		t.Errorf("Bump = %q, want 'b'", b)
	}
	if !c.EOF() {
		t.Error("cursor should be at EOF")
	}
	if b := c.Bump(); b != 0 {
		t.Errorf("Bump at EOF = %q, want 0", b)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := newCursorFor(t, "xy")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 with one byte left should report !ok")
	}
}

func TestCursorEat(t *testing.T) {
	c := newCursorFor(t, "=x")
	if !c.Eat('=') {
		t.Fatal("Eat('=') should succeed")
	}
	if c.Eat('=') {
		t.Fatal("Eat('=') should fail on 'x'")
	}
	if c.Off != 1 {
		t.Errorf("Off = %d, want 1", c.Off)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := newCursorFor(t, "hello")
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v, want 0-2", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Off after Reset = %d, want 0", c.Off)
	}
}
