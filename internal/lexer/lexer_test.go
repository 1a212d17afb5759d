package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"rcl/internal/diag"
	"rcl/internal/lexer"
	"rcl/internal/source"
	"rcl/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, span source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rcl", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"UPPER", "UPPER"},
		// A dash continues an identifier; kebab-case is one token.
		{"font-size", "font-size"},
		{"a-b-c", "a-b-c"},
		{"_-_", "_-_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestIdentifierDoesNotStartWithDigit(t *testing.T) {
	expectTokens(t, "1abc", []token.Kind{token.DecLit, token.Ident})
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"and", token.KwAnd},
		{"or", token.KwOr},
		{"not", token.KwNot},
		{"let", token.KwLet},
		{"for", token.KwFor},
		{"in", token.KwIn},
		{"if", token.KwIf},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, tok.Kind)
			}
		})
	}
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	// Maximal munch: a keyword followed by ident bytes is one identifier.
	for _, input := range []string{"letter", "android", "iff", "inner", "nothing", "let-x"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	expectSingleToken(t, "Let", token.Ident, "Let")
	expectSingleToken(t, "AND", token.Ident, "AND")
}

func TestNumbers_Decimal(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"0", "0"},
		{"7", "7"},
		{"123", "123"},
		{"1_000_000", "1_000_000"},
		{"3.14", "3.14"},
		{"1.0e10", "1.0e10"},
		{"2E-5", "2E-5"},
		{"6e+1", "6e+1"},
		{"1_0.2_5e1_0", "1_0.2_5e1_0"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.DecLit, tt.text)
		})
	}
}

func TestNumbers_Prefixed(t *testing.T) {
	expectSingleToken(t, "0b1010", token.BinLit, "0b1010")
	expectSingleToken(t, "0b1_0", token.BinLit, "0b1_0")
	expectSingleToken(t, "0xff", token.HexLit, "0xff")
	expectSingleToken(t, "0xDEAD_beef", token.HexLit, "0xDEAD_beef")
}

func TestNumbers_LeadingZeroSplits(t *testing.T) {
	// "01" is not a decimal literal; it lexes as "0" then "1".
	expectTokens(t, "01", []token.Kind{token.DecLit, token.DecLit})
}

func TestNumbers_PrefixWithoutDigits(t *testing.T) {
	// "0b" with no binary digit falls back to "0" + identifier.
	expectTokens(t, "0b", []token.Kind{token.DecLit, token.Ident})
	expectTokens(t, "0x", []token.Kind{token.DecLit, token.Ident})
	// "0b2" likewise: the 2 is not a binary digit, and maximal munch
	// then folds it into the identifier "b2".
	expectTokens(t, "0b2", []token.Kind{token.DecLit, token.Ident})
}

func TestNumbers_DotWithoutDigitIsFieldAccess(t *testing.T) {
	// The fraction rule needs a digit after the dot, so "1.len" stays
	// number, dot, identifier.
	expectTokens(t, "1.len", []token.Kind{token.DecLit, token.Dot, token.Ident})
}

func TestNumbers_ExponentWithoutDigitRewinds(t *testing.T) {
	// "10e" has no exponent digits; the e belongs to what follows.
	expectTokens(t, "10e", []token.Kind{token.DecLit, token.Ident})
	expectTokens(t, "10e+", []token.Kind{token.DecLit, token.Ident, token.Plus})
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `""`, token.StringLit, `""`)
	// Raw capture: a backslash is just a byte.
	expectSingleToken(t, `"a\nb"`, token.StringLit, `"a\nb"`)
	expectSingleToken(t, `"tab\t"`, token.StringLit, `"tab\t"`)
}

func TestStrings_UnterminatedAtNewline(t *testing.T) {
	lx, reporter := makeTestLexer("\"abc\nx")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected one LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
	// Lexing continues after the failure.
	if next := lx.Next(); next.Kind != token.Ident {
		t.Errorf("expected Ident after invalid string, got %v", next.Kind)
	}
}

func TestStrings_UnterminatedAtEOF(t *testing.T) {
	lx, reporter := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected one LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "| * + - / < <= > >= == !=", []token.Kind{
		token.Pipe, token.Star, token.Plus, token.Minus, token.Slash,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.EqEq, token.BangEq,
	})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "{ } [ ] ( ) : ; , . =", []token.Kind{
		token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.LParen, token.RParen, token.Colon, token.Semicolon,
		token.Comma, token.Dot, token.Assign,
	})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("a @ b")
	tokens := collectAllTokens(lx)
	kinds := []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tokens[i].Kind)
		}
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected one LexUnknownChar, got %v", reporter.ErrorMessages())
	}
}

func TestComment_IncludesNewline(t *testing.T) {
	lx, _ := makeTestLexer("// hi\nx")
	tok := lx.Next()
	if tok.Kind != token.Comment {
		t.Fatalf("expected Comment, got %v", tok.Kind)
	}
	if tok.Text != "// hi\n" {
		t.Errorf("comment text should include the newline, got %q", tok.Text)
	}
}

func TestComment_AtEOF(t *testing.T) {
	expectSingleToken(t, "// tail", token.Comment, "// tail")
}

func TestBlank_TwoNewlinesSignificant(t *testing.T) {
	// One newline between tokens is plain whitespace; two or more become
	// a Blank token spanning the whole run.
	expectTokens(t, "a\nb", []token.Kind{token.Ident, token.Ident})
	expectTokens(t, "a\n\nb", []token.Kind{token.Ident, token.Blank, token.Ident})
	expectTokens(t, "a\n \t\n  b", []token.Kind{token.Ident, token.Blank, token.Ident})
}

func TestBlank_SpansWholeRun(t *testing.T) {
	lx, _ := makeTestLexer("a\n\n\nb")
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	blank := lx.Next()
	if blank.Kind != token.Blank {
		t.Fatalf("expected Blank, got %v", blank.Kind)
	}
	if blank.Text != "\n\n\n" {
		t.Errorf("blank should cover the whole run, got %q", blank.Text)
	}
}

func TestSlashAloneIsOperator(t *testing.T) {
	expectTokens(t, "a / b", []token.Kind{token.Ident, token.Slash, token.Ident})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("x y")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Fatalf("Peek should be stable: %v vs %v", p1, p2)
	}
	if tok := lx.Next(); tok.Text != "x" {
		t.Errorf("Next after Peek should return the peeked token, got %q", tok.Text)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for n := 0; n < 3; n++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}

func TestTokenSpansAreContiguousText(t *testing.T) {
	input := "let x = {a: 1, // c\n\n\nb = 0xff}"
	lx, _ := makeTestLexer(input)
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			continue
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("%v: span text %q != token text %q", tok.Kind, got, tok.Text)
		}
	}
}
