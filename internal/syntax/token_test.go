package syntax_test

import (
	"testing"

	"crest/internal/syntax"
)

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s must panic", what)
		}
	}()
	fn()
}

func TestMakeTokenBasics(t *testing.T) {
	tok := syntax.MakeToken(syntax.Identifier, "Point", syntax.Spaces(1), syntax.Newlines(1))
	if tok.IsMissing() {
		t.Fatal("scanned token must not be missing")
	}
	if tok.TokenKind() != syntax.Identifier || tok.RawText() != "Point" {
		t.Fatalf("got %v %q", tok.TokenKind(), tok.RawText())
	}
	if got := tok.Text(); got != " Point\n" {
		t.Fatalf("reconstructed text %q", got)
	}
}

func TestMakeTokenRejectsUnknownKind(t *testing.T) {
	expectPanic(t, "MakeToken with out-of-range kind", func() {
		syntax.MakeToken(syntax.TokenKind(200), "x", nil, nil)
	})
}

func TestMakeTokenRejectsWrongFixedText(t *testing.T) {
	expectPanic(t, "comma token with non-comma text", func() {
		syntax.MakeToken(syntax.Comma, ";", nil, nil)
	})
}

func TestMakeMissingToken(t *testing.T) {
	tok := syntax.MakeMissingToken(syntax.RightBrace)
	if !tok.IsMissing() {
		t.Fatal("missing token must report IsMissing")
	}
	if tok.RawText() != "" || tok.Text() != "" {
		t.Fatalf("missing token must contribute no text, got %q/%q", tok.RawText(), tok.Text())
	}
	if len(tok.LeadingTrivia()) != 0 || len(tok.TrailingTrivia()) != 0 {
		t.Fatal("missing token defaults to empty trivia")
	}
	if tok.Width() != 0 {
		t.Fatalf("missing token width must be 0, got %d", tok.Width())
	}
}

func TestCanonicalTokensSynthesizeText(t *testing.T) {
	cases := []struct {
		tok  syntax.Token
		kind syntax.TokenKind
		text string
	}{
		{syntax.MakeStructKeyword(nil, syntax.Spaces(1)), syntax.StructKeyword, "struct"},
		{syntax.MakeTypealiasKeyword(nil, nil), syntax.TypealiasKeyword, "typealias"},
		{syntax.MakeFallthroughKeyword(nil, nil), syntax.FallthroughKeyword, "fallthrough"},
		{syntax.MakeCommaToken(nil, nil), syntax.Comma, ","},
		{syntax.MakeArrowToken(syntax.Spaces(1), syntax.Spaces(1)), syntax.Arrow, "->"},
		{syntax.MakeEqualityOperator(nil, nil), syntax.EqualEqual, "=="},
		{syntax.MakeLeftBraceToken(nil, nil), syntax.LeftBrace, "{"},
		{syntax.MakeAtSignToken(nil, nil), syntax.AtSign, "@"},
	}
	for _, tc := range cases {
		if tc.tok.TokenKind() != tc.kind {
			t.Fatalf("kind %v, want %v", tc.tok.TokenKind(), tc.kind)
		}
		if tc.tok.RawText() != tc.text {
			t.Fatalf("%v text %q, want %q", tc.kind, tc.tok.RawText(), tc.text)
		}
		if tc.tok.IsMissing() {
			t.Fatalf("%v canonical token must not be missing", tc.kind)
		}
	}
}

func TestPostfixTokensHaveNoLeadingTrivia(t *testing.T) {
	q := syntax.MakeQuestionPostfixToken(syntax.Spaces(1))
	if len(q.LeadingTrivia()) != 0 {
		t.Fatal("postfix '?' must have empty leading trivia")
	}
	if q.Text() != "? " {
		t.Fatalf("got %q", q.Text())
	}
	e := syntax.MakeExclaimPostfixToken(nil)
	if e.Text() != "!" {
		t.Fatalf("got %q", e.Text())
	}
}

func TestTriviaFreeCanonicalTokensAreInterned(t *testing.T) {
	a := syntax.MakeCommaToken(nil, nil)
	b := syntax.MakeCommaToken(nil, nil)
	if !a.Same(b.Node) {
		t.Fatal("trivia-free canonical tokens must share one raw instance")
	}
	c := syntax.MakeCommaToken(syntax.Spaces(1), nil)
	if c.Same(a.Node) {
		t.Fatal("a comma with trivia must get its own instance")
	}
}

func TestContextualMetaTokens(t *testing.T) {
	ty := syntax.MakeTypeToken(nil, nil)
	if ty.TokenKind() != syntax.Identifier || ty.RawText() != "Type" {
		t.Fatalf("got %v %q", ty.TokenKind(), ty.RawText())
	}
	proto := syntax.MakeProtocolToken(nil, nil)
	if proto.RawText() != "Protocol" {
		t.Fatalf("got %q", proto.RawText())
	}
}

func TestTokenKindTables(t *testing.T) {
	if !syntax.StructKeyword.IsKeyword() || syntax.Comma.IsKeyword() {
		t.Fatal("keyword classification broken")
	}
	if !syntax.Arrow.IsPunct() || syntax.Identifier.IsPunct() {
		t.Fatal("punctuation classification broken")
	}
	text, ok := syntax.Semicolon.FixedText()
	if !ok || text != ";" {
		t.Fatalf("semicolon fixed text: %q %v", text, ok)
	}
	if _, ok := syntax.Identifier.FixedText(); ok {
		t.Fatal("identifier has no fixed text")
	}
	kind, ok := syntax.TokenKindByName("RightAngle")
	if !ok || kind != syntax.RightAngle {
		t.Fatalf("lookup: %v %v", kind, ok)
	}
}
