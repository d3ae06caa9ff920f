package syntax_test

import (
	"strings"
	"testing"

	"crest/internal/syntax"
)

func TestTriviaConstructors(t *testing.T) {
	cases := []struct {
		name   string
		trivia syntax.Trivia
		kind   syntax.TriviaKind
		text   string
	}{
		{"spaces", syntax.Spaces(3), syntax.TriviaSpace, "   "},
		{"tabs", syntax.Tabs(2), syntax.TriviaSpace, "\t\t"},
		{"newlines", syntax.Newlines(2), syntax.TriviaNewline, "\n\n"},
		{"line comment", syntax.LineComment("// x"), syntax.TriviaLineComment, "// x"},
		{"block comment", syntax.BlockComment("/* x */"), syntax.TriviaBlockComment, "/* x */"},
		{"doc line", syntax.DocLineComment("/// x"), syntax.TriviaDocLineComment, "/// x"},
		{"garbage", syntax.GarbageText("\x00\x01"), syntax.TriviaGarbageText, "\x00\x01"},
	}
	for _, tc := range cases {
		if len(tc.trivia) != 1 {
			t.Fatalf("%s: expected one piece, got %d", tc.name, len(tc.trivia))
		}
		p := tc.trivia[0]
		if p.Kind != tc.kind || p.Text != tc.text {
			t.Fatalf("%s: got %v %q", tc.name, p.Kind, p.Text)
		}
	}
}

func TestTriviaZeroCountIsEmpty(t *testing.T) {
	if syntax.Spaces(0) != nil || syntax.Newlines(-1) != nil {
		t.Fatal("zero or negative runs must produce empty trivia")
	}
}

func TestTriviaEqualIsPieceWise(t *testing.T) {
	a := syntax.Spaces(1).Append(syntax.LineComment("// hi"))
	b := syntax.Spaces(1).Append(syntax.LineComment("// hi"))
	c := syntax.LineComment("// hi").Append(syntax.Spaces(1))

	if !a.Equal(b) {
		t.Fatal("identically-built trivia must compare equal")
	}
	if a.Equal(c) {
		t.Fatal("piece order matters; reordered trivia must not compare equal")
	}
	if !syntax.Trivia(nil).Equal(syntax.Trivia{}) {
		t.Fatal("empty sequences compare equal regardless of representation")
	}
}

func TestTriviaNeverMerges(t *testing.T) {
	tr := syntax.Spaces(1).Append(syntax.Spaces(2))
	if len(tr) != 2 {
		t.Fatalf("adjacent space pieces must stay separate, got %d pieces", len(tr))
	}
	if tr.Text() != "   " {
		t.Fatalf("text must still concatenate exactly: %q", tr.Text())
	}
}

func TestTriviaAppendDoesNotMutate(t *testing.T) {
	base := syntax.Spaces(1)
	_ = base.Append(syntax.Newlines(1))
	if len(base) != 1 {
		t.Fatal("Append must not modify the receiver")
	}
}

func TestTriviaTextLenAndWrite(t *testing.T) {
	tr := syntax.Spaces(2).Append(syntax.BlockComment("/* ж */"))
	want := "  /* ж */"
	if tr.Text() != want {
		t.Fatalf("got %q, want %q", tr.Text(), want)
	}
	if int(tr.TextLen()) != len(want) {
		t.Fatalf("TextLen %d, want %d (byte length, not rune count)", tr.TextLen(), len(want))
	}
	var sb strings.Builder
	if err := tr.WriteText(&sb); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if sb.String() != want {
		t.Fatalf("WriteText gave %q", sb.String())
	}
}

func TestTriviaKindByName(t *testing.T) {
	kind, ok := syntax.TriviaKindByName("BlockComment")
	if !ok || kind != syntax.TriviaBlockComment {
		t.Fatalf("lookup failed: %v %v", kind, ok)
	}
	if _, ok := syntax.TriviaKindByName("NotAKind"); ok {
		t.Fatal("unknown name must not resolve")
	}
}
