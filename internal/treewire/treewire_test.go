package treewire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"crest/internal/syntax"
)

func encodePayload(t *testing.T, p payload) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(p); err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func sampleTree() syntax.Node {
	alias := syntax.MakeTypeAliasDecl(
		syntax.MakeTypealiasKeyword(syntax.LineComment("// wire\n"), syntax.Spaces(1)),
		syntax.MakeIdentifier("Bytes", nil, syntax.Spaces(1)),
		syntax.GenericParameterClause{},
		syntax.MakeEqualToken(nil, syntax.Spaces(1)),
		syntax.MakeArrayType(
			syntax.MakeLeftSquareToken(nil, nil),
			syntax.MakeSimpleTypeIdentifier("UInt8", nil, nil).AsType(),
			syntax.MakeRightSquareToken(nil, nil),
		).AsType(),
	)
	return alias.Node
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tree := sampleTree()
	var buf bytes.Buffer
	if err := Encode(&buf, tree); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(tree) {
		t.Fatalf("decoded tree diverges:\n%s\nvs\n%s", got.DumpString(), tree.DumpString())
	}
	if got.Text() != tree.Text() {
		t.Fatalf("decoded text %q, want %q", got.Text(), tree.Text())
	}
}

func TestEncodePreservesMissingAndAbsent(t *testing.T) {
	blank := syntax.MakeBlank(syntax.KindStructDecl)
	var buf bytes.Buffer
	if err := Encode(&buf, blank); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsMissing() {
		t.Fatal("blank lost its missing flag")
	}
	if !got.Equal(blank) {
		t.Fatal("decoded blank diverges")
	}
	if _, ok := got.Child(2); ok {
		t.Fatal("absent optional slot came back present")
	}
}

func TestEncodeRejectsAbsentNode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, syntax.Node{}); err == nil {
		t.Fatal("encoding an absent node should fail")
	}
}

func TestDecodeRejectsNewerSchema(t *testing.T) {
	r := encodePayload(t, payload{
		Schema: SchemaVersion + 1,
		Root:   encodeNode(sampleTree()),
	})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "newer") {
		t.Fatalf("schema check: %v", err)
	}
}

func TestDecodeRejectsMissingRoot(t *testing.T) {
	r := encodePayload(t, payload{Schema: SchemaVersion})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "no root") {
		t.Fatalf("root check: %v", err)
	}
}

func TestDecodeRejectsUnknownKinds(t *testing.T) {
	r := encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{Kind: 200}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "unknown node kind") {
		t.Fatalf("node kind check: %v", err)
	}

	r = encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:  uint8(syntax.KindToken),
		Token: 200,
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "unknown token kind") {
		t.Fatalf("token kind check: %v", err)
	}

	r = encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:    uint8(syntax.KindToken),
		Token:   uint8(syntax.Identifier),
		Text:    "x",
		Leading: []wirePiece{{Kind: 200, Text: "?"}},
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "unknown trivia kind") {
		t.Fatalf("trivia kind check: %v", err)
	}
}

func TestDecodeRejectsMissingTokenWithText(t *testing.T) {
	r := encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:    uint8(syntax.KindToken),
		Missing: true,
		Token:   uint8(syntax.Identifier),
		Text:    "ghost",
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "carries text") {
		t.Fatalf("missing token check: %v", err)
	}
}

func TestDecodeRejectsWrongFixedText(t *testing.T) {
	r := encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:  uint8(syntax.KindToken),
		Token: uint8(syntax.StructKeyword),
		Text:  "class",
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "invalid token") {
		t.Fatalf("fixed text check: %v", err)
	}
}

// A payload whose children violate the shape registry must come back as an
// error, never as a panic or a malformed tree.
func TestDecodeRejectsShapeViolation(t *testing.T) {
	question := &wireNode{
		Kind:  uint8(syntax.KindToken),
		Token: uint8(syntax.Question),
		Text:  "?",
	}
	r := encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:     uint8(syntax.KindOptionalType),
		Children: []*wireNode{question, question},
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "invalid layout") {
		t.Fatalf("shape check: %v", err)
	}

	r = encodePayload(t, payload{Schema: SchemaVersion, Root: &wireNode{
		Kind:     uint8(syntax.KindCodeBlock),
		Children: []*wireNode{question},
	}})
	if _, err := Decode(r); err == nil || !strings.Contains(err.Error(), "invalid layout") {
		t.Fatalf("arity check: %v", err)
	}
}
