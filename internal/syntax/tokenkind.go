package syntax

// TokenKind represents the category of a terminal token.
type TokenKind uint8

const (
	// UnknownToken is an unclassifiable terminal produced during recovery.
	UnknownToken TokenKind = iota
	// Identifier is a name token with caller-supplied text.
	Identifier

	// StructKeyword is the 'struct' keyword.
	StructKeyword // struct
	// TypealiasKeyword is the 'typealias' keyword.
	TypealiasKeyword // typealias
	// WhereKeyword is the 'where' keyword.
	WhereKeyword // where
	// InoutKeyword is the 'inout' keyword.
	InoutKeyword // inout
	// ThrowsKeyword is the 'throws' keyword.
	ThrowsKeyword // throws
	// RethrowsKeyword is the 'rethrows' keyword.
	RethrowsKeyword // rethrows
	// BreakKeyword is the 'break' keyword.
	BreakKeyword // break
	// FallthroughKeyword is the 'fallthrough' keyword.
	FallthroughKeyword // fallthrough

	// LeftBrace is '{'.
	LeftBrace // {
	// RightBrace is '}'.
	RightBrace // }
	// LeftParen is '('.
	LeftParen // (
	// RightParen is ')'.
	RightParen // )
	// LeftSquare is '['.
	LeftSquare // [
	// RightSquare is ']'.
	RightSquare // ]
	// LeftAngle is '<'.
	LeftAngle // <
	// RightAngle is '>'.
	RightAngle // >
	// Comma is ','.
	Comma // ,
	// Colon is ':'.
	Colon // :
	// Semicolon is ';'.
	Semicolon // ;
	// Dot is '.'.
	Dot // .
	// Equal is '='.
	Equal // =
	// Arrow is '->'.
	Arrow // ->
	// EqualEqual is the '==' operator.
	EqualEqual // ==
	// Question is '?'.
	Question // ?
	// Exclaim is '!'.
	Exclaim // !
	// AtSign is '@'.
	AtSign // @

	tokenKindCount
)

var tokenKindNames = [...]string{
	UnknownToken:       "UnknownToken",
	Identifier:         "Identifier",
	StructKeyword:      "StructKeyword",
	TypealiasKeyword:   "TypealiasKeyword",
	WhereKeyword:       "WhereKeyword",
	InoutKeyword:       "InoutKeyword",
	ThrowsKeyword:      "ThrowsKeyword",
	RethrowsKeyword:    "RethrowsKeyword",
	BreakKeyword:       "BreakKeyword",
	FallthroughKeyword: "FallthroughKeyword",
	LeftBrace:          "LeftBrace",
	RightBrace:         "RightBrace",
	LeftParen:          "LeftParen",
	RightParen:         "RightParen",
	LeftSquare:         "LeftSquare",
	RightSquare:        "RightSquare",
	LeftAngle:          "LeftAngle",
	RightAngle:         "RightAngle",
	Comma:              "Comma",
	Colon:              "Colon",
	Semicolon:          "Semicolon",
	Dot:                "Dot",
	Equal:              "Equal",
	Arrow:              "Arrow",
	EqualEqual:         "EqualEqual",
	Question:           "Question",
	Exclaim:            "Exclaim",
	AtSign:             "AtSign",
}

// fixedTokenText maps kinds whose literal text is dictated by the grammar.
// Identifier and UnknownToken carry caller-supplied text and are absent here.
var fixedTokenText = map[TokenKind]string{
	StructKeyword:      "struct",
	TypealiasKeyword:   "typealias",
	WhereKeyword:       "where",
	InoutKeyword:       "inout",
	ThrowsKeyword:      "throws",
	RethrowsKeyword:    "rethrows",
	BreakKeyword:       "break",
	FallthroughKeyword: "fallthrough",
	LeftBrace:          "{",
	RightBrace:         "}",
	LeftParen:          "(",
	RightParen:         ")",
	LeftSquare:         "[",
	RightSquare:        "]",
	LeftAngle:          "<",
	RightAngle:         ">",
	Comma:              ",",
	Colon:              ":",
	Semicolon:          ";",
	Dot:                ".",
	Equal:              "=",
	Arrow:              "->",
	EqualEqual:         "==",
	Question:           "?",
	Exclaim:            "!",
	AtSign:             "@",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// FixedText returns the grammar-dictated literal for the kind, if any.
func (k TokenKind) FixedText() (string, bool) {
	text, ok := fixedTokenText[k]
	return text, ok
}

// IsKeyword reports whether the token kind is a language keyword.
func (k TokenKind) IsKeyword() bool {
	switch k {
	case StructKeyword, TypealiasKeyword, WhereKeyword, InoutKeyword,
		ThrowsKeyword, RethrowsKeyword, BreakKeyword, FallthroughKeyword:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token kind is punctuation or an operator.
func (k TokenKind) IsPunct() bool {
	switch k {
	case LeftBrace, RightBrace, LeftParen, RightParen, LeftSquare, RightSquare,
		LeftAngle, RightAngle, Comma, Colon, Semicolon, Dot, Equal, Arrow,
		EqualEqual, Question, Exclaim, AtSign:
		return true
	default:
		return false
	}
}

// ValidTokenKind reports whether k names a known terminal kind.
func ValidTokenKind(k TokenKind) bool {
	return k < tokenKindCount
}

// TokenKindByName resolves a kind from its String() form. Used by tooling
// that reads kind names from fixtures or command lines.
func TokenKindByName(name string) (TokenKind, bool) {
	for i, n := range tokenKindNames {
		if n == name {
			return TokenKind(i), true
		}
	}
	return UnknownToken, false
}
