package syntax

// Canonical constructors for fixed keyword and punctuation tokens. Each
// synthesizes its grammar-dictated literal, so a Comma token whose text is
// not "," cannot exist. Trivia-free instances are interned: fixed-text
// tokens without trivia are all interchangeable, and parsers mint them in
// bulk.

// bareTokens holds the one shared trivia-free instance per fixed-text kind.
// Built once before main and read-only afterwards.
var bareTokens = func() map[TokenKind]*rawNode {
	out := make(map[TokenKind]*rawNode, len(fixedTokenText))
	for kind, text := range fixedTokenText {
		out[kind] = newRawToken(kind, text, nil, nil, false)
	}
	return out
}()

func canonToken(kind TokenKind, leading, trailing Trivia) Token {
	if len(leading) == 0 && len(trailing) == 0 {
		return Token{wrap(bareTokens[kind])}
	}
	text := fixedTokenText[kind]
	return Token{wrap(newRawToken(kind, text, leading, trailing, false))}
}

// MakeIdentifier builds a name token with the given text and trivia.
func MakeIdentifier(name string, leading, trailing Trivia) Token {
	return MakeToken(Identifier, name, leading, trailing)
}

// MakeStructKeyword builds a 'struct' keyword token.
func MakeStructKeyword(leading, trailing Trivia) Token {
	return canonToken(StructKeyword, leading, trailing)
}

// MakeTypealiasKeyword builds a 'typealias' keyword token.
func MakeTypealiasKeyword(leading, trailing Trivia) Token {
	return canonToken(TypealiasKeyword, leading, trailing)
}

// MakeWhereKeyword builds a 'where' keyword token.
func MakeWhereKeyword(leading, trailing Trivia) Token {
	return canonToken(WhereKeyword, leading, trailing)
}

// MakeInoutKeyword builds an 'inout' keyword token.
func MakeInoutKeyword(leading, trailing Trivia) Token {
	return canonToken(InoutKeyword, leading, trailing)
}

// MakeThrowsKeyword builds a 'throws' keyword token.
func MakeThrowsKeyword(leading, trailing Trivia) Token {
	return canonToken(ThrowsKeyword, leading, trailing)
}

// MakeRethrowsKeyword builds a 'rethrows' keyword token.
func MakeRethrowsKeyword(leading, trailing Trivia) Token {
	return canonToken(RethrowsKeyword, leading, trailing)
}

// MakeBreakKeyword builds a 'break' keyword token.
func MakeBreakKeyword(leading, trailing Trivia) Token {
	return canonToken(BreakKeyword, leading, trailing)
}

// MakeFallthroughKeyword builds a 'fallthrough' keyword token.
func MakeFallthroughKeyword(leading, trailing Trivia) Token {
	return canonToken(FallthroughKeyword, leading, trailing)
}

// MakeLeftBraceToken builds a '{' token.
func MakeLeftBraceToken(leading, trailing Trivia) Token {
	return canonToken(LeftBrace, leading, trailing)
}

// MakeRightBraceToken builds a '}' token.
func MakeRightBraceToken(leading, trailing Trivia) Token {
	return canonToken(RightBrace, leading, trailing)
}

// MakeLeftParenToken builds a '(' token.
func MakeLeftParenToken(leading, trailing Trivia) Token {
	return canonToken(LeftParen, leading, trailing)
}

// MakeRightParenToken builds a ')' token.
func MakeRightParenToken(leading, trailing Trivia) Token {
	return canonToken(RightParen, leading, trailing)
}

// MakeLeftSquareToken builds a '[' token.
func MakeLeftSquareToken(leading, trailing Trivia) Token {
	return canonToken(LeftSquare, leading, trailing)
}

// MakeRightSquareToken builds a ']' token.
func MakeRightSquareToken(leading, trailing Trivia) Token {
	return canonToken(RightSquare, leading, trailing)
}

// MakeLeftAngleToken builds a '<' token.
func MakeLeftAngleToken(leading, trailing Trivia) Token {
	return canonToken(LeftAngle, leading, trailing)
}

// MakeRightAngleToken builds a '>' token.
func MakeRightAngleToken(leading, trailing Trivia) Token {
	return canonToken(RightAngle, leading, trailing)
}

// MakeCommaToken builds a ',' token.
func MakeCommaToken(leading, trailing Trivia) Token {
	return canonToken(Comma, leading, trailing)
}

// MakeColonToken builds a ':' token.
func MakeColonToken(leading, trailing Trivia) Token {
	return canonToken(Colon, leading, trailing)
}

// MakeSemicolonToken builds a ';' token.
func MakeSemicolonToken(leading, trailing Trivia) Token {
	return canonToken(Semicolon, leading, trailing)
}

// MakeDotToken builds a '.' token.
func MakeDotToken(leading, trailing Trivia) Token {
	return canonToken(Dot, leading, trailing)
}

// MakeEqualToken builds an '=' token.
func MakeEqualToken(leading, trailing Trivia) Token {
	return canonToken(Equal, leading, trailing)
}

// MakeArrowToken builds an '->' token.
func MakeArrowToken(leading, trailing Trivia) Token {
	return canonToken(Arrow, leading, trailing)
}

// MakeEqualityOperator builds an '==' operator token.
func MakeEqualityOperator(leading, trailing Trivia) Token {
	return canonToken(EqualEqual, leading, trailing)
}

// MakeQuestionPostfixToken builds a postfix '?' token. Postfix operators bind
// tight to their base, so leading trivia is always empty.
func MakeQuestionPostfixToken(trailing Trivia) Token {
	return canonToken(Question, nil, trailing)
}

// MakeExclaimPostfixToken builds a postfix '!' token with empty leading
// trivia.
func MakeExclaimPostfixToken(trailing Trivia) Token {
	return canonToken(Exclaim, nil, trailing)
}

// MakeAtSignToken builds an '@' token.
func MakeAtSignToken(leading, trailing Trivia) Token {
	return canonToken(AtSign, leading, trailing)
}

// MakeTypeToken builds the contextual 'Type' identifier used in metatypes.
func MakeTypeToken(leading, trailing Trivia) Token {
	return MakeToken(Identifier, "Type", leading, trailing)
}

// MakeProtocolToken builds the contextual 'Protocol' identifier used in
// metatypes.
func MakeProtocolToken(leading, trailing Trivia) Token {
	return MakeToken(Identifier, "Protocol", leading, trailing)
}
