package syntax

import (
	"io"
	"strings"

	"fortio.org/safecast"
)

// TriviaKind represents the category of a single trivia piece.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and/or tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of line terminators.
	TriviaNewline
	// TriviaLineComment is a // comment up to (not including) the newline.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment, delimiters included.
	TriviaBlockComment
	// TriviaDocLineComment is a /// doc comment line.
	TriviaDocLineComment
	// TriviaDocBlockComment is a /** ... */ doc comment.
	TriviaDocBlockComment
	// TriviaGarbageText is out-of-band text the scanner could not classify.
	// It rides along so malformed input still reconstructs byte-for-byte.
	TriviaGarbageText
)

var triviaKindNames = [...]string{
	TriviaSpace:           "Space",
	TriviaNewline:         "Newline",
	TriviaLineComment:     "LineComment",
	TriviaBlockComment:    "BlockComment",
	TriviaDocLineComment:  "DocLineComment",
	TriviaDocBlockComment: "DocBlockComment",
	TriviaGarbageText:     "GarbageText",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaKindNames) {
		return triviaKindNames[k]
	}
	return "TriviaKind(?)"
}

// ValidTriviaKind reports whether k names a known trivia category.
func ValidTriviaKind(k TriviaKind) bool {
	return int(k) < len(triviaKindNames)
}

// TriviaKindByName resolves a trivia kind from its String() form.
func TriviaKindByName(name string) (TriviaKind, bool) {
	for i, n := range triviaKindNames {
		if n == name {
			return TriviaKind(i), true
		}
	}
	return TriviaSpace, false
}

// Piece is one run of non-semantic text. Text is the exact literal bytes,
// delimiters included; nothing is normalized or merged.
type Piece struct {
	Kind TriviaKind
	Text string
}

// Trivia is an ordered sequence of pieces attached to one side of a token.
// The empty sequence is valid.
type Trivia []Piece

// Spaces returns a single piece of n spaces, or empty trivia for n <= 0.
func Spaces(n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: TriviaSpace, Text: strings.Repeat(" ", n)}}
}

// Tabs returns a single piece of n tabs, or empty trivia for n <= 0.
func Tabs(n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: TriviaSpace, Text: strings.Repeat("\t", n)}}
}

// Newlines returns a single piece of n line feeds, or empty trivia for n <= 0.
func Newlines(n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: TriviaNewline, Text: strings.Repeat("\n", n)}}
}

// LineComment wraps one // comment line. The text must carry its own
// delimiters; it is stored verbatim.
func LineComment(text string) Trivia {
	return Trivia{{Kind: TriviaLineComment, Text: text}}
}

// BlockComment wraps one /* */ comment, delimiters included in text.
func BlockComment(text string) Trivia {
	return Trivia{{Kind: TriviaBlockComment, Text: text}}
}

// DocLineComment wraps one /// doc line, delimiters included in text.
func DocLineComment(text string) Trivia {
	return Trivia{{Kind: TriviaDocLineComment, Text: text}}
}

// GarbageText wraps unclassifiable source bytes so they survive in the tree.
func GarbageText(text string) Trivia {
	return Trivia{{Kind: TriviaGarbageText, Text: text}}
}

// Append returns a new trivia sequence with other's pieces appended.
// The receiver is not modified.
func (tr Trivia) Append(other Trivia) Trivia {
	if len(other) == 0 {
		return tr
	}
	out := make(Trivia, 0, len(tr)+len(other))
	out = append(out, tr...)
	out = append(out, other...)
	return out
}

// Equal reports piece-wise equality.
func (tr Trivia) Equal(other Trivia) bool {
	if len(tr) != len(other) {
		return false
	}
	for i, p := range tr {
		if p != other[i] {
			return false
		}
	}
	return true
}

// TextLen returns the total byte length of all pieces.
func (tr Trivia) TextLen() uint32 {
	var n uint32
	for _, p := range tr {
		n += safecast.MustConv[uint32](len(p.Text))
	}
	return n
}

// WriteText writes every piece verbatim, in order.
func (tr Trivia) WriteText(w io.Writer) error {
	for _, p := range tr {
		if _, err := io.WriteString(w, p.Text); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the concatenated literal text of all pieces.
func (tr Trivia) Text() string {
	var sb strings.Builder
	for _, p := range tr {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
