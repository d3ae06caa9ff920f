package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a reconstructed text.
// Syntax trees carry no absolute positions; spans are derived on demand by
// walking a tree down from its root.
type Span struct {
	Start uint32 // inclusive, bytes
	End   uint32 // exclusive, bytes
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset uint32) bool {
	return offset >= s.Start && offset < s.End
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}
