package source

import (
	"fmt"
)

// Span identifies a byte range within one source file. Start is inclusive,
// End is exclusive. Equality of spans includes file identity, so identical
// text ranges in different files never compare equal.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Contains reports whether a cursor offset in the given file touches this
// span. A cursor sits in the gap between characters, so both the offset of
// the first character and the offset one past the last character match.
func (s Span) Contains(file FileID, offset uint32) bool {
	if s.File != file {
		return false
	}
	return s.Start <= offset && offset <= s.End
}

// Cover extends the span to include other. Spans in different files are
// left unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
