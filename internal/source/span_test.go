package source

import (
	"testing"
)

func TestSpanContains(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		file   FileID
		offset uint32
		want   bool
	}{
		{
			name:   "offset inside span",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   1,
			offset: 15,
			want:   true,
		},
		{
			name:   "offset at start is inclusive",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   1,
			offset: 10,
			want:   true,
		},
		{
			name:   "offset at end is inclusive",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   1,
			offset: 20,
			want:   true,
		},
		{
			name:   "offset one before start",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   1,
			offset: 9,
			want:   false,
		},
		{
			name:   "offset one past end",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   1,
			offset: 21,
			want:   false,
		},
		{
			name:   "same offsets in a different file",
			span:   Span{File: 1, Start: 10, End: 20},
			file:   2,
			offset: 15,
			want:   false,
		},
		{
			name:   "zero-length span matches its own offset",
			span:   Span{File: 1, Start: 10, End: 10},
			file:   1,
			offset: 10,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Contains(tt.file, tt.offset); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.file, tt.offset, got, tt.want)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "other extends end",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 15, End: 30},
			expected: Span{File: 1, Start: 10, End: 30},
		},
		{
			name:     "other extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 0, End: 12},
			expected: Span{File: 1, Start: 0, End: 20},
		},
		{
			name:     "other contained",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 12, End: 14},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different file leaves span unchanged",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanEqualityIncludesFile(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 8}
	b := Span{File: 2, Start: 5, End: 8}
	if a == b {
		t.Fatalf("spans in different files must not compare equal: %v == %v", a, b)
	}
	c := Span{File: 1, Start: 5, End: 8}
	if a != c {
		t.Fatalf("identical spans must compare equal: %v != %v", a, c)
	}
}
