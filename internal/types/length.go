// Package types holds the value types used to address text: relative Lengths,
// absolute Points and Ranges between them.
package types

import "fmt"

// Length is a relative (line, byte) span of text.
// Lines is the number of line breaks crossed; Bytes is the number of bytes
// after the last line break (or the whole span if Lines is 0).
type Length struct {
	Lines int
	Bytes int
}

// NewLength creates a Length.
func NewLength(lines, bytes int) Length {
	return Length{Lines: lines, Bytes: bytes}
}

// IsZero reports whether the length spans nothing.
func (l Length) IsZero() bool {
	return l.Lines == 0 && l.Bytes == 0
}

// Add extends l by other. Crossing a line boundary drops l's trailing bytes.
func (l Length) Add(other Length) Length {
	if other.Lines == 0 {
		return Length{Lines: l.Lines, Bytes: l.Bytes + other.Bytes}
	}
	return Length{Lines: l.Lines + other.Lines, Bytes: other.Bytes}
}

// Sub is the inverse of Add: other.Add(l.Sub(other)) == l whenever other <= l.
// It panics if other is longer than l.
func (l Length) Sub(other Length) Length {
	var out Length
	if l.Lines == other.Lines {
		out = Length{Lines: 0, Bytes: l.Bytes - other.Bytes}
	} else {
		out = Length{Lines: l.Lines - other.Lines, Bytes: l.Bytes}
	}
	if out.Lines < 0 || out.Bytes < 0 {
		panic(fmt.Sprintf("types: length %v subtracted from shorter length %v", other, l))
	}
	return out
}

// Compare orders lengths by lines, then bytes. It returns -1, 0 or +1.
func (l Length) Compare(other Length) int {
	switch {
	case l.Lines < other.Lines:
		return -1
	case l.Lines > other.Lines:
		return 1
	case l.Bytes < other.Bytes:
		return -1
	case l.Bytes > other.Bytes:
		return 1
	}
	return 0
}

// Less reports whether l is shorter than other.
func (l Length) Less(other Length) bool {
	return l.Compare(other) < 0
}

// Min returns the shorter of two lengths.
func Min(a, b Length) Length {
	if b.Less(a) {
		return b
	}
	return a
}

func (l Length) String() string {
	return fmt.Sprintf("%d:%d", l.Lines, l.Bytes)
}
