package types

import "fmt"

// Point is an absolute position within a text buffer.
// Line is the 0-based line index, Byte the 0-based byte offset within that line.
type Point struct {
	Line int
	Byte int
}

// NewPoint creates a Point.
func NewPoint(line, byte int) Point {
	return Point{Line: line, Byte: byte}
}

// Add moves p forward by l.
func (p Point) Add(l Length) Point {
	if l.Lines == 0 {
		return Point{Line: p.Line, Byte: p.Byte + l.Bytes}
	}
	return Point{Line: p.Line + l.Lines, Byte: l.Bytes}
}

// Sub returns the distance from other to p. p must not be before other.
func (p Point) Sub(other Point) Length {
	return p.Length().Sub(other.Length())
}

// Length returns the distance from the start of the buffer to p.
func (p Point) Length() Length {
	return Length{Lines: p.Line, Bytes: p.Byte}
}

// Compare orders points in document order. It returns -1, 0 or +1.
func (p Point) Compare(other Point) int {
	return p.Length().Compare(other.Length())
}

// Less reports whether p comes before other.
func (p Point) Less(other Point) bool {
	return p.Compare(other) < 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Line, p.Byte)
}
