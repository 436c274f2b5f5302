package types

import "fmt"

// Range is a half-open span [Start, End) with Start <= End.
type Range struct {
	Start Point
	End   Point
}

// NewRange creates a Range. It panics if start is after end.
func NewRange(start, end Point) Range {
	if end.Less(start) {
		panic(fmt.Sprintf("types: range start %v is after end %v", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeOf returns the range starting at start spanning l.
func RangeOf(start Point, l Length) Range {
	return Range{Start: start, End: start.Add(l)}
}

// Length returns the distance from Start to End.
func (r Range) Length() Length {
	return r.End.Sub(r.Start)
}

// IsEmpty reports whether the range spans nothing.
func (r Range) IsEmpty() bool {
	return r.Length().IsZero()
}

// Contains reports whether p lies within [Start, End).
func (r Range) Contains(p Point) bool {
	return !p.Less(r.Start) && p.Less(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.Start, r.End)
}
