package buffer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/editscript/internal/types"
)

// Text is an ordered sequence of lines, stored without terminators.
// A Text always has at least one line; the zero value is the empty buffer.
//
// Text behaves as a value: mutating methods replace the line slice instead of
// writing into it, so a copy of a Text never observes edits made to another.
type Text struct {
	lines []string
}

// New returns an empty Text (a single empty line).
func New() Text {
	return Text{lines: []string{""}}
}

// FromString splits s on '\n'. A trailing newline yields a trailing empty
// line, so String returns s unchanged. A '\r' before a line break stays part
// of the line, so byte offsets in CRLF text count it.
func FromString(s string) Text {
	return Text{lines: strings.Split(s, "\n")}
}

// FromLines builds a Text from line contents. The slice is copied.
func FromLines(lines []string) Text {
	if len(lines) == 0 {
		return New()
	}
	return Text{lines: slices.Clone(lines)}
}

// LengthOf returns the Length spanned by s.
func LengthOf(s string) types.Length {
	last := strings.LastIndexByte(s, '\n')
	if last < 0 {
		return types.NewLength(0, len(s))
	}
	return types.NewLength(strings.Count(s, "\n"), len(s)-last-1)
}

func (t Text) view() []string {
	if len(t.lines) == 0 {
		return []string{""}
	}
	return t.lines
}

// Length returns the distance from the start of the text to its end.
func (t Text) Length() types.Length {
	v := t.view()
	return types.NewLength(len(v)-1, len(v[len(v)-1]))
}

// ByteLen returns the number of bytes in the text, line separators included.
func (t Text) ByteLen() int {
	v := t.view()
	n := len(v) - 1
	for _, line := range v {
		n += len(line)
	}
	return n
}

// IsEmpty reports whether the text has no content.
func (t Text) IsEmpty() bool {
	return t.Length().IsZero()
}

// Lines returns a copy of the line contents.
func (t Text) Lines() []string {
	return slices.Clone(t.view())
}

// LineCount returns the number of lines.
func (t Text) LineCount() int {
	return len(t.view())
}

// Line returns the content of line i.
func (t Text) Line(i int) string {
	return t.view()[i]
}

// String joins the lines with '\n'.
func (t Text) String() string {
	return strings.Join(t.view(), "\n")
}

// Equal reports whether both texts hold the same lines.
func (t Text) Equal(other Text) bool {
	return slices.Equal(t.view(), other.view())
}

// Clone returns an independent copy of t.
func (t Text) Clone() Text {
	return Text{lines: slices.Clone(t.view())}
}

// Slice returns the content in [r.Start, r.End) as a new Text.
func (t Text) Slice(r types.Range) Text {
	v := t.view()
	if r.Start.Line == r.End.Line {
		return Text{lines: []string{v[r.Start.Line][r.Start.Byte:r.End.Byte]}}
	}
	lines := make([]string, 0, r.End.Line-r.Start.Line+1)
	lines = append(lines, v[r.Start.Line][r.Start.Byte:])
	lines = append(lines, v[r.Start.Line+1:r.End.Line]...)
	lines = append(lines, v[r.End.Line][:r.End.Byte])
	return Text{lines: lines}
}

// Take removes the first l of content and returns it.
func (t *Text) Take(l types.Length) Text {
	v := t.view()
	boundary := v[l.Lines]

	head := make([]string, 0, l.Lines+1)
	head = append(head, v[:l.Lines]...)
	head = append(head, boundary[:l.Bytes])

	t.lines = remainder(v, l)
	return Text{lines: head}
}

// Skip discards the first l of content.
func (t *Text) Skip(l types.Length) {
	t.lines = remainder(t.view(), l)
}

func remainder(v []string, l types.Length) []string {
	rest := make([]string, 0, len(v)-l.Lines)
	rest = append(rest, v[l.Lines][l.Bytes:])
	return append(rest, v[l.Lines+1:]...)
}

// Insert inserts other at p.
func (t *Text) Insert(p types.Point, other Text) {
	v := t.view()
	ov := other.view()
	line := v[p.Line]

	if len(ov) == 1 {
		lines := slices.Clone(v)
		lines[p.Line] = line[:p.Byte] + ov[0] + line[p.Byte:]
		t.lines = lines
		return
	}

	lines := make([]string, 0, len(v)+len(ov)-1)
	lines = append(lines, v[:p.Line]...)
	lines = append(lines, line[:p.Byte]+ov[0])
	lines = append(lines, ov[1:len(ov)-1]...)
	lines = append(lines, ov[len(ov)-1]+line[p.Byte:])
	lines = append(lines, v[p.Line+1:]...)
	t.lines = lines
}

// Delete removes l of content starting at start.
func (t *Text) Delete(start types.Point, l types.Length) {
	v := t.view()
	if l.Lines == 0 {
		line := v[start.Line]
		lines := slices.Clone(v)
		lines[start.Line] = line[:start.Byte] + line[start.Byte+l.Bytes:]
		t.lines = lines
		return
	}

	last := start.Line + l.Lines
	lines := make([]string, 0, len(v)-l.Lines)
	lines = append(lines, v[:start.Line]...)
	lines = append(lines, v[start.Line][:start.Byte]+v[last][l.Bytes:])
	lines = append(lines, v[last+1:]...)
	t.lines = lines
}

// Append concatenates other onto the end of t.
func (t *Text) Append(other Text) {
	v := t.view()
	ov := other.view()
	lines := make([]string, 0, len(v)+len(ov)-1)
	lines = append(lines, v[:len(v)-1]...)
	lines = append(lines, v[len(v)-1]+ov[0])
	lines = append(lines, ov[1:]...)
	t.lines = lines
}

// Offset returns the absolute byte offset of p, counting one byte per line break.
func (t Text) Offset(p types.Point) int {
	v := t.view()
	n := p.Byte
	for _, line := range v[:p.Line] {
		n += len(line) + 1
	}
	return n
}

// ValidPoint checks that p addresses a rune boundary inside t.
func (t Text) ValidPoint(p types.Point) error {
	v := t.view()
	if p.Line < 0 || p.Line >= len(v) {
		return fmt.Errorf("point %v: %w (0-%d)", p, ErrLineOutOfRange, len(v)-1)
	}
	line := v[p.Line]
	if p.Byte < 0 || p.Byte > len(line) {
		end := types.NewPoint(p.Line, len(line))
		return fmt.Errorf("point %v: %w (0-%d, %s is the line end)", p, ErrByteOutOfRange, len(line), t.Location(end))
	}
	if p.Byte < len(line) && !utf8.RuneStart(line[p.Byte]) {
		return fmt.Errorf("point %v: %w (inside %s)", p, ErrNotRuneBoundary, t.Location(p))
	}
	return nil
}
