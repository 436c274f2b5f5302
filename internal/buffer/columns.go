package buffer

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/editscript/internal/types"
)

// Column returns the number of grapheme clusters before p on its line.
// A p inside a multi-byte rune counts from the start of that rune.
func (t Text) Column(p types.Point) int {
	line := t.view()[p.Line]
	b := min(p.Byte, len(line))
	for b > 0 && b < len(line) && !utf8.RuneStart(line[b]) {
		b--
	}
	return uniseg.GraphemeClusterCount(line[:b])
}

// Location formats p for messages as a 1-based line and grapheme column.
func (t Text) Location(p types.Point) string {
	return fmt.Sprintf("line %d, column %d", p.Line+1, t.Column(p)+1)
}
