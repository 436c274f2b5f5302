// internal/syntax/edit.go
package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/types"
)

// EditInfo encapsulates the information needed for tree-sitter's Edit function.
type EditInfo struct {
	StartIndex     uint32       // Start byte of the edit
	OldEndIndex    uint32       // End byte of the old text
	NewEndIndex    uint32       // End byte of the new text
	StartPosition  sitter.Point // Start position (row, column)
	OldEndPosition sitter.Point // Old end position
	NewEndPosition sitter.Point // New end position
}

// Input converts the edit into the form sitter.Tree.Edit expects.
func (e EditInfo) Input() sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  e.StartIndex,
		OldEndIndex: e.OldEndIndex,
		NewEndIndex: e.NewEndIndex,
		StartPoint:  e.StartPosition,
		OldEndPoint: e.OldEndPosition,
		NewEndPoint: e.NewEndPosition,
	}
}

func point(p types.Point) sitter.Point {
	return sitter.Point{Row: uint32(p.Line), Column: uint32(p.Byte)}
}

// Edits converts d into tree-sitter edits against src. Each run of deletes
// and inserts becomes one edit, expressed in the coordinates of the text
// as it stands after the previous edits, which is the order sitter.Tree.Edit
// expects them in.
func Edits(src buffer.Text, d diff.Diff) []EditInfo {
	var (
		edits   []EditInfo
		current = src.Clone()
		p       types.Point
		del     types.Length
		ins     buffer.Text
		pending bool
	)

	flush := func() {
		if !pending {
			return
		}
		start := current.Offset(p)
		oldEnd := p.Add(del)
		newEnd := p.Add(ins.Length())
		edits = append(edits, EditInfo{
			StartIndex:     uint32(start),
			OldEndIndex:    uint32(current.Offset(oldEnd)),
			NewEndIndex:    uint32(start + ins.ByteLen()),
			StartPosition:  point(p),
			OldEndPosition: point(oldEnd),
			NewEndPosition: point(newEnd),
		})
		if !del.IsZero() {
			current.Delete(p, del)
		}
		if !ins.IsEmpty() {
			current.Insert(p, ins)
		}
		p = newEnd
		del = types.Length{}
		ins = buffer.Text{}
		pending = false
	}

	for _, op := range d.Operations() {
		switch op.Kind {
		case diff.KindRetain:
			flush()
			p = p.Add(op.Length)
		case diff.KindDelete:
			del = del.Add(op.Length)
			pending = true
		case diff.KindInsert:
			ins.Append(op.Text)
			pending = true
		}
	}
	flush()
	return edits
}
