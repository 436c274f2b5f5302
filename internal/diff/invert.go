package diff

import (
	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Invert returns the diff that undoes d. src is the text d was computed
// against: applying d to src and then the inverse reproduces src.
func (d Diff) Invert(src buffer.Text) Diff {
	var b Builder
	var p types.Point
	for _, op := range d.ops {
		switch op.Kind {
		case KindRetain:
			b.Retain(op.Length)
			p = p.Add(op.Length)
		case KindInsert:
			b.Delete(op.Text.Length())
		case KindDelete:
			next := p.Add(op.Length)
			b.Insert(src.Slice(types.Range{Start: p, End: next}))
			p = next
		}
	}
	return b.Finish()
}
