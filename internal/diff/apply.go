package diff

import (
	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Apply rewrites t in place according to d.
//
// Apply is not transactional. A diff that does not fit t (see Validate)
// panics or leaves t partially edited.
func Apply(t *buffer.Text, d Diff) {
	var p types.Point
	for _, op := range d.ops {
		switch op.Kind {
		case KindRetain:
			p = p.Add(op.Length)
		case KindDelete:
			t.Delete(p, op.Length)
		case KindInsert:
			t.Insert(p, op.Text)
			p = p.Add(op.Text.Length())
		}
	}
}
