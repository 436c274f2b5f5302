package diff

import "github.com/bethropolis/editscript/internal/types"

// cursor walks an operation list. op is the live remainder of the current
// operation, which may be partially consumed; ok is false once exhausted.
type cursor struct {
	rest []Operation
	op   Operation
	ok   bool
}

func newCursor(ops []Operation) *cursor {
	c := &cursor{rest: ops}
	c.next()
	return c
}

func (c *cursor) next() {
	if len(c.rest) == 0 {
		c.op, c.ok = Operation{}, false
		return
	}
	c.op, c.rest, c.ok = c.rest[0], c.rest[1:], true
}

// consume drops the first l of the live operation, which must be longer than l.
func (c *cursor) consume(l types.Length) {
	if c.op.Kind == KindInsert {
		c.op.Text.Skip(l)
		return
	}
	c.op.Length = c.op.Length.Sub(l)
}

// Compose merges d with other, which must have been produced against the
// result of d. The returned diff transforms d's source into other's result.
func (d Diff) Compose(other Diff) Diff {
	var b Builder
	a, c := newCursor(d.ops), newCursor(other.ops)
	for a.ok || c.ok {
		switch {
		case a.ok && a.op.Kind == KindDelete:
			// Content deleted by d never reaches other.
			b.Delete(a.op.Length)
			a.next()
		case c.ok && c.op.Kind == KindInsert:
			// Content inserted by other did not exist for d.
			b.Insert(c.op.Text)
			c.next()
		case !c.ok:
			emit(&b, a.op)
			a.next()
		case !a.ok:
			emit(&b, c.op)
			c.next()
		default:
			composePair(&b, a, c)
		}
	}
	return b.Finish()
}

// composePair merges a Retain or Insert head of a with a Retain or Delete
// head of c, consuming the shorter span from both.
func composePair(b *Builder, a, c *cursor) {
	la, lc := a.op.Len(), c.op.Len()
	n := types.Min(la, lc)

	switch {
	case a.op.Kind == KindRetain && c.op.Kind == KindRetain:
		b.Retain(n)
	case a.op.Kind == KindRetain && c.op.Kind == KindDelete:
		b.Delete(n)
	case a.op.Kind == KindInsert && c.op.Kind == KindRetain:
		b.Insert(a.op.Text.Slice(types.RangeOf(types.Point{}, n)))
	case a.op.Kind == KindInsert && c.op.Kind == KindDelete:
		// An insert consumed by a delete cancels out.
	}

	switch la.Compare(lc) {
	case -1:
		a.next()
		c.consume(n)
	case 0:
		a.next()
		c.next()
	case 1:
		a.consume(n)
		c.next()
	}
}

func emit(b *Builder, op Operation) {
	switch op.Kind {
	case KindRetain:
		b.Retain(op.Length)
	case KindDelete:
		b.Delete(op.Length)
	case KindInsert:
		b.Insert(op.Text)
	}
}
