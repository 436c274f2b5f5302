package diff

import (
	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Builder accumulates operations in canonical form.
// The zero value is ready to use.
type Builder struct {
	ops []Operation
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Retain appends a retain of l, merging with a trailing retain.
func (b *Builder) Retain(l types.Length) {
	if l.IsZero() {
		return
	}
	if last := b.last(0); last != nil && last.Kind == KindRetain {
		last.Length = last.Length.Add(l)
		return
	}
	b.ops = append(b.ops, Retain(l))
}

// Delete appends a delete of l. Deletes merge with a trailing delete, also
// when that delete is followed by an insert, and are placed before a
// trailing insert so replacements read delete-then-insert.
func (b *Builder) Delete(l types.Length) {
	if l.IsZero() {
		return
	}
	last, prev := b.last(0), b.last(1)
	switch {
	case last != nil && last.Kind == KindDelete:
		last.Length = last.Length.Add(l)
	case last != nil && last.Kind == KindInsert && prev != nil && prev.Kind == KindDelete:
		prev.Length = prev.Length.Add(l)
	case last != nil && last.Kind == KindInsert:
		insert := *last
		*last = Delete(l)
		b.ops = append(b.ops, insert)
	default:
		b.ops = append(b.ops, Delete(l))
	}
}

// Insert appends t, concatenating it onto a trailing insert.
func (b *Builder) Insert(t buffer.Text) {
	if t.IsEmpty() {
		return
	}
	if last := b.last(0); last != nil && last.Kind == KindInsert {
		last.Text.Append(t)
		return
	}
	b.ops = append(b.ops, Insert(t))
}

// Finish drops a trailing retain and returns the Diff. The builder is reset.
func (b *Builder) Finish() Diff {
	ops := b.ops
	b.ops = nil
	if n := len(ops); n > 0 && ops[n-1].Kind == KindRetain {
		ops = ops[:n-1]
	}
	return Diff{ops: ops}
}

// last returns the operation i places from the end, or nil.
func (b *Builder) last(i int) *Operation {
	n := len(b.ops) - 1 - i
	if n < 0 {
		return nil
	}
	return &b.ops[n]
}
