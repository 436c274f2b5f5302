package diff

import (
	"slices"
	"strings"

	"github.com/bethropolis/editscript/internal/types"
)

// Diff is an immutable edit script. Create one with a Builder.
type Diff struct {
	ops []Operation
}

// Operations returns a copy of the operation list.
func (d Diff) Operations() []Operation {
	return slices.Clone(d.ops)
}

// Len returns the number of operations.
func (d Diff) Len() int {
	return len(d.ops)
}

// IsEmpty reports whether the diff changes nothing.
func (d Diff) IsEmpty() bool {
	return len(d.ops) == 0
}

// Equal reports whether both diffs hold the same operations.
func (d Diff) Equal(other Diff) bool {
	return slices.EqualFunc(d.ops, other.ops, Operation.Equal)
}

// BaseLength returns the span of source text the diff reads (retains and deletes).
func (d Diff) BaseLength() types.Length {
	var l types.Length
	for _, op := range d.ops {
		if op.Kind != KindInsert {
			l = l.Add(op.Length)
		}
	}
	return l
}

// TargetLength returns the span of result text the diff writes (retains and inserts).
func (d Diff) TargetLength() types.Length {
	var l types.Length
	for _, op := range d.ops {
		if op.Kind != KindDelete {
			l = l.Add(op.Len())
		}
	}
	return l
}

func (d Diff) String() string {
	parts := make([]string, len(d.ops))
	for i, op := range d.ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
