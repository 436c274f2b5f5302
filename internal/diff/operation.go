package diff

import (
	"fmt"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Kind tags the variant of an Operation.
type Kind uint8

const (
	KindRetain Kind = iota // copy source content forward unchanged
	KindDelete             // remove source content
	KindInsert             // introduce new content
)

func (k Kind) String() string {
	switch k {
	case KindRetain:
		return "retain"
	case KindDelete:
		return "delete"
	case KindInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Operation is a single step of a Diff.
// Retain and Delete use Length; Insert uses Text.
type Operation struct {
	Kind   Kind
	Length types.Length
	Text   buffer.Text
}

// Retain returns an operation keeping l of the source.
func Retain(l types.Length) Operation {
	return Operation{Kind: KindRetain, Length: l}
}

// Delete returns an operation removing l of the source.
func Delete(l types.Length) Operation {
	return Operation{Kind: KindDelete, Length: l}
}

// Insert returns an operation adding t.
func Insert(t buffer.Text) Operation {
	return Operation{Kind: KindInsert, Text: t}
}

// Len returns the span the operation covers: the text length for inserts.
func (op Operation) Len() types.Length {
	if op.Kind == KindInsert {
		return op.Text.Length()
	}
	return op.Length
}

// Equal reports whether two operations have the same kind and content.
func (op Operation) Equal(other Operation) bool {
	if op.Kind != other.Kind {
		return false
	}
	if op.Kind == KindInsert {
		return op.Text.Equal(other.Text)
	}
	return op.Length == other.Length
}

func (op Operation) String() string {
	switch op.Kind {
	case KindRetain:
		return fmt.Sprintf("Retain(%v)", op.Length)
	case KindDelete:
		return fmt.Sprintf("Delete(%v)", op.Length)
	case KindInsert:
		return fmt.Sprintf("Insert(%q)", op.Text.String())
	default:
		return "Unknown"
	}
}
