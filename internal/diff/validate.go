package diff

import (
	"errors"
	"fmt"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

// Errors returned by Validate.
var (
	ErrLengthMismatch = errors.New("diff reads past the end of the text")
	ErrInvalidPoint   = errors.New("diff boundary is not a valid point")
)

// Validate checks that d can be applied to t: every retain and delete must
// end on a rune boundary inside t. The part of t after the last operation is
// retained implicitly, so d may read less than t.Length().
func Validate(d Diff, t buffer.Text) error {
	if base, have := d.BaseLength(), t.Length(); have.Less(base) {
		return fmt.Errorf("%w: diff reads %v, text is %v", ErrLengthMismatch, base, have)
	}
	var p types.Point
	for i, op := range d.ops {
		if op.Kind == KindInsert {
			continue
		}
		p = p.Add(op.Length)
		if err := t.ValidPoint(p); err != nil {
			return fmt.Errorf("%w: operation %d (%v): %w", ErrInvalidPoint, i, op, err)
		}
	}
	return nil
}

// ValidateChain checks that each diff applies to the result of the ones
// before it, starting from src. It returns the final text.
func ValidateChain(src buffer.Text, diffs ...Diff) (buffer.Text, error) {
	t := src.Clone()
	for i, d := range diffs {
		if err := Validate(d, t); err != nil {
			return src, fmt.Errorf("diff %d: %w", i, err)
		}
		Apply(&t, d)
	}
	return t, nil
}
