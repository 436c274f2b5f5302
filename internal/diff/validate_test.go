package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/editscript/internal/buffer"
)

func TestValidate(t *testing.T) {
	text := buffer.FromString("ab\ncd")

	require.NoError(t, Validate(build(Retain(l(1, 1)), Delete(l(0, 1)), ins("zz")), text))
	require.NoError(t, Validate(build(ins("only")), text))
	require.NoError(t, Validate(build(Delete(l(1, 2))), text))

	assert.ErrorIs(t, Validate(build(Delete(l(2, 0))), text), ErrLengthMismatch)
	assert.ErrorIs(t, Validate(build(Retain(l(1, 5)), ins("x")), text), ErrLengthMismatch)
	assert.ErrorIs(t, Validate(build(Retain(l(0, 3)), ins("x")), text), ErrInvalidPoint)

	err := Validate(build(Delete(l(0, 1))), buffer.FromString("\u00e9"))
	assert.ErrorIs(t, err, ErrInvalidPoint)
	assert.ErrorIs(t, err, buffer.ErrNotRuneBoundary)
	assert.Contains(t, err.Error(), "inside line 1, column 1")
}

func TestValidateChain(t *testing.T) {
	src := buffer.FromString("abc")
	a := build(Retain(l(0, 1)), Delete(l(0, 2)))
	b := build(Retain(l(0, 1)), ins("!"))

	out, err := ValidateChain(src, a, b)
	require.NoError(t, err)
	assert.Equal(t, "a!", out.String())
	assert.Equal(t, "abc", src.String())

	_, err = ValidateChain(src, a, build(Delete(l(0, 3))))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
