package diff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/editscript/internal/buffer"
)

func TestApplyScenarios(t *testing.T) {
	t.Run("delete one byte", func(t *testing.T) {
		d := build(Retain(l(0, 1)), Delete(l(0, 1)))
		assert.Equal(t, "a\ncd", applied("ab\ncd", d))
	})

	t.Run("multi-line insert", func(t *testing.T) {
		d := build(Retain(l(0, 1)), ins("X\nY"))
		assert.Equal(t, "aX\nYb", applied("ab", d))
	})

	t.Run("replace last byte", func(t *testing.T) {
		var b Builder
		b.Retain(l(0, 2))
		b.Delete(l(0, 1))
		b.Insert(buffer.FromString("Z"))
		assert.Equal(t, "abZ", applied("abc", b.Finish()))
	})

	t.Run("edits on later lines", func(t *testing.T) {
		d := build(Retain(l(1, 1)), Delete(l(1, 0)), ins("-"), Retain(l(0, 1)), ins("!"))
		assert.Equal(t, "one\nt-t!hree", applied("one\ntwo\nthree", d))
	})
}

func TestBaseAndTargetLength(t *testing.T) {
	d := build(Retain(l(1, 2)), Delete(l(0, 3)), ins("x\nyz"))
	assert.Equal(t, l(1, 5), d.BaseLength())
	assert.Equal(t, l(2, 2), d.TargetLength())
}

func TestInvert(t *testing.T) {
	src := buffer.FromString("hello\nworld")
	d := build(Retain(l(0, 2)), Delete(l(1, 1)), ins("LP\n"), Retain(l(0, 2)), ins("!"))
	assert.Equal(t, "heLP\nor!ld", applied(src.String(), d))

	inv := d.Invert(src)
	assert.Equal(t, `[Retain(0:2) Delete(1:0) Insert("llo\nw") Retain(0:2) Delete(0:1)]`, inv.String())
	assert.Equal(t, "hello\nworld", applied("heLP\nor!ld", inv))
}

func TestComposeScenarioInsertCanceledByDelete(t *testing.T) {
	a := build(ins("hi"), Retain(l(0, 3)))
	b := build(Delete(l(0, 2)), Retain(l(0, 3)))
	c := a.Compose(b)
	assert.True(t, c.IsEmpty(), "got %v", c)
	assert.Equal(t, "xyz", applied("xyz", c))
}

func TestComposePairs(t *testing.T) {
	tests := []struct {
		name string
		src  string
		a, b Diff
		want string
	}{
		{
			name: "retain/retain, b shorter",
			src:  "abcd",
			a:    build(Retain(l(0, 3)), Delete(l(0, 1))),
			b:    build(Retain(l(0, 1)), ins("x")),
			want: `[Retain(0:1) Insert("x") Retain(0:2) Delete(0:1)]`,
		},
		{
			name: "retain/delete, a longer",
			src:  "abcd",
			a:    build(Retain(l(0, 3)), ins("!")),
			b:    build(Delete(l(0, 2))),
			want: `[Delete(0:2) Retain(0:1) Insert("!")]`,
		},
		{
			name: "retain/delete, b longer",
			src:  "abcd",
			a:    build(Retain(l(0, 1)), Delete(l(0, 1))),
			b:    build(Delete(l(0, 2))),
			want: `[Delete(0:3)]`,
		},
		{
			name: "insert/retain, insert longer",
			src:  "ab",
			a:    build(ins("xyz")),
			b:    build(Retain(l(0, 1)), Delete(l(0, 1))),
			want: `[Insert("xz")]`,
		},
		{
			name: "insert/retain, retain longer",
			src:  "ab",
			a:    build(ins("x")),
			b:    build(Retain(l(0, 2)), Delete(l(0, 1))),
			want: `[Insert("x") Retain(0:1) Delete(0:1)]`,
		},
		{
			name: "insert/delete, delete longer",
			src:  "ab",
			a:    build(ins("x")),
			b:    build(Delete(l(0, 2))),
			want: `[Delete(0:1)]`,
		},
		{
			name: "insert/delete, insert longer across lines",
			src:  "ab",
			a:    build(ins("x\ny")),
			b:    build(Delete(l(1, 0))),
			want: `[Insert("y")]`,
		},
		{
			name: "a exhausted passes b through",
			src:  "abc",
			a:    build(Delete(l(0, 1))),
			b:    build(Retain(l(0, 1)), Delete(l(0, 1))),
			want: `[Delete(0:1) Retain(0:1) Delete(0:1)]`,
		},
		{
			name: "b insert flushed ahead of a head",
			src:  "ab",
			a:    build(Retain(l(0, 1)), ins("q")),
			b:    build(ins("p")),
			want: `[Insert("p") Retain(0:1) Insert("q")]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compose(tt.b)
			assert.Equal(t, tt.want, got.String())
			requireCanonical(t, got)
			assert.Equal(t, applied(applied(tt.src, tt.a), tt.b), applied(tt.src, got))
		})
	}
}

func TestComposeLeavesInputsUntouched(t *testing.T) {
	a := build(ins("hello\nworld"))
	b := build(Retain(l(0, 2)), Delete(l(1, 1)))
	before := a.String()
	a.Compose(b)
	assert.Equal(t, before, a.String())
}

func TestDiffProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		src := randomString(r, 16)
		a, t1 := randomDiff(r, src)
		b, t2 := randomDiff(r, t1)
		c, t3 := randomDiff(r, t2)

		requireCanonical(t, a)
		require.Equal(t, t1, applied(src, a), "apply %q %v", src, a)

		inv := a.Invert(buffer.FromString(src))
		requireCanonical(t, inv)
		require.Equal(t, src, applied(t1, inv), "invert %q %v", src, a)

		ab := a.Compose(b)
		requireCanonical(t, ab)
		require.Equal(t, t2, applied(src, ab), "compose %q %v %v", src, a, b)

		left := ab.Compose(c)
		right := a.Compose(b.Compose(c))
		require.Equal(t, t3, applied(src, left))
		require.True(t, left.Equal(right), "associativity: %v != %v", left, right)

		require.NoError(t, Validate(a, buffer.FromString(src)))
		require.Equal(t, src, applied(src, a.Compose(inv)))

		for _, format := range []string{FormatJSON, FormatYAML} {
			data, err := Marshal(a, format)
			require.NoError(t, err)
			back, err := Unmarshal(data, format)
			require.NoError(t, err)
			require.True(t, a.Equal(back), "%s encoding of %v decoded as %v", format, a, back)
		}
	}
}
