package diff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/types"
)

func l(lines, bytes int) types.Length {
	return types.NewLength(lines, bytes)
}

func ins(s string) Operation {
	return Insert(buffer.FromString(s))
}

// build feeds ops through a Builder.
func build(ops ...Operation) Diff {
	var b Builder
	for _, op := range ops {
		emit(&b, op)
	}
	return b.Finish()
}

func applied(src string, d Diff) string {
	t := buffer.FromString(src)
	Apply(&t, d)
	return t.String()
}

// requireCanonical checks the invariants a Builder guarantees.
func requireCanonical(t *testing.T, d Diff) {
	t.Helper()
	ops := d.Operations()
	for i := 1; i < len(ops); i++ {
		require.NotEqual(t, ops[i-1].Kind, ops[i].Kind, "adjacent %v in %v", ops[i].Kind, d)
		require.False(t, ops[i-1].Kind == KindInsert && ops[i].Kind == KindDelete, "insert before delete in %v", d)
	}
	for _, op := range ops {
		require.False(t, op.Len().IsZero(), "empty operation in %v", d)
	}
	if n := len(ops); n > 0 {
		require.NotEqual(t, KindRetain, ops[n-1].Kind, "trailing retain in %v", d)
	}
}

const alphabet = "ab\nc\n"

func randomString(r *rand.Rand, max int) string {
	n := r.Intn(max + 1)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}

// randomDiff returns a diff valid against src and the text it produces,
// computed on plain strings.
func randomDiff(r *rand.Rand, src string) (Diff, string) {
	var b Builder
	var result []byte
	insert := func() {
		s := randomString(r, 4)
		b.Insert(buffer.FromString(s))
		result = append(result, s...)
	}
	for i := 0; i < len(src); {
		if r.Intn(3) == 0 {
			insert()
		}
		n := 1 + r.Intn(len(src)-i)
		seg := src[i : i+n]
		if r.Intn(2) == 0 {
			b.Retain(buffer.LengthOf(seg))
			result = append(result, seg...)
		} else {
			b.Delete(buffer.LengthOf(seg))
		}
		i += n
	}
	if r.Intn(2) == 0 {
		insert()
	}
	return b.Finish(), string(result)
}
