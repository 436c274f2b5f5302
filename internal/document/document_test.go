package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/event"
	"github.com/bethropolis/editscript/internal/types"
)

func pt(line, b int) types.Point { return types.NewPoint(line, b) }

func record(m *event.Manager, typ event.Type) *[]event.Event {
	var got []event.Event
	m.Subscribe(typ, func(e event.Event) bool {
		got = append(got, e)
		return false
	})
	return &got
}

func TestEditsAndUndo(t *testing.T) {
	doc := New(buffer.FromString("hello\nworld"), nil)
	assert.False(t, doc.IsModified())

	undoInsert, err := doc.Insert(pt(1, 5), "!")
	require.NoError(t, err)
	undoReplace, err := doc.Replace(types.NewRange(pt(0, 1), pt(1, 1)), "ey, W")
	require.NoError(t, err)
	assert.Equal(t, "hey, World!", doc.Text().String())
	assert.True(t, doc.IsModified())

	_, err = doc.Apply(undoReplace)
	require.NoError(t, err)
	_, err = doc.Apply(undoInsert)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", doc.Text().String())
}

func TestDelete(t *testing.T) {
	doc := New(buffer.FromString("one\ntwo\nthree"), nil)
	_, err := doc.Delete(types.NewRange(pt(0, 3), pt(2, 0)))
	require.NoError(t, err)
	assert.Equal(t, "onethree", doc.Text().String())
	assert.Equal(t, types.NewLength(0, 8), doc.Length())
}

func TestApplyRejectsMisfitDiff(t *testing.T) {
	events := event.NewManager()
	modified := record(events, event.TypeTextModified)
	doc := New(buffer.FromString("short\nx"), events)

	_, err := doc.Delete(types.NewRange(pt(0, 2), pt(3, 0)))
	require.ErrorIs(t, err, diff.ErrLengthMismatch)

	_, err = doc.Insert(pt(0, 9), "x")
	require.ErrorIs(t, err, diff.ErrInvalidPoint)

	assert.Equal(t, "short\nx", doc.Text().String())
	assert.False(t, doc.IsModified())
	assert.Empty(t, *modified)
}

func TestApplyDispatchesBeforeText(t *testing.T) {
	events := event.NewManager()
	modified := record(events, event.TypeTextModified)
	doc := New(buffer.FromString("abc"), events)

	var seen string
	events.Subscribe(event.TypeTextModified, func(e event.Event) bool {
		seen = doc.Text().String()
		return false
	})

	_, err := doc.Insert(pt(0, 3), "d")
	require.NoError(t, err)

	require.Len(t, *modified, 1)
	data := (*modified)[0].Data.(event.TextModifiedData)
	assert.Equal(t, "abc", data.Before.String())
	after := data.Before.Clone()
	diff.Apply(&after, data.Diff)
	assert.Equal(t, "abcd", after.String())
	assert.Equal(t, "abcd", seen, "handlers observe the edited document")
}

func TestEmptyDiffDoesNotMarkModified(t *testing.T) {
	doc := New(buffer.FromString("abc"), nil)
	_, err := doc.Apply(diff.NewBuilder().Finish())
	require.NoError(t, err)
	assert.False(t, doc.IsModified())
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	events := event.NewManager()
	loaded := record(events, event.TypeTextLoaded)
	saved := record(events, event.TypeTextSaved)

	doc, err := Load(path, events)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	assert.Equal(t, types.NewLength(2, 0), doc.Length())
	require.Len(t, *loaded, 1)

	_, err = doc.Insert(pt(2, 0), "c\n")
	require.NoError(t, err)
	require.NoError(t, doc.Save(""))
	assert.False(t, doc.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(data))

	out := filepath.Join(dir, "out.txt")
	require.NoError(t, doc.Save(out))
	assert.Equal(t, out, doc.Path())
	require.Len(t, *saved, 2)
	assert.Equal(t, out, (*saved)[1].Data.(event.TextSavedData).FilePath)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	doc, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, doc.Text().IsEmpty())
	assert.Equal(t, path, doc.Path())
}

func TestSaveWithoutPath(t *testing.T) {
	doc := New(buffer.New(), nil)
	require.ErrorIs(t, doc.Save(""), ErrNoPath)
}
