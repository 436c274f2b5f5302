// Package document holds a text together with its file path and modified
// state, and announces every applied diff on an event manager.
package document

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/event"
	"github.com/bethropolis/editscript/internal/logger"
	"github.com/bethropolis/editscript/internal/types"
)

// ErrNoPath is returned by Save when neither the call nor the document names a file.
var ErrNoPath = errors.New("no file path specified")

// Document is safe for concurrent use. Event handlers run synchronously
// after the edit and may read the document.
type Document struct {
	mu       sync.RWMutex
	text     buffer.Text
	path     string
	modified bool

	events *event.Manager // may be nil
}

// New creates an unnamed document holding t.
func New(t buffer.Text, events *event.Manager) *Document {
	return &Document{text: t, events: events}
}

// Load reads path into a new document. A missing file yields an empty document
// that saves to path.
func Load(path string, events *event.Manager) (*Document, error) {
	t, err := buffer.Load(path)
	if err != nil {
		return nil, err
	}
	d := &Document{text: t, path: path, events: events}
	logger.DebugTagf("document", "Loaded %s (%d lines)", path, t.LineCount())
	d.dispatch(event.TypeTextLoaded, event.TextLoadedData{FilePath: path})
	return d, nil
}

// Text returns the current content.
func (d *Document) Text() buffer.Text {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Length returns the length of the current content.
func (d *Document) Length() types.Length {
	return d.Text().Length()
}

// Path returns the file the document was loaded from or last saved to.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// IsModified reports whether the document changed since it was loaded or saved.
func (d *Document) IsModified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modified
}

// Apply checks that df fits the current text, applies it and returns the
// diff that undoes it. On error the document is unchanged.
func (d *Document) Apply(df diff.Diff) (diff.Diff, error) {
	d.mu.Lock()
	before := d.text
	if err := diff.Validate(df, before); err != nil {
		d.mu.Unlock()
		return diff.Diff{}, fmt.Errorf("apply: %w", err)
	}
	inverse := df.Invert(before)
	after := before
	diff.Apply(&after, df)
	d.text = after
	if !df.IsEmpty() {
		d.modified = true
	}
	d.mu.Unlock()

	logger.DebugTagf("document", "Applied %d operation(s): %v -> %v", df.Len(), before.Length(), after.Length())
	d.dispatch(event.TypeTextModified, event.TextModifiedData{Before: before, Diff: df})
	return inverse, nil
}

// Replace swaps the content of r for s.
func (d *Document) Replace(r types.Range, s string) (diff.Diff, error) {
	b := diff.NewBuilder()
	b.Retain(r.Start.Length())
	b.Delete(r.Length())
	b.Insert(buffer.FromString(s))
	return d.Apply(b.Finish())
}

// Insert inserts s at p.
func (d *Document) Insert(p types.Point, s string) (diff.Diff, error) {
	return d.Replace(types.NewRange(p, p), s)
}

// Delete removes the content of r.
func (d *Document) Delete(r types.Range) (diff.Diff, error) {
	return d.Replace(r, "")
}

// Save writes the document to path, or to its own path when path is empty.
// A successful save records path and clears the modified flag.
func (d *Document) Save(path string) error {
	d.mu.Lock()
	if path == "" {
		path = d.path
	}
	if path == "" {
		d.mu.Unlock()
		return ErrNoPath
	}
	if err := d.text.Save(path); err != nil {
		d.mu.Unlock()
		return err
	}
	d.path = path
	d.modified = false
	d.mu.Unlock()

	logger.InfoTagf("document", "Saved %s (%d lines)", path, d.Text().LineCount())
	d.dispatch(event.TypeTextSaved, event.TextSavedData{FilePath: path})
	return nil
}

func (d *Document) dispatch(t event.Type, data interface{}) {
	if d.events != nil {
		d.events.Dispatch(t, data)
	}
}
