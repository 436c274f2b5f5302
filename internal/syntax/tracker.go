// internal/syntax/tracker.go
package syntax

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/event"
	"github.com/bethropolis/editscript/internal/logger"
	"github.com/bethropolis/editscript/internal/types"
)

// ErrNoLanguage is returned when a Tracker is created without a grammar.
var ErrNoLanguage = errors.New("no language provided")

// Tracker keeps a syntax tree in step with a text by replaying diffs as
// tree-sitter edits and reparsing incrementally.
type Tracker struct {
	mu     sync.Mutex
	lang   *Language
	parser *sitter.Parser
	tree   *sitter.Tree
}

// NewTracker creates a tracker for lang. Call Parse before Update.
func NewTracker(lang *Language) (*Tracker, error) {
	if lang == nil || lang.Grammar == nil {
		return nil, ErrNoLanguage
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang.Grammar)
	return &Tracker{lang: lang, parser: parser}, nil
}

// Language returns the tracker's language.
func (t *Tracker) Language() *Language {
	return t.lang
}

// Parse replaces the current tree with a full parse of text.
func (t *Tracker) Parse(ctx context.Context, text buffer.Text) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tree, err := t.parser.ParseCtx(ctx, nil, []byte(text.String()))
	if err != nil {
		logger.Errorf("Tree-sitter parsing error: %v", err)
		return fmt.Errorf("parsing failed: %w", err)
	}
	t.replace(tree)
	return nil
}

// Update moves the tree from before to before with d applied. Without a
// previous tree it falls back to a full parse.
func (t *Tracker) Update(ctx context.Context, before buffer.Text, d diff.Diff) error {
	after := before.Clone()
	diff.Apply(&after, d)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tree != nil {
		edits := Edits(before, d)
		for _, edit := range edits {
			logger.DebugTagf("syntax", "Applying edit to tree: %+v", edit)
			t.tree.Edit(edit.Input())
		}
		logger.DebugTagf("syntax", "Reparsing %s after %d edit(s)", t.lang.Name, len(edits))
	} else {
		logger.DebugTagf("syntax", "No previous tree found, performing full parse.")
	}

	tree, err := t.parser.ParseCtx(ctx, t.tree, []byte(after.String()))
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			logger.DebugTagf("syntax", "Reparse cancelled.")
		} else {
			logger.Warnf("Incremental reparse failed: %v", err)
		}
		// The edited tree no longer matches any text we hold.
		t.replace(nil)
		return fmt.Errorf("parsing failed: %w", err)
	}
	t.replace(tree)
	return nil
}

func (t *Tracker) replace(tree *sitter.Tree) {
	if t.tree != nil {
		t.tree.Close()
	}
	t.tree = tree
}

// Tree returns the current syntax tree, or nil before the first parse.
// The tree is owned by the tracker and invalidated by the next Update.
func (t *Tracker) Tree() *sitter.Tree {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree
}

// SExpression returns the current tree as an S-expression, or "" before
// the first parse.
func (t *Tracker) SExpression() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tree == nil {
		return ""
	}
	return t.tree.RootNode().String()
}

// HasErrors reports whether the current tree contains syntax errors.
func (t *Tracker) HasErrors() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree != nil && t.tree.RootNode().HasError()
}

// FirstError returns the start of the first error or missing node in the
// current tree.
func (t *Tracker) FirstError() (types.Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tree == nil {
		return types.Point{}, false
	}
	n := firstError(t.tree.RootNode())
	if n == nil {
		return types.Point{}, false
	}
	start := n.StartPoint()
	return types.NewPoint(int(start.Row), int(start.Column)), true
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if e := firstError(n.Child(i)); e != nil {
			return e
		}
	}
	return n
}

// Attach subscribes the tracker to text modifications on m.
func (t *Tracker) Attach(m *event.Manager) {
	m.Subscribe(event.TypeTextModified, func(e event.Event) bool {
		data, ok := e.Data.(event.TextModifiedData)
		if !ok {
			logger.Warnf("syntax: unexpected payload %T for %v", e.Data, e.Type)
			return false
		}
		if err := t.Update(context.Background(), data.Before, data.Diff); err != nil {
			logger.Warnf("syntax: %v", err)
		}
		return false
	})
}

// Close releases the tree and the parser.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replace(nil)
	t.parser.Close()
}
