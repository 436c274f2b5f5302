package diff

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/bethropolis/editscript/internal/buffer"
)

// Cleanup selects the post-processing applied to a computed diff.
type Cleanup string

const (
	CleanupNone       Cleanup = "none"
	CleanupSemantic   Cleanup = "semantic"   // merge fragments into human-readable edits
	CleanupEfficiency Cleanup = "efficiency" // trade small equalities for fewer operations
)

// Options configures FromStrings.
type Options struct {
	Cleanup Cleanup
	// Timeout bounds the diff computation; zero uses the library default.
	Timeout time.Duration
}

// FromStrings computes a Diff that rewrites old into new.
func FromStrings(old, new string, opts Options) Diff {
	dmp := diffmatchpatch.New()
	if opts.Timeout > 0 {
		dmp.DiffTimeout = opts.Timeout
	}
	diffs := dmp.DiffMain(old, new, true)
	switch opts.Cleanup {
	case CleanupSemantic:
		diffs = dmp.DiffCleanupSemantic(diffs)
	case CleanupEfficiency:
		diffs = dmp.DiffCleanupEfficiency(diffs)
	}

	var b Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.Retain(buffer.LengthOf(d.Text))
		case diffmatchpatch.DiffDelete:
			b.Delete(buffer.LengthOf(d.Text))
		case diffmatchpatch.DiffInsert:
			b.Insert(buffer.FromString(d.Text))
		}
	}
	return b.Finish()
}

// ParseCleanup converts a config string into a Cleanup.
func ParseCleanup(s string) (Cleanup, bool) {
	switch c := Cleanup(s); c {
	case CleanupNone, CleanupSemantic, CleanupEfficiency:
		return c, true
	case "":
		return CleanupNone, true
	}
	return "", false
}
