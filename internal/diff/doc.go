// Package diff implements edit scripts over buffer.Text.
//
// A Diff is an ordered list of Retain, Delete and Insert operations that
// rewrites a source text into a result text. Diffs are built with a Builder,
// which keeps them in canonical form: no two adjacent operations of the same
// kind, a Delete always before the Insert it sits next to, and no trailing
// Retain. The unlisted tail of the source is retained implicitly.
//
// Compose merges two sequential diffs without materializing the text between
// them; Invert derives the diff that undoes a diff, given its source text.
package diff
