// Package buffer implements Text, an owned line-addressed text buffer.
package buffer

import "errors"

// Errors returned when validating positions against a Text.
var (
	ErrLineOutOfRange  = errors.New("line out of range")
	ErrByteOutOfRange  = errors.New("byte offset out of range")
	ErrNotRuneBoundary = errors.New("byte offset not on a rune boundary")
)
