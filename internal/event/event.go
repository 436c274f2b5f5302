// internal/event/event.go
package event

import (
	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/diff"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	TypeTextModified // Fired after a diff has been applied to a document
	TypeTextLoaded   // Fired after a document is loaded from a file
	TypeTextSaved    // Fired after a document is written to a file
)

func (t Type) String() string {
	switch t {
	case TypeTextModified:
		return "text-modified"
	case TypeTextLoaded:
		return "text-loaded"
	case TypeTextSaved:
		return "text-saved"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// TextModifiedData carries the applied diff and the text it was applied to.
// Consumers that track positions (syntax trees, markers) replay Diff against Before.
type TextModifiedData struct {
	Before buffer.Text
	Diff   diff.Diff
}

// TextLoadedData contains info about the loaded document.
type TextLoadedData struct {
	FilePath string
}

// TextSavedData contains info about the saved document.
type TextSavedData struct {
	FilePath string
}
