// internal/syntax/language.go
package syntax

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript" // JS parser used for JS and JSON
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"

	"github.com/bethropolis/editscript/internal/logger"
)

// Language pairs a tree-sitter grammar with the file extensions it parses.
type Language struct {
	Name       string
	Grammar    *sitter.Language
	Extensions []string
}

var (
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	builtinsOnce sync.Once
)

// Register adds a language to the registry. Later registrations win for
// shared extensions.
func Register(lang *Language) {
	registry.Lock()
	defer registry.Unlock()

	if registry.extToLanguage == nil {
		registry.extToLanguage = make(map[string]*Language)
	}
	registry.languages = append(registry.languages, lang)

	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}
	logger.DebugTagf("syntax", "Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

func registerBuiltins() {
	builtinsOnce.Do(func() {
		Register(&Language{Name: "Go", Grammar: gosrc.GetLanguage(), Extensions: []string{".go"}})
		Register(&Language{Name: "Python", Grammar: pythonsrc.GetLanguage(), Extensions: []string{".py", ".pyw"}})
		Register(&Language{Name: "JavaScript", Grammar: jssrc.GetLanguage(), Extensions: []string{".js", ".mjs", ".cjs"}})
		Register(&Language{Name: "JSON", Grammar: jssrc.GetLanguage(), Extensions: []string{".json"}})
		Register(&Language{Name: "Rust", Grammar: rustsrc.GetLanguage(), Extensions: []string{".rs"}})
	})
}

// ForFile returns the language for a file path, or nil if none matches.
func ForFile(filePath string) *Language {
	registerBuiltins()

	registry.RLock()
	defer registry.RUnlock()
	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// All returns every registered language in registration order.
func All() []*Language {
	registerBuiltins()

	registry.RLock()
	defer registry.RUnlock()
	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
