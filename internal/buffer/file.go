package buffer

import (
	"errors"
	"fmt"
	"os"
)

// Load reads a file into a Text. A file that does not exist loads as an
// empty Text, matching a new buffer.
func Load(filePath string) (Text, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return Text{}, fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	return FromString(string(data)), nil
}

// Save writes t to filePath.
func (t Text) Save(filePath string) error {
	if filePath == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(filePath, []byte(t.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}
	return nil
}
