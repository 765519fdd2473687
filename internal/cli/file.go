package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFile creates (or truncates) path, creating any missing parent
// directories, and writes content to it.
func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("write output file %q: %w", path, err)
	}
	return nil
}
