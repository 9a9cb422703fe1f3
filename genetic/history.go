package genetic

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// SaveHistory writes the history to a gzip-compressed gob file for plotting
// tools. Populations are never written.
func (h *History) SaveHistory(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(h); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush history file '%s': %w", filePath, err)
	}
	return file.Close()
}

// LoadHistory reads a history written by SaveHistory.
func LoadHistory(filePath string) (*History, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for history: %w", err)
	}
	defer gzReader.Close()

	h := &History{}
	if err := gob.NewDecoder(gzReader).Decode(h); err != nil {
		return nil, fmt.Errorf("failed to decode history from '%s': %w", filePath, err)
	}
	return h, nil
}
