package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/probset"
)

// Ensure DatasetWriter implements probset.DatasetWriter at compile time.
var _ probset.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter writes each dataset as <name>.json into a directory.
// Files are written to a temporary file and renamed into place, so an
// interrupted write never leaves a truncated dataset behind.
type DatasetWriter struct {
	dir string
}

// NewDatasetWriter creates a new DatasetWriter that writes to dir.
func NewDatasetWriter(dir string) *DatasetWriter {
	return &DatasetWriter{dir: dir}
}

// DatasetPath returns the path of the named dataset within dir.
func DatasetPath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// WriteDataset writes the dataset, replacing any previous file.
func (w *DatasetWriter) WriteDataset(ctx context.Context, ds *probset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeRecords(ds.Records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, ds.Name+".*.json.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically replace the previous dataset
	if err := os.Rename(tmpPath, DatasetPath(w.dir, ds.Name)); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// EncodeRecords encodes records as a JSON array indented with two spaces.
// Non-ASCII text is written literally. A nil slice encodes as [].
func EncodeRecords(records []probset.Record) ([]byte, error) {
	if records == nil {
		records = []probset.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return buf.Bytes(), nil
}
