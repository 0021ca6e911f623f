// Package output serializes pipeline results to pretty-printed JSON files
// and tracks what was written in a manifest.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recpipe/internal/logger"
)

// Writer writes UTF-8, human-readable JSON files into a single output
// directory. Map keys marshal in sorted order, so key ordering is
// deterministic; non-JSON-native values such as time.Time serialize through
// their standard string form.
type Writer struct {
	dir      string
	indent   string
	manifest *Manifest
	logger   *logger.Logger
}

// NewWriter creates a writer for the given directory with the given indent
// width. The directory is created on the first write.
func NewWriter(dir string, indent int, log *logger.Logger) *Writer {
	return &Writer{
		dir:    dir,
		indent: strings.Repeat(" ", indent),
		logger: log,
	}
}

// WithManifest attaches a manifest that records every written file.
func (w *Writer) WithManifest(m *Manifest) *Writer {
	w.manifest = m

	return w
}

// Write serializes data and writes it to filename inside the output
// directory, returning the full path.
func (w *Writer) Write(filename string, data any) (string, error) {
	encoded, err := w.encode(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON for %s: %w", filename, err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if w.manifest != nil {
		w.manifest.Record(filename, encoded)
	}

	w.logger.Info("wrote output file", "path", path, "bytes", len(encoded))

	return path, nil
}

// WriteManifest flushes the attached manifest as a JSON file alongside the
// other outputs.
func (w *Writer) WriteManifest(filename string) (string, error) {
	if w.manifest == nil {
		return "", nil
	}

	return w.Write(filename, w.manifest.Entries())
}

func (w *Writer) encode(data any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", w.indent)

	if err := encoder.Encode(data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
