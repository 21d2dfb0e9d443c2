package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// ZipExporter writes entries as a deflate-compressed ZIP.
type ZipExporter struct{}

func NewZipExporter() *ZipExporter {
	return &ZipExporter{}
}

// Export writes every entry in order. Repeats of a name get _1, _2, ...
// before the extension so no entry is shadowed.
func (e *ZipExporter) Export(entries []Entry, writer io.Writer) error {
	zw := zip.NewWriter(writer)
	seen := make(map[string]int, len(entries))

	for _, entry := range entries {
		name := uniqueName(entry.Name, seen)

		modified := entry.Modified
		if modified.IsZero() {
			modified = time.Now()
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("create entry %s: %w", name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return fmt.Errorf("write entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

func (e *ZipExporter) GetContentType() string {
	return "application/zip"
}

func (e *ZipExporter) GetFileExtension() string {
	return "zip"
}

func uniqueName(name string, seen map[string]int) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	ext := path.Ext(name)
	candidate := fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
	return uniqueName(candidate, seen)
}
