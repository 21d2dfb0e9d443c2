// Package archive packages annotated images for download.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Entry is one file inside an archive.
type Entry struct {
	Name     string
	Data     []byte
	Modified time.Time
}

// Exporter is the interface for archive formats
type Exporter interface {
	Export(entries []Entry, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Service provides high-level archive packaging
type Service struct {
	exporter Exporter
}

// NewService creates a service packaging with the ZIP exporter
func NewService() *Service {
	return &Service{exporter: NewZipExporter()}
}

// Package writes entries into an in-memory archive and returns it with its
// content type.
func (s *Service) Package(entries []Entry) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := s.exporter.Export(entries, &buf); err != nil {
		return nil, "", fmt.Errorf("archive export failed: %w", err)
	}
	return buf.Bytes(), s.exporter.GetContentType(), nil
}

// Filename returns the download name for an archive called base.
func (s *Service) Filename(base string) string {
	return base + "." + s.exporter.GetFileExtension()
}
