package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when an upload exceeds StageOptions.MaxSize.
var ErrTooLarge = errors.New("file size exceeds maximum allowed size")

// LocalProvider stages files in a directory on the local filesystem
type LocalProvider struct {
	basePath string // Directory for staged files
}

// NewLocalProvider creates the staging directory if needed
func NewLocalProvider(basePath string) (*LocalProvider, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{basePath: basePath}, nil
}

// Stage writes the file as <uuid>_<secure name> so concurrent uploads with
// the same name never collide.
func (p *LocalProvider) Stage(file io.Reader, filename string, options *StageOptions) (*StagedFile, error) {
	options = MergeOptions(options)

	name := SecureFilename(filename)
	if name == "" {
		name = "upload"
	}
	filePath := filepath.Join(p.basePath, uuid.New().String()+"_"+name)

	out, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	src := file
	if options.MaxSize > 0 {
		src = io.LimitReader(file, options.MaxSize+1)
	}

	size, err := io.Copy(out, src)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	if options.MaxSize > 0 && size > options.MaxSize {
		os.Remove(filePath)
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, options.MaxSize)
	}

	return &StagedFile{
		Path:     filePath,
		Name:     name,
		Size:     size,
		Format:   strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."),
		StagedAt: time.Now(),
	}, nil
}

// Remove deletes a staged file. A file that is already gone is not an error.
func (p *LocalProvider) Remove(file *StagedFile) error {
	if file == nil {
		return nil
	}
	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (p *LocalProvider) Dir() string {
	return p.basePath
}

// GetProviderName returns the provider name
func (p *LocalProvider) GetProviderName() string {
	return "Local Storage"
}
