// Package upload stages request files on disk under collision-free names
// and removes them again once processed.
package upload

import (
	"io"
	"time"
)

// StagedFile is an uploaded file written to temporary storage.
type StagedFile struct {
	Path     string    `json:"path"`      // Location on disk
	Name     string    `json:"name"`      // Sanitized original filename
	Size     int64     `json:"size"`      // Bytes written
	Format   string    `json:"format"`    // Lower-case extension without the dot
	StagedAt time.Time `json:"staged_at"` // When the file was written
}

// StageOptions represents staging limits
type StageOptions struct {
	MaxSize int64 `json:"max_size"` // Max file size in bytes, 0 for no limit
}

// Provider defines the interface for staging storage
type Provider interface {
	// Stage writes r under a unique name derived from filename
	Stage(r io.Reader, filename string, options *StageOptions) (*StagedFile, error)

	// Remove deletes a staged file
	Remove(file *StagedFile) error

	// Dir returns the directory staged files live in
	Dir() string

	// GetProviderName returns the provider name
	GetProviderName() string
}

// DefaultStageOptions returns default staging options
func DefaultStageOptions() *StageOptions {
	return &StageOptions{
		MaxSize: 10 * 1024 * 1024, // 10MB
	}
}

// MergeOptions merges custom options with defaults
func MergeOptions(custom *StageOptions) *StageOptions {
	defaults := DefaultStageOptions()

	if custom == nil {
		return defaults
	}

	if custom.MaxSize > 0 {
		defaults.MaxSize = custom.MaxSize
	}

	return defaults
}
