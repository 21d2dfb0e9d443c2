package upload

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service provides staging with a configured provider and size limit
type Service struct {
	provider Provider
	options  *StageOptions
}

// NewService creates a new upload service
func NewService(provider Provider, maxSize int64) *Service {
	return &Service{
		provider: provider,
		options:  MergeOptions(&StageOptions{MaxSize: maxSize}),
	}
}

// WithStaged writes data to staging, runs fn on it and removes the file
// afterwards whatever fn returns.
func (s *Service) WithStaged(data []byte, filename string, fn func(*StagedFile) error) error {
	if s.provider == nil {
		return fmt.Errorf("upload provider not configured")
	}

	staged, err := s.provider.Stage(bytes.NewReader(data), filename, s.options)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.provider.Remove(staged); err != nil {
			log.Warn().Err(err).Str("path", staged.Path).Msg("⚠️ failed to remove staged file")
		}
	}()

	return fn(staged)
}

// MaxSize returns the per-file size limit in bytes
func (s *Service) MaxSize() int64 {
	return s.options.MaxSize
}

// Dir returns the staging directory
func (s *Service) Dir() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Dir()
}

// GetProviderName returns the current provider name
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.GetProviderName()
}
