// Package translate turns text from one language into another through a
// pluggable remote engine, with exponential-backoff retries on top.
package translate

import (
	"context"
	"strings"
)

// AutoDetect lets the engine guess the source language.
const AutoDetect = "auto"

// Request is a single translation call.
type Request struct {
	Text   string
	Source string
	Target string
}

// Engine is a remote translation backend.
type Engine interface {
	Translate(ctx context.Context, req Request) (string, error)
	GetProviderName() string
}

// autoSource reports whether the request leaves source detection to the engine.
func (r Request) autoSource() bool {
	s := strings.TrimSpace(r.Source)
	return s == "" || strings.EqualFold(s, AutoDetect)
}
