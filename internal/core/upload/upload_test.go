package upload

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"i contain cool ümläuts.txt", "i_contain_cool_umlauts.txt"},
		{"photo (1).PNG", "photo_1.PNG"},
		{"__init__.jpg", "init__.jpg"},
		{"con.png", "_con.png"},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := SecureFilename(tt.in); got != tt.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAllowedFile(t *testing.T) {
	tests := map[string]bool{
		"scan.png":    true,
		"scan.JPG":    true,
		"scan.jpeg":   true,
		"report.PDF":  true,
		"file.txt":    false,
		"png":         false,
		"archive.zip": false,
	}
	for name, want := range tests {
		if got := AllowedFile(name); got != want {
			t.Errorf("AllowedFile(%q) = %v, want %v", name, got, want)
		}
	}

	if !IsImage("a.Jpeg") || IsImage("a.pdf") {
		t.Error("IsImage misclassified")
	}
	if !IsPDF("a.PDF") || IsPDF("a.png") {
		t.Error("IsPDF misclassified")
	}
	if Stem("sign.board.png") != "sign.board" {
		t.Errorf("Stem = %q", Stem("sign.board.png"))
	}
}

func TestLocalProviderStagesUniqueNames(t *testing.T) {
	p, err := NewLocalProvider(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatal(err)
	}

	a, err := p.Stage(strings.NewReader("one"), "scan.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Stage(strings.NewReader("two"), "scan.png", nil)
	if err != nil {
		t.Fatal(err)
	}

	if a.Path == b.Path {
		t.Fatalf("same filename staged to the same path %s", a.Path)
	}
	if !strings.HasSuffix(a.Path, "_scan.png") || a.Name != "scan.png" || a.Format != "png" {
		t.Errorf("staged = %+v", a)
	}
	if data, _ := os.ReadFile(b.Path); string(data) != "two" {
		t.Errorf("content = %q", data)
	}

	if err := p.Remove(a); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(a.Path); !os.IsNotExist(err) {
		t.Error("file should be removed")
	}
	if err := p.Remove(a); err != nil {
		t.Errorf("second remove should be a no-op, got %v", err)
	}
}

func TestLocalProviderRejectsOversize(t *testing.T) {
	dir := t.TempDir()
	p, _ := NewLocalProvider(dir)

	_, err := p.Stage(bytes.NewReader(make([]byte, 11)), "big.png", &StageOptions{MaxSize: 10})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("oversized file left on disk: %v", entries)
	}
}

func TestServiceWithStagedRemovesFile(t *testing.T) {
	p, _ := NewLocalProvider(t.TempDir())
	svc := NewService(p, 0)

	var path string
	wantErr := errors.New("processing failed")
	err := svc.WithStaged([]byte("%PDF"), "doc.pdf", func(f *StagedFile) error {
		path = f.Path
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("file should exist during processing: %v", err)
		}
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("staged file should be removed after processing")
	}
	if svc.MaxSize() != 10*1024*1024 {
		t.Errorf("default MaxSize = %d", svc.MaxSize())
	}
}

func TestSweeperRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.png")
	fresh := filepath.Join(dir, "fresh.png")
	for _, f := range []string{stale, fresh} {
		if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	s, err := NewSweeper(dir, "@every 15m", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file should be gone")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh file should remain")
	}
}

func TestNewSweeperRejectsBadSchedule(t *testing.T) {
	if _, err := NewSweeper(t.TempDir(), "every now and then", time.Hour); err == nil {
		t.Error("expected schedule parse error")
	}
}
