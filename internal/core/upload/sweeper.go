package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically deletes staged files left behind by crashed or
// aborted requests.
type Sweeper struct {
	cron   *cron.Cron
	dir    string
	maxAge time.Duration
	now    func() time.Time
}

// NewSweeper schedules a sweep of dir. schedule is a cron expression or
// descriptor such as "@every 15m".
func NewSweeper(dir, schedule string, maxAge time.Duration) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		dir:    dir,
		maxAge: maxAge,
		now:    time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep() }); err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	return s, nil
}

// Start starts the sweeper
func (s *Sweeper) Start() {
	s.cron.Start()
	log.Info().Str("dir", s.dir).Dur("max_age", s.maxAge).Msg("⏰ Upload sweeper started")
}

// Stop stops the sweeper and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("✅ Upload sweeper stopped")
}

// Sweep removes regular files older than maxAge and returns how many it
// deleted.
func (s *Sweeper) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Error().Err(err).Str("dir", s.dir).Msg("❌ Upload sweep failed")
		return 0
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("⚠️ could not remove stale upload")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("🧹 Removed stale uploads")
	}
	return removed
}
