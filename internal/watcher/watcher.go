package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lenslabs/errorlens/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"
)

// Session owns all poll state for one log store file: the path, the last
// observed mtime, and the hash of the last emitted payload. It is
// constructed at startup, mutated only by the poll loop, and torn down
// with the process.
type Session struct {
	path     string
	interval time.Duration

	lastMtime time.Time
	lastHash  uint64
	hasHash   bool
}

// NewSession creates the log store file if it does not exist yet, so the
// external capture tool always has somewhere to write.
func NewSession(path string, interval time.Duration) (*Session, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", interval)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("failed to create log store: %w", err)
		}
		log.Info().Str("path", path).Msg("Created empty log store")
	}
	return &Session{path: path, interval: interval}, nil
}

// Run polls the log store until ctx is cancelled, emitting each newly
// detected report. The returned channel is closed on shutdown.
func (s *Session) Run(ctx context.Context) <-chan *report.ErrorReport {
	log.Info().
		Str("path", s.path).
		Dur("interval", s.interval).
		Msg("Starting log store watcher")

	reports := make(chan *report.ErrorReport, 1)

	go func() {
		defer close(reports)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping log store watcher")
				return
			case <-ticker.C:
				r := s.poll()
				if r == nil {
					continue
				}
				select {
				case reports <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return reports
}

// poll performs one watch cycle. Transient failures are swallowed so the
// next write to the log store is still picked up.
func (s *Session) poll() *report.ErrorReport {
	info, err := os.Stat(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Log store stat failed")
		return nil
	}
	if info.ModTime().Equal(s.lastMtime) {
		return nil
	}
	// Record the mtime before parsing so a malformed write is not retried
	// until the file changes again.
	s.lastMtime = info.ModTime()

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Log store read failed")
		return nil
	}

	r, err := report.Parse(data)
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring malformed log store payload")
		return nil
	}
	if r == nil {
		return nil
	}

	// A rewrite with identical bytes moves the mtime but is not a new
	// report.
	hash := xxh3.Hash(data)
	if s.hasHash && hash == s.lastHash {
		log.Debug().Msg("Log store rewritten with identical content, skipping")
		return nil
	}
	s.lastHash = hash
	s.hasHash = true

	log.Info().Str("file", r.FilePath).Msg("New error report detected")
	return r
}
