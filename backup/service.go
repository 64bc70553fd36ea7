// Package backup runs periodic full-database exports. Each run writes a
// gzip-compressed JSON snapshot, validates it by reading it back, and prunes
// old files by age and count.
package backup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	maxLogEntries  = 200
	maxValidations = 50
	maxAttempts    = 3
)

// Config controls where backups go and how long they are kept.
type Config struct {
	Dir        string
	Interval   time.Duration
	MaxAge     time.Duration
	MaxCount   int
	Tables     []string
	RetryDelay time.Duration
}

// Status is a point-in-time view of the scheduler.
type Status struct {
	Active    bool       `json:"active"`
	Interval  string     `json:"interval"`
	Dir       string     `json:"dir"`
	Runs      int        `json:"runs"`
	LastRun   *time.Time `json:"lastRun"`
	LastFile  string     `json:"lastFile,omitempty"`
	LastError string     `json:"lastError,omitempty"`
	NextRun   *time.Time `json:"nextRun"`
}

// RunResult reports one export/validate/clean cycle.
type RunResult struct {
	File       string           `json:"file"`
	Size       int64            `json:"size"`
	Counts     map[string]int   `json:"counts"`
	Attempts   int              `json:"attempts"`
	Validation ValidationResult `json:"validation"`
	Removed    []string         `json:"removed"`
	Duration   string           `json:"duration"`
}

// LogEntry is one line of the in-memory run log.
type LogEntry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// Service owns the backup timer and the metadata of past runs.
type Service struct {
	db  *sql.DB
	cfg Config
	now func() time.Time

	run sync.Mutex // serializes cycles

	mu          sync.Mutex
	stop        chan struct{}
	done        chan struct{}
	runs        int
	lastRun     time.Time
	lastFile    string
	lastErr     string
	nextRun     time.Time
	logs        []LogEntry
	validations []ValidationResult
}

func New(database *sql.DB, cfg Config) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Service{db: database, cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// Start launches the scheduler. Calling Start on a running service does
// nothing.
func (s *Service) Start() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.nextRun = s.now().Add(s.cfg.Interval)
	stop, done := s.stop, s.done
	s.mu.Unlock()

	s.logf(slog.LevelInfo, "backup scheduler started, interval %s", s.cfg.Interval)
	go s.loop(stop, done)
}

func (s *Service) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-stop
		cancel()
	}()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.nextRun = s.now().Add(s.cfg.Interval)
			s.mu.Unlock()
			// Errors are already recorded in the status and log.
			_, _ = s.ForceCheck(ctx)
		}
	}
}

// Stop halts the scheduler and waits for an in-flight run to finish. It is
// safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.nextRun = time.Time{}
	s.mu.Unlock()

	close(stop)
	<-done
	s.logf(slog.LevelInfo, "backup scheduler stopped")
}

func (s *Service) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Active:    s.stop != nil,
		Interval:  s.cfg.Interval.String(),
		Dir:       s.cfg.Dir,
		Runs:      s.runs,
		LastFile:  s.lastFile,
		LastError: s.lastErr,
	}
	if !s.lastRun.IsZero() {
		t := s.lastRun
		st.LastRun = &t
	}
	if st.Active && !s.nextRun.IsZero() {
		t := s.nextRun
		st.NextRun = &t
	}
	return st
}

// ForceCheck runs one export, validation and cleanup cycle now. A snapshot
// that fails validation is discarded and exported again, up to three
// attempts.
func (s *Service) ForceCheck(ctx context.Context) (RunResult, error) {
	s.run.Lock()
	defer s.run.Unlock()

	start := s.now()
	var res RunResult
	s.logf(slog.LevelInfo, "backup started")

	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewConstant(s.cfg.RetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res.Attempts++
		snap, err := readSnapshot(ctx, s.db, s.cfg.Tables, s.now())
		if err != nil {
			return retry.RetryableError(err)
		}
		path, err := writeSnapshot(s.cfg.Dir, snap)
		if err != nil {
			return retry.RetryableError(err)
		}

		v := validateFile(path, s.cfg.Tables, s.now())
		s.recordValidation(v)
		if !v.Valid {
			os.Remove(path)
			s.logf(slog.LevelWarn, "backup %s failed validation: %v", v.File, v.Errors)
			return retry.RetryableError(fmt.Errorf("backup %s failed validation", v.File))
		}

		res.File = v.File
		res.Counts = snap.Counts
		res.Validation = v
		if info, err := os.Stat(path); err == nil {
			res.Size = info.Size()
		}
		return nil
	})
	if err != nil {
		s.finish(start, "", err)
		s.logf(slog.LevelError, "backup failed after %d attempt(s): %v", res.Attempts, err)
		return res, err
	}

	removed, pruneErr := prune(s.cfg.Dir, res.File, s.cfg.MaxAge, s.cfg.MaxCount, s.now())
	res.Removed = removed
	if len(removed) > 0 {
		s.logf(slog.LevelInfo, "removed %d old backup(s)", len(removed))
	}
	if pruneErr != nil {
		s.logf(slog.LevelWarn, "backup cleanup: %v", pruneErr)
	}

	res.Duration = s.now().Sub(start).String()
	s.finish(start, res.File, nil)
	s.logf(slog.LevelInfo, "backup %s written (%d bytes)", res.File, res.Size)
	return res, nil
}

func (s *Service) finish(at time.Time, file string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.lastRun = at
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.lastFile = file
	s.lastErr = ""
}

func (s *Service) recordValidation(v ValidationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validations = append(s.validations, v)
	if n := len(s.validations); n > maxValidations {
		s.validations = append([]ValidationResult(nil), s.validations[n-maxValidations:]...)
	}
}

func (s *Service) logf(level slog.Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Log(context.Background(), level, msg, "component", "backup")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, LogEntry{Time: s.now(), Level: level.String(), Message: msg})
	if n := len(s.logs); n > maxLogEntries {
		s.logs = append([]LogEntry(nil), s.logs[n-maxLogEntries:]...)
	}
}

// Logs returns the recent run log, oldest first.
func (s *Service) Logs() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LogEntry{}, s.logs...)
}

// ValidationHistory returns recent validation results, oldest first.
func (s *Service) ValidationHistory() []ValidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ValidationResult{}, s.validations...)
}

// Files lists the backups on disk, newest first.
func (s *Service) Files() ([]FileInfo, error) {
	return listFiles(s.cfg.Dir)
}

// Validate checks a stored backup by name.
func (s *Service) Validate(name string) (ValidationResult, error) {
	if name != filepath.Base(name) {
		return ValidationResult{}, errors.New("invalid backup name")
	}
	path := filepath.Join(s.cfg.Dir, name)
	if _, err := os.Stat(path); err != nil {
		return ValidationResult{}, err
	}
	v := validateFile(path, s.cfg.Tables, s.now())
	s.recordValidation(v)
	return v, nil
}
