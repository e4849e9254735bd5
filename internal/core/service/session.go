package service

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/yndnr/fsm-go/internal/core/domain"
	"github.com/yndnr/fsm-go/internal/telemetry/logger"
)

// SessionRepository loads and stores the whole session mapping.
type SessionRepository interface {
	// Load returns every stored session, creating an empty store if needed.
	Load() (domain.Sessions, error)

	// Save replaces the stored mapping.
	Save(sessions domain.Sessions) error
}

// SnapshotReader decodes the browser's live session.
type SnapshotReader interface {
	ReadWindows(path string) ([]domain.Window, error)
}

// SnapshotLocator resolves the path of the live recovery file. It is
// called only once an operation is known to need the snapshot.
type SnapshotLocator func() (string, error)

// SnapshotAt returns a locator for a fixed path.
func SnapshotAt(path string) SnapshotLocator {
	return func() (string, error) { return path, nil }
}

// Browser opens windows and tabs.
type Browser interface {
	OpenWindow(url string, delay time.Duration) error
	OpenTab(url string) error
}

// SessionSummary is one row of List.
type SessionSummary struct {
	Name        string    `json:"session_name" yaml:"session_name"`
	LastUpdated string    `json:"last_updated" yaml:"last_updated"`
	Windows     int       `json:"num_windows" yaml:"num_windows"`
	Tabs        int       `json:"num_tabs" yaml:"num_tabs"`
	UpdatedAt   time.Time `json:"-" yaml:"-" table:"age,wide,humanize"`
}

// SessionService handles session operations.
type SessionService struct {
	repo      SessionRepository
	snapshots SnapshotReader
	browser   Browser

	windowDelay time.Duration
	tabsDelay   time.Duration
	now         func() time.Time
	sleep       func(time.Duration)
}

// Option configures a SessionService.
type Option func(*SessionService)

// WithClock overrides the time source used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) {
		s.now = now
	}
}

// WithSleeper overrides the pause between reopened windows.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *SessionService) {
		s.sleep = sleep
	}
}

// WithDelays sets the wait after opening each window and the wait
// between windows.
func WithDelays(window, tabs time.Duration) Option {
	return func(s *SessionService) {
		s.windowDelay = window
		s.tabsDelay = tabs
	}
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo SessionRepository, snapshots SnapshotReader, browser Browser, opts ...Option) *SessionService {
	s := &SessionService{
		repo:      repo,
		snapshots: snapshots,
		browser:   browser,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every stored session, most recently updated first.
// Sessions whose timestamp does not parse come last.
func (s *SessionService) List(ctx context.Context) ([]SessionSummary, error) {
	sessions, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	type entry struct {
		SessionSummary
		valid bool
	}

	entries := lo.Map(sessions.Names(), func(name string, _ int) entry {
		rec := sessions[name]
		at, err := rec.UpdatedAt()
		return entry{
			SessionSummary: SessionSummary{
				Name:        name,
				LastUpdated: rec.LastUpdated,
				Windows:     rec.WindowCount(),
				Tabs:        rec.TabCount(),
				UpdatedAt:   at,
			},
			valid: err == nil,
		}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.valid != b.valid {
			return a.valid
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	logger.L(ctx).Debug("listed sessions", "count", len(entries))
	return lo.Map(entries, func(e entry, _ int) SessionSummary { return e.SessionSummary }), nil
}

// Check decodes the live browser session without storing it.
func (s *SessionService) Check(ctx context.Context, locate SnapshotLocator) ([]domain.Window, error) {
	path, err := locate()
	if err != nil {
		return nil, err
	}
	windows, err := s.snapshots.ReadWindows(path)
	if err != nil {
		return nil, err
	}
	logger.L(ctx).Info("read current session", "snapshot", path, "windows", len(windows))
	return windows, nil
}

// Get returns the stored session name.
func (s *SessionService) Get(ctx context.Context, name string) (domain.SessionRecord, error) {
	sessions, err := s.repo.Load()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	rec, ok := sessions[name]
	if !ok {
		return domain.SessionRecord{}, domain.ErrSessionNotFound.WithDetails(name)
	}
	return rec, nil
}

// Add stores the live browser session under a new name. Neither the
// store nor the snapshot is touched when name already exists.
func (s *SessionService) Add(ctx context.Context, name string, locate SnapshotLocator) (domain.SessionRecord, error) {
	return s.save(ctx, name, locate, false)
}

// Update stores the live browser session under name, replacing any
// previous content.
func (s *SessionService) Update(ctx context.Context, name string, locate SnapshotLocator) (domain.SessionRecord, error) {
	return s.save(ctx, name, locate, true)
}

func (s *SessionService) save(ctx context.Context, name string, locate SnapshotLocator, overwrite bool) (domain.SessionRecord, error) {
	if err := domain.ValidateSessionName(name); err != nil {
		return domain.SessionRecord{}, err
	}

	sessions, err := s.repo.Load()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	if !overwrite && sessions.Has(name) {
		return domain.SessionRecord{}, domain.ErrSessionExists.WithDetails(name)
	}

	path, err := locate()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	windows, err := s.snapshots.ReadWindows(path)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	rec := domain.NewSessionRecord(windows, s.now())
	replaced := sessions.Has(name)
	sessions[name] = rec
	if err := s.repo.Save(sessions); err != nil {
		return domain.SessionRecord{}, err
	}

	log := logger.L(logger.WithSession(ctx, name))
	if replaced {
		log.Info("session updated", "windows", rec.WindowCount(), "tabs", rec.TabCount())
	} else {
		log.Info("session added", "windows", rec.WindowCount(), "tabs", rec.TabCount())
	}
	return rec, nil
}

// Remove deletes the stored session name.
func (s *SessionService) Remove(ctx context.Context, name string) error {
	sessions, err := s.repo.Load()
	if err != nil {
		return err
	}
	if !sessions.Has(name) {
		return domain.ErrSessionNotFound.WithDetails(name)
	}

	delete(sessions, name)
	if err := s.repo.Save(sessions); err != nil {
		return err
	}

	logger.L(logger.WithSession(ctx, name)).Info("session removed")
	return nil
}

// Open reopens the stored session name. Each window starts with its
// first URL and the rest are added as tabs. Empty windows are skipped.
func (s *SessionService) Open(ctx context.Context, name string) error {
	rec, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	log := logger.L(logger.WithSession(ctx, name))
	windows := lo.Filter(rec.Windows, func(w domain.Window, _ int) bool { return len(w) > 0 })
	if skipped := len(rec.Windows) - len(windows); skipped > 0 {
		log.Warn("skipping empty windows", "count", skipped)
	}

	for i, w := range windows {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Info("opening window", "index", i+1, "tabs", len(w), "url", w[0])
		if err := s.browser.OpenWindow(w[0], s.windowDelay); err != nil {
			return err
		}
		for _, url := range w[1:] {
			log.Debug("opening tab", "url", url)
			if err := s.browser.OpenTab(url); err != nil {
				return err
			}
		}

		if i < len(windows)-1 && s.tabsDelay > 0 {
			s.sleep(s.tabsDelay)
		}
	}

	log.Info("session opened", "windows", len(windows))
	return nil
}
