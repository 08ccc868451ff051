package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/store"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	DefaultMaxAge          = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
	DefaultHistoryLimit    = 5
)

// Storage is the persistence capability behind a Manager. Get returns
// store.ErrSessionNotFound for unknown ids.
type Storage interface {
	Get(ctx context.Context, id string) (*store.Session, error)
	Save(ctx context.Context, s *store.Session) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Sweep(ctx context.Context, maxAge time.Duration, now time.Time) (int, error)
}

type Option func(*Manager)

func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

func WithCleanupInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.cleanupInterval = d
		}
	}
}

func WithHistoryLimit(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.historyLimit = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// Manager handles session operations. Every read-modify-write runs under one
// manager-wide lock so concurrent preference merges are never lost.
type Manager struct {
	storage Storage
	log     logger.ILogger

	maxAge          time.Duration
	cleanupInterval time.Duration
	historyLimit    int
	now             func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

// NewManager creates a new session manager
func NewManager(storage Storage, log logger.ILogger, opts ...Option) *Manager {
	m := &Manager{
		storage:         storage,
		log:             log,
		maxAge:          DefaultMaxAge,
		cleanupInterval: DefaultCleanupInterval,
		historyLimit:    DefaultHistoryLimit,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.NewNopLogger()
	}
	m.lastSweep = m.now()
	return m
}

func (m *Manager) HistoryLimit() int { return m.historyLimit }

func (m *Manager) Create(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	if err := m.storage.Save(ctx, store.New(id, m.now())); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	m.log.Info("SessionManager", "Session created", map[string]interface{}{"session_id": id})

	m.maybeSweep(ctx)
	return id, nil
}

// Get returns a copy of the session and refreshes its last-access time.
func (m *Manager) Get(ctx context.Context, id string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			m.log.Warn("SessionManager", "Access to unknown session", map[string]interface{}{"session_id": id})
		}
		return nil, err
	}
	s.LastAccessed = m.now()
	if err := m.storage.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.Clone(), nil
}

func (m *Manager) Update(ctx context.Context, id string, patch store.Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			m.log.Warn("SessionManager", "Update of unknown session", map[string]interface{}{"session_id": id})
		}
		return err
	}
	s.Apply(patch)
	s.LastAccessed = m.now()
	return m.storage.Save(ctx, s)
}

func (m *Manager) UpdateContext(ctx context.Context, id string, updates map[string]interface{}) error {
	return m.Update(ctx, id, store.Patch{Context: updates})
}

// AppendMessage adds a turn to the conversation log and records it as the
// session's last message.
func (m *Manager) AppendMessage(ctx context.Context, id, role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	now := m.now()
	msg := store.Message{Role: role, Content: content, Timestamp: now}
	s.Messages = append(s.Messages, msg)
	if s.Context == nil {
		s.Context = map[string]interface{}{}
	}
	s.Context["last_message"] = map[string]interface{}{
		"role":      msg.Role,
		"content":   msg.Content,
		"timestamp": now.Format(time.RFC3339),
	}
	s.LastAccessed = now
	return m.storage.Save(ctx, s)
}

// Record runs one conversational turn: loads or creates the session, merges
// fresh preferences over the carried ones, appends the question to the bounded
// history and persists the result. An empty id starts a new session.
func (m *Manager) Record(ctx context.Context, id, question string, fresh preference.Record) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if id == "" {
		id = uuid.New().String()
	}

	s, err := m.storage.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		s = store.New(id, now)
		m.log.Info("SessionManager", "Session created on first reference", map[string]interface{}{"session_id": id})
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}

	s.Preferences = preference.Merge(fresh, s.Preferences)
	s.PushQuestion(question, m.historyLimit)
	s.LastAccessed = now

	if err := m.storage.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	m.maybeSweep(ctx)
	return s.Clone(), nil
}

func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted, err := m.storage.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		m.log.Info("SessionManager", "Session deleted", map[string]interface{}{"session_id": id})
	}
	return deleted, nil
}

func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.storage.List(ctx)
}

func (m *Manager) Exists(ctx context.Context, id string) (bool, error) {
	_, err := m.storage.Get(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Sweep removes sessions idle for longer than the configured max age.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweep(ctx, m.now())
}

// Export renders the session as indented JSON with ISO-8601 timestamps.
func (m *Manager) Export(ctx context.Context, id string) ([]byte, error) {
	s, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}

func (m *Manager) sweep(ctx context.Context, now time.Time) (int, error) {
	n, err := m.storage.Sweep(ctx, m.maxAge, now)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	m.lastSweep = now
	if n > 0 {
		m.log.Info("SessionManager", "Expired sessions removed", map[string]interface{}{"count": n})
	}
	return n, nil
}

// caller holds m.mu
func (m *Manager) maybeSweep(ctx context.Context) {
	now := m.now()
	if now.Sub(m.lastSweep) <= m.cleanupInterval {
		return
	}
	if _, err := m.sweep(ctx, now); err != nil {
		m.log.Warn("SessionManager", "Opportunistic sweep failed", map[string]interface{}{"error": err.Error()})
	}
}
