package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
)

// SessionStore owns the single current session of the process. The cached
// value mirrors the persisted copy under store.KeySession.
type SessionStore struct {
	Store  store.Store
	Logger *slog.Logger

	mu      sync.RWMutex
	current *domain.Session

	subMu  sync.Mutex
	subs   map[int]func(domain.Session, bool)
	nextID int
}

func NewSessionStore(st store.Store, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		Store:  st,
		Logger: logger,
		subs:   make(map[int]func(domain.Session, bool)),
	}
}

// Load reads the persisted session into memory. A value that no longer
// decodes is logged, removed and treated as absent.
func (s *SessionStore) Load(ctx context.Context) (domain.Session, bool, error) {
	sess, err := store.Load[domain.Session](ctx, s.Store.KV(), store.KeySession)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.cache(nil)
		return domain.Session{}, false, nil
	case errors.Is(err, store.ErrCorrupt):
		s.Logger.Warn("discarding unreadable session", "error", err)
		if derr := s.Store.KV().Delete(ctx, store.KeySession); derr != nil {
			return domain.Session{}, false, derr
		}
		s.cache(nil)
		return domain.Session{}, false, nil
	case err != nil:
		return domain.Session{}, false, err
	}

	s.cache(&sess)
	return sess, true, nil
}

// Set replaces the current session and persists it before returning.
func (s *SessionStore) Set(ctx context.Context, sess domain.Session) error {
	if err := store.Save(ctx, s.Store.KV(), store.KeySession, sess); err != nil {
		return err
	}
	s.cache(&sess)
	s.notify(sess, true)
	return nil
}

// Clear removes the current session and its persisted copy.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.Store.KV().Delete(ctx, store.KeySession); err != nil {
		return err
	}
	s.cache(nil)
	s.notify(domain.Session{}, false)
	return nil
}

// Current returns the in-memory session without touching storage.
func (s *SessionStore) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return cloneSession(*s.current), true
}

// Subscribe registers fn to run after every Set and Clear. The returned
// function removes the subscription.
func (s *SessionStore) Subscribe(fn func(domain.Session, bool)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *SessionStore) cache(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.current = nil
		return
	}
	c := cloneSession(*sess)
	s.current = &c
}

func (s *SessionStore) notify(sess domain.Session, ok bool) {
	s.subMu.Lock()
	fns := make([]func(domain.Session, bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(cloneSession(sess), ok)
	}
}

func cloneSession(s domain.Session) domain.Session {
	if s.Permissions != nil {
		s.Permissions = append([]domain.Permission(nil), s.Permissions...)
	}
	return s
}
