package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"stock_dashboard/internal/feature/dashboard/domain"
)

// SessionObserver is told the live session count after every change.
type SessionObserver interface {
	SetSessions(n int)
}

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Sessions keeps one Controller per dashboard session in memory. Sessions
// idle for longer than the TTL are closed by Sweep.
type Sessions struct {
	newController func() *Controller
	ttl           time.Duration
	log           *slog.Logger
	observer      SessionObserver
	now           func() time.Time

	mu    sync.Mutex
	items map[string]*session
}

// NewSessions creates an empty registry. newController builds the Controller
// for each new session.
func NewSessions(newController func() *Controller, ttl time.Duration, log *slog.Logger, observer SessionObserver) *Sessions {
	if log == nil {
		log = slog.Default()
	}
	return &Sessions{
		newController: newController,
		ttl:           ttl,
		log:           log,
		observer:      observer,
		now:           time.Now,
		items:         make(map[string]*session),
	}
}

// Create starts a new session and returns its id.
func (s *Sessions) Create() (string, *Controller) {
	id := uuid.NewString()
	ctrl := s.newController()

	s.mu.Lock()
	s.items[id] = &session{ctrl: ctrl, lastSeen: s.now()}
	n := len(s.items)
	s.mu.Unlock()

	s.log.Info("dashboard session created", "session_id", id)
	s.report(n)
	return id, ctrl
}

// Get returns the session's Controller and marks it as used.
func (s *Sessions) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess.ctrl, nil
}

// Remove closes the session's Controller and forgets it. Unknown ids are ignored.
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.items[id]
	delete(s.items, id)
	n := len(s.items)
	s.mu.Unlock()

	if !ok {
		return
	}
	sess.ctrl.Close()
	s.log.Info("dashboard session removed", "session_id", id)
	s.report(n)
}

// ActiveSessions returns the number of live sessions.
func (s *Sessions) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep closes and removes sessions idle for longer than the TTL and returns
// how many were removed.
func (s *Sessions) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Controller
	for id, sess := range s.items {
		if sess.lastSeen.Before(cutoff) {
			expired = append(expired, sess.ctrl)
			delete(s.items, id)
			s.log.Info("dashboard session expired", "session_id", id)
		}
	}
	n := len(s.items)
	s.mu.Unlock()

	for _, ctrl := range expired {
		ctrl.Close()
	}
	if len(expired) > 0 {
		s.report(n)
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

// Close closes every session.
func (s *Sessions) Close() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range items {
		sess.ctrl.Close()
	}
	s.report(0)
}

func (s *Sessions) report(n int) {
	if s.observer != nil {
		s.observer.SetSessions(n)
	}
}
