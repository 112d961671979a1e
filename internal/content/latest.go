package content

import (
	"context"
	"sync"
)

// Latest serializes a client's listing requests so that only the most
// recent one is answered. Starting a request cancels the one in flight;
// a request that finishes after a newer one started reports ErrSuperseded.
type Latest struct {
	lister Lister

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	inflight int
}

func NewLatest(lister Lister) *Latest {
	return &Latest{lister: lister}
}

func (l *Latest) List(ctx context.Context, p ListParams) (Page, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	token := l.seq
	l.cancel = cancel
	l.inflight++
	l.mu.Unlock()

	page, err := l.lister.List(ctx, p)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inflight--
	if token != l.seq {
		return Page{}, ErrSuperseded
	}
	l.cancel = nil

	return page, err
}

func (l *Latest) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight == 0
}

// Sessions keeps at most max Latest values, one per client session id.
// When the table is full idle sessions are dropped; if every session is
// busy the new session is served without request ordering.
type Sessions struct {
	lister Lister
	max    int

	mu       sync.Mutex
	sessions map[string]*Latest
}

func NewSessions(lister Lister, max int) *Sessions {
	return &Sessions{
		lister:   lister,
		max:      max,
		sessions: make(map[string]*Latest),
	}
}

// List runs p through the session's Latest. An empty session id bypasses
// request ordering.
func (s *Sessions) List(ctx context.Context, session string, p ListParams) (Page, error) {
	if session == "" {
		return s.lister.List(ctx, p)
	}

	l, ok := s.get(session)
	if !ok {
		return s.lister.List(ctx, p)
	}

	return l.List(ctx, p)
}

func (s *Sessions) get(session string) (*Latest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.sessions[session]; ok {
		return l, true
	}

	if s.max > 0 && len(s.sessions) >= s.max {
		for id, l := range s.sessions {
			if l.idle() {
				delete(s.sessions, id)
			}
		}
		if len(s.sessions) >= s.max {
			return nil, false
		}
	}

	l := NewLatest(s.lister)
	s.sessions[session] = l
	return l, true
}

// Len reports the number of tracked sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
