package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrReplyPending    = errors.New("a reply is already pending for this chat session")
	ErrSessionGone     = errors.New("chat session was reset or ended while the reply was pending")
)

type sessionEntry struct {
	session ChatSession
	pending bool
}

// ChatSessionService keeps chat sessions in memory for the lifetime of the process
type ChatSessionService struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	resolver ChatResolverInterface
	ttl      time.Duration
	now      func() time.Time
	metrics  MetricsRecorderInterface
	audit    AuditLoggerInterface
}

// NewChatSessionService creates a session manager; sessions idle longer than ttl are swept by Run
func NewChatSessionService(resolver ChatResolverInterface, ttl time.Duration, now func() time.Time, metrics MetricsRecorderInterface) *ChatSessionService {
	if now == nil {
		now = time.Now
	}
	return &ChatSessionService{
		sessions: make(map[string]*sessionEntry),
		resolver: resolver,
		ttl:      ttl,
		now:      now,
		metrics:  metricsOrNoop(metrics),
		audit:    NewAuditLogger(nil),
	}
}

func (s *ChatSessionService) Start() ChatSession {
	session := NewChatSession(uuid.New().String(), s.now())

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.RecordGauge(MetricChatActiveSessions, float64(count), nil)
	slog.Info("chat session started", "session_id", session.ID)
	return session
}

// Get returns the session and whether a reply is pending for it
func (s *ChatSessionService) Get(id string) (ChatSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return ChatSession{}, false, ErrSessionNotFound
	}
	return entry.session, entry.pending, nil
}

// Send resolves one utterance. Only one send per session may be in flight; the
// resolver runs without holding the lock.
func (s *ChatSessionService) Send(ctx context.Context, id, utterance string) (ChatReply, ChatSession, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return ChatReply{}, ChatSession{}, ErrSessionNotFound
	}
	if entry.pending {
		s.mu.Unlock()
		return ChatReply{}, ChatSession{}, ErrReplyPending
	}
	entry.pending = true
	snapshot := entry.session
	s.mu.Unlock()

	settled := false
	defer func() {
		if settled {
			return
		}
		// Resolve panicked; release the session so it can be used again
		s.mu.Lock()
		if current, ok := s.sessions[id]; ok && current == entry && current.session.Generation == snapshot.Generation {
			current.pending = false
		}
		s.mu.Unlock()
	}()

	reply, next, err := s.resolver.Resolve(ctx, snapshot, utterance)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled = true

	current, ok := s.sessions[id]
	if !ok || current != entry || current.session.Generation != snapshot.Generation {
		s.audit.LogChatReplyDiscarded(ctx, id, snapshot.Generation)
		return ChatReply{}, ChatSession{}, ErrSessionGone
	}

	current.pending = false
	if err != nil {
		return ChatReply{}, current.session, err
	}

	current.session = next
	return reply, next, nil
}

// Reset clears the transcript back to the greeting and re-enables the remote reasoner
func (s *ChatSessionService) Reset(id string) (ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return ChatSession{}, ErrSessionNotFound
	}

	session := NewChatSession(id, s.now())
	session.Generation = entry.session.Generation + 1
	entry.session = session
	entry.pending = false

	slog.Info("chat session reset", "session_id", id, "generation", session.Generation)
	return session, nil
}

func (s *ChatSessionService) End(id string) error {
	s.mu.Lock()
	if _, ok := s.sessions[id]; !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.RecordGauge(MetricChatActiveSessions, float64(count), nil)
	slog.Info("chat session ended", "session_id", id)
	return nil
}

// Cleanup removes idle sessions without a pending reply and returns how many were removed
func (s *ChatSessionService) Cleanup() int {
	if s.ttl <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, entry := range s.sessions {
		if !entry.pending && entry.session.LastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.metrics.RecordGauge(MetricChatActiveSessions, float64(count), nil)
		slog.Debug("expired chat sessions removed", "removed", removed, "remaining", count)
	}
	return removed
}

// Run sweeps idle sessions until ctx is done
func (s *ChatSessionService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

var _ ChatSessionServiceInterface = (*ChatSessionService)(nil)
