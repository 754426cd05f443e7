// File: services/assistant/manager.go
package assistant

import (
	"context"
	"sync"
	"time"

	"tripmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionManager owns every live chat session in the process. Sessions are
// memory-only and die with the page session: the janitor tears down sessions
// idle past the TTL, and nothing survives a restart.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store           StateStore
	replyDelay      time.Duration
	resolveAtSubmit bool
	idleTTL         time.Duration

	stopJanitor chan struct{}
	stopOnce    sync.Once
}

func NewSessionManager(store StateStore, replyDelay, idleTTL time.Duration, resolveAtSubmit bool) *SessionManager {
	return &SessionManager{
		sessions:        make(map[string]*Session),
		store:           store,
		replyDelay:      replyDelay,
		resolveAtSubmit: resolveAtSubmit,
		idleTTL:         idleTTL,
		stopJanitor:     make(chan struct{}),
	}
}

// Create starts a new session with the greeting already on the transcript.
func (m *SessionManager) Create() *Session {
	s := newSession(uuid.NewString(), m.store, m.replyDelay, m.resolveAtSubmit)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close tears down one session and drops its booking snapshot.
func (m *SessionManager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	s.close()
	if err := m.store.Clear(context.Background(), id); err != nil {
		utils.GetLogger().Warn("assistant: booking state clear failed",
			zap.String("sessionId", id), zap.Error(err))
	}
}

// StartJanitor sweeps idle sessions in the background until Shutdown.
func (m *SessionManager) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stopJanitor:
				return
			}
		}
	}()
}

func (m *SessionManager) sweep() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range expired {
		m.Close(id)
	}
	if len(expired) > 0 {
		utils.GetLogger().Info("assistant: expired idle sessions", zap.Int("count", len(expired)))
	}
}

// Shutdown stops the janitor and closes every live session.
func (m *SessionManager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stopJanitor) })

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
