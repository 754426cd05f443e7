// File: services/assistant/session.go
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"tripmate/models"
	"tripmate/utils"

	"go.uber.org/zap"
)

// Session is one chat conversation bound to a booking form page. It is a tiny
// two-state machine: Idle until a message is accepted, AwaitingReply while the
// one-shot reply timer is armed, then Idle again once the bot entry lands.
// All access goes through methods; the mutex is here because HTTP handlers
// are concurrent even though the logical model is a single thread.
type Session struct {
	ID string

	mu            sync.Mutex
	activeSection models.BookingCategory
	log           []models.ConversationEntry
	waiting       bool
	open          bool
	closed        bool
	replyTimer    *time.Timer
	lastActivity  time.Time

	store           StateStore
	replyDelay      time.Duration
	resolveAtSubmit bool
}

func newSession(id string, store StateStore, replyDelay time.Duration, resolveAtSubmit bool) *Session {
	return &Session{
		ID:              id,
		activeSection:   models.CategoryTransport,
		log:             []models.ConversationEntry{{Speaker: models.SpeakerBot, Text: Greeting}},
		open:            true,
		lastActivity:    time.Now(),
		store:           store,
		replyDelay:      replyDelay,
		resolveAtSubmit: resolveAtSubmit,
	}
}

// Submit accepts one user message and arms the reply timer. It reports false
// without touching the transcript when the text is blank, a reply is already
// pending, or the session has been torn down. An accepted submit appends
// exactly two entries: the user line now, the bot line when the timer fires.
func (s *Session) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.waiting {
		return false
	}

	s.log = append(s.log, models.ConversationEntry{Speaker: models.SpeakerUser, Text: text})
	s.waiting = true
	s.lastActivity = time.Now()

	// Section captured here is only consulted when the session is configured
	// to pin resolution at submit time; the default re-reads it on fire.
	submitSection := s.activeSection
	s.replyTimer = time.AfterFunc(s.replyDelay, func() {
		s.deliverReply(text, submitSection)
	})
	return true
}

// deliverReply runs on the reply timer. The booking snapshot and (by default)
// the active section are read at fire time, so a quick action during the wait
// window changes which section's rules apply to the pending reply.
func (s *Session) deliverReply(input string, submitSection models.BookingCategory) {
	state, err := s.store.Get(context.Background(), s.ID)
	if err != nil {
		// Degrade to an all-unset snapshot; the resolver never fails outward.
		utils.GetLogger().Warn("assistant: booking state read failed",
			zap.String("sessionId", s.ID), zap.Error(err))
		state = models.BookingState{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.waiting {
		return
	}

	section := s.activeSection
	if s.resolveAtSubmit {
		section = submitSection
	}

	s.log = append(s.log, models.ConversationEntry{Speaker: models.SpeakerBot, Text: Resolve(input, section, state)})
	s.waiting = false
	s.lastActivity = time.Now()
}

// SwitchSection is the quick-action handler: it moves the active section
// immediately, in any state, without touching the transcript or the pending
// reply. Unknown categories are ignored.
func (s *Session) SwitchSection(category models.BookingCategory) {
	if !category.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.activeSection = category
	s.lastActivity = time.Now()
}

// ToggleVisibility flips the open/minimized flag and returns the new value.
// Orthogonal to the reply state machine.
func (s *Session) ToggleVisibility() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	s.lastActivity = time.Now()
	return s.open
}

// Snapshot returns a render copy of the session for the chat widget.
func (s *Session) Snapshot() models.ChatSessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]models.ConversationEntry, len(s.log))
	copy(messages, s.log)
	return models.ChatSessionView{
		SessionID:         s.ID,
		ActiveSection:     s.activeSection,
		IsWaitingForReply: s.waiting,
		IsOpen:            s.open,
		Messages:          messages,
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// close tears the session down. A still-armed reply timer is stopped; if it
// already fired, the closed flag makes the callback a no-op.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.waiting = false
	if s.replyTimer != nil {
		s.replyTimer.Stop()
	}
}
