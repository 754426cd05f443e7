package assistant

import (
	"context"
	"testing"
	"time"

	"tripmate/models"
)

const testReplyDelay = 20 * time.Millisecond

func newTestManager(t *testing.T, resolveAtSubmit bool) (*SessionManager, *MemoryStateStore) {
	t.Helper()
	store := NewMemoryStateStore()
	m := NewSessionManager(store, testReplyDelay, time.Hour, resolveAtSubmit)
	t.Cleanup(m.Shutdown)
	return m, store
}

// waitForReply polls until the session is back to Idle or the deadline hits.
func waitForReply(t *testing.T, s *Session) models.ChatSessionView {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if view := s.Snapshot(); !view.IsWaitingForReply {
			return view
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for bot reply")
	return models.ChatSessionView{}
}

func TestSessionStartsWithGreeting(t *testing.T) {
	m, _ := newTestManager(t, false)
	view := m.Create().Snapshot()

	if view.ActiveSection != models.CategoryTransport {
		t.Errorf("new session active section = %s, want transport", view.ActiveSection)
	}
	if !view.IsOpen || view.IsWaitingForReply {
		t.Errorf("new session flags: open=%v waiting=%v", view.IsOpen, view.IsWaitingForReply)
	}
	if len(view.Messages) != 1 || view.Messages[0].Speaker != models.SpeakerBot || view.Messages[0].Text != Greeting {
		t.Errorf("new session transcript = %+v, want single greeting", view.Messages)
	}
}

func TestSubmitAppendsExactlyTwoEntries(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	if !s.Submit("help") {
		t.Fatal("Submit(\"help\") rejected from Idle")
	}
	if view := s.Snapshot(); !view.IsWaitingForReply || len(view.Messages) != 2 {
		t.Fatalf("after submit: waiting=%v messages=%d", view.IsWaitingForReply, len(view.Messages))
	}

	// A second submit during the wait window must not grow the log.
	if s.Submit("help again") {
		t.Error("Submit accepted while a reply was pending")
	}

	view := waitForReply(t, s)
	if len(view.Messages) != 3 {
		t.Fatalf("after reply: %d messages, want 3 (greeting, user, bot)", len(view.Messages))
	}
	if view.Messages[1].Speaker != models.SpeakerUser || view.Messages[2].Speaker != models.SpeakerBot {
		t.Errorf("transcript order wrong: %+v", view.Messages)
	}
	if view.Messages[2].Text != sectionResponses[models.CategoryTransport].help {
		t.Errorf("bot reply = %q, want transport help", view.Messages[2].Text)
	}
}

func TestSubmitWhitespaceIsNoOp(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	if s.Submit("   ") {
		t.Error("whitespace-only submit was accepted")
	}
	view := s.Snapshot()
	if len(view.Messages) != 1 || view.IsWaitingForReply {
		t.Errorf("whitespace submit changed state: messages=%d waiting=%v", len(view.Messages), view.IsWaitingForReply)
	}
}

func TestSectionSwitchDuringWaitResolvesAgainstNewSection(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	s.Submit("help")
	s.SwitchSection(models.CategoryTourism)

	view := waitForReply(t, s)
	if got := view.Messages[len(view.Messages)-1].Text; got != sectionResponses[models.CategoryTourism].help {
		t.Errorf("reply = %q, want tourism help (reply-time section)", got)
	}
}

func TestResolveAtSubmitPinsSection(t *testing.T) {
	m, _ := newTestManager(t, true)
	s := m.Create()

	s.Submit("help")
	s.SwitchSection(models.CategoryTourism)

	view := waitForReply(t, s)
	if got := view.Messages[len(view.Messages)-1].Text; got != sectionResponses[models.CategoryTransport].help {
		t.Errorf("reply = %q, want transport help (submit-time section)", got)
	}
}

func TestReplyReadsBookingStateAtFireTime(t *testing.T) {
	m, store := newTestManager(t, false)
	s := m.Create()

	s.Submit("book")
	// The form fills in the destination while the reply is pending.
	if err := store.Set(context.Background(), s.ID, models.BookingState{
		Transport: models.TransportFields{To: "Paris"},
	}); err != nil {
		t.Fatal(err)
	}

	view := waitForReply(t, s)
	got := view.Messages[len(view.Messages)-1].Text
	want := "I notice you haven't filled in the departure location, travel date. Would you like help with that?"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestSwitchSectionIgnoresUnknownCategory(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	s.SwitchSection(models.BookingCategory("payments"))
	if view := s.Snapshot(); view.ActiveSection != models.CategoryTransport {
		t.Errorf("unknown category switched section to %s", view.ActiveSection)
	}
}

func TestToggleVisibilityIsOrthogonal(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	s.Submit("help")
	if open := s.ToggleVisibility(); open {
		t.Error("first toggle should minimize the widget")
	}
	if open := s.ToggleVisibility(); !open {
		t.Error("second toggle should reopen the widget")
	}

	view := waitForReply(t, s)
	if len(view.Messages) != 3 {
		t.Errorf("toggling affected the pending reply: %d messages", len(view.Messages))
	}
}

func TestCloseDiscardsPendingReply(t *testing.T) {
	m, _ := newTestManager(t, false)
	s := m.Create()

	s.Submit("help")
	m.Close(s.ID)

	time.Sleep(3 * testReplyDelay)
	if view := s.Snapshot(); len(view.Messages) != 2 {
		t.Errorf("reply delivered after close: %d messages", len(view.Messages))
	}
	if _, ok := m.Get(s.ID); ok {
		t.Error("closed session still reachable through the manager")
	}
}

func TestJanitorExpiresIdleSessions(t *testing.T) {
	store := NewMemoryStateStore()
	m := NewSessionManager(store, testReplyDelay, 10*time.Millisecond, false)
	t.Cleanup(m.Shutdown)

	s := m.Create()
	time.Sleep(30 * time.Millisecond)
	m.sweep()

	if _, ok := m.Get(s.ID); ok {
		t.Error("idle session survived the janitor sweep")
	}
}
