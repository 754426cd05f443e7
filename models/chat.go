package models

// Speaker tells which side of the conversation produced an entry.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// ConversationEntry is one line of the chat transcript. The transcript is
// append-only and ordered oldest first; entries are never removed or edited.
type ConversationEntry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ChatMessageRequest is the payload for submitting one user message.
type ChatMessageRequest struct {
	Text string `json:"text"`
}

// ChatMessageResponse reports whether a submitted message was accepted.
// Blank input and input sent while a reply is pending are rejected silently.
type ChatMessageResponse struct {
	Accepted          bool `json:"accepted"`
	IsWaitingForReply bool `json:"isWaitingForReply"`
}

// SwitchSectionRequest is the payload for a quick-action section switch.
type SwitchSectionRequest struct {
	Section BookingCategory `json:"section"`
}

// ChatSessionView is the render snapshot of one chat session.
type ChatSessionView struct {
	SessionID         string              `json:"sessionId"`
	ActiveSection     BookingCategory     `json:"activeSection"`
	IsWaitingForReply bool                `json:"isWaitingForReply"`
	IsOpen            bool                `json:"isOpen"`
	Messages          []ConversationEntry `json:"messages"`
}
