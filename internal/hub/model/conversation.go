package model

import (
	"context"
)

// Step is the position of a conversation in the assistant's dialogue.
type Step string

const (
	StepInitial          Step = "initial"
	StepAwaitingLocation Step = "awaiting_location"
	StepShowingResults   Step = "showing_results"
)

// ConversationState is the per-session dialogue state.
type ConversationState struct {
	Step               Step       `json:"step"`
	SelectedServiceTag ServiceTag `json:"selectedServiceTag,omitempty"`
	LastLocationQuery  string     `json:"lastLocationQuery,omitempty"`
}

// NewConversationState returns the state of a freshly opened conversation.
func NewConversationState() ConversationState {
	return ConversationState{Step: StepInitial}
}

// Speaker identifies who wrote a transcript entry.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// MessageLogEntry is one line of the append-only transcript.
type MessageLogEntry struct {
	Speaker      Speaker  `json:"speaker"`
	Text         string   `json:"text"`
	QuickReplies []string `json:"quickReplies,omitempty"`
}

func UserEntry(text string) MessageLogEntry {
	return MessageLogEntry{Speaker: SpeakerUser, Text: text}
}

func AssistantEntry(text string, quickReplies ...string) MessageLogEntry {
	return MessageLogEntry{Speaker: SpeakerAssistant, Text: text, QuickReplies: quickReplies}
}

type ConversationRepository interface {
	// AddEntries appends transcript entries in order
	AddEntries(ctx context.Context, conversationID string, entries ...MessageLogEntry) error

	// LoadTranscript retrieves the transcript of a conversation
	LoadTranscript(ctx context.Context, conversationID string) (*Transcript, error)

	// SaveState stores the dialogue state, refreshing the session TTL
	SaveState(ctx context.Context, conversationID string, state ConversationState) error

	// LoadState returns the stored state; found is false for unknown or expired sessions
	LoadState(ctx context.Context, conversationID string) (state ConversationState, found bool, err error)

	// ClearHistory removes the transcript and state of a conversation
	ClearHistory(ctx context.Context, conversationID string) error
}

// Transcript represents a loaded conversation log with metadata.
type Transcript struct {
	ConversationID string            `json:"conversationId"`
	Entries        []MessageLogEntry `json:"messages"`
}
