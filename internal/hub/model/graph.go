package model

// AppState stores per-invocation state for the turn graph.
// Concurrency model:
//   - Registered as Graph Local State via compose.WithGenLocalState.
//   - Read and written only inside Eino state handlers or compose.ProcessState,
//     which serialize access, so no mutex is needed.
//   - Conversation data itself is persisted through ConversationRepository.
type AppState struct {
	ConversationID string
	ActionKind     string
	// Before is the dialogue state loaded at the start of the turn.
	Before ConversationState
}

// TurnInput is one visitor action on one conversation.
type TurnInput struct {
	ConversationID string
	Action         ChatAction
}

// TurnRequest is a TurnInput joined with the stored dialogue state.
type TurnRequest struct {
	ConversationID string
	State          ConversationState
	Action         ChatAction
}

// Turn is the engine's answer to a TurnRequest.
type Turn struct {
	State   ConversationState
	Entries []MessageLogEntry
	// MatchOutcome is set when the turn ran the resource matcher.
	MatchOutcome string
}

// TurnResult is what callers of the turn graph receive.
type TurnResult struct {
	ConversationID string            `json:"conversationId"`
	State          ConversationState `json:"state"`
	Entries        []MessageLogEntry `json:"messages"`
	// Accepted is false when the action was rejected silently (blank text).
	Accepted bool `json:"accepted"`
}
