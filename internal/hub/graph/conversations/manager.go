package conversations

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	errx "github.com/community-support-hub/server/internal/core/error"
	"github.com/community-support-hub/server/internal/hub/conversation"
	"github.com/community-support-hub/server/internal/hub/model"
)

// SessionManager owns the stored side of conversations: ids, dialogue state
// and the append-only transcript.
type SessionManager struct {
	conversationRepo model.ConversationRepository
	engine           *conversation.Engine
	maxInputLength   int
}

func NewSessionManager(conversationRepo model.ConversationRepository, engine *conversation.Engine, config model.ConversationConfig) *SessionManager {
	return &SessionManager{
		conversationRepo: conversationRepo,
		engine:           engine,
		maxInputLength:   config.MaxInputLength,
	}
}

// Open starts a conversation in the initial step with the greeting as its
// first transcript entry.
func (sm *SessionManager) Open(ctx context.Context) (model.TurnResult, error) {
	id := uuid.NewString()
	state := model.NewConversationState()

	greeting, err := sm.engine.Greeting(ctx)
	if err != nil {
		return model.TurnResult{}, fmt.Errorf("render greeting: %w", err)
	}
	if err := sm.conversationRepo.SaveState(ctx, id, state); err != nil {
		return model.TurnResult{}, err
	}
	if err := sm.conversationRepo.AddEntries(ctx, id, greeting); err != nil {
		return model.TurnResult{}, err
	}

	return model.TurnResult{
		ConversationID: id,
		State:          state,
		Entries:        []model.MessageLogEntry{greeting},
		Accepted:       true,
	}, nil
}

// State returns the stored dialogue state. Unknown or expired conversations
// are reported as errx not-found errors.
func (sm *SessionManager) State(ctx context.Context, conversationID string) (model.ConversationState, error) {
	if conversationID == "" {
		return model.ConversationState{}, errx.NotFound(fmt.Errorf("empty conversation id"))
	}
	state, found, err := sm.conversationRepo.LoadState(ctx, conversationID)
	if err != nil {
		return model.ConversationState{}, err
	}
	if !found {
		return model.ConversationState{}, errx.NotFound(fmt.Errorf("conversation %s", conversationID))
	}
	return state, nil
}

// Transcript returns the full log together with the current state.
func (sm *SessionManager) Transcript(ctx context.Context, conversationID string) (model.TurnResult, error) {
	state, err := sm.State(ctx, conversationID)
	if err != nil {
		return model.TurnResult{}, err
	}
	tr, err := sm.conversationRepo.LoadTranscript(ctx, conversationID)
	if err != nil {
		return model.TurnResult{}, err
	}
	return model.TurnResult{
		ConversationID: conversationID,
		State:          state,
		Entries:        tr.Entries,
		Accepted:       true,
	}, nil
}

// Close erases the transcript and state of a conversation. Unknown or
// expired conversations are reported as errx not-found errors.
func (sm *SessionManager) Close(ctx context.Context, conversationID string) error {
	if _, err := sm.State(ctx, conversationID); err != nil {
		return err
	}
	return sm.conversationRepo.ClearHistory(ctx, conversationID)
}

// Sanitize cleans the text carried by free-text actions. Other actions pass
// through unchanged.
func (sm *SessionManager) Sanitize(action model.ChatAction) model.ChatAction {
	switch a := action.(type) {
	case model.FreeText:
		return model.FreeText{Text: conversation.SanitizeText(a.Text, sm.maxInputLength)}
	case model.SubmitLocation:
		return model.SubmitLocation{Text: conversation.SanitizeText(a.Text, sm.maxInputLength)}
	}
	return action
}

// Handle runs the engine for one request.
func (sm *SessionManager) Handle(ctx context.Context, req model.TurnRequest) (model.Turn, error) {
	return sm.engine.Handle(ctx, req.State, req.Action)
}

// Persist appends the turn's entries and stores the next state.
func (sm *SessionManager) Persist(ctx context.Context, conversationID string, turn model.Turn) error {
	if err := sm.conversationRepo.AddEntries(ctx, conversationID, turn.Entries...); err != nil {
		return err
	}
	return sm.conversationRepo.SaveState(ctx, conversationID, turn.State)
}
