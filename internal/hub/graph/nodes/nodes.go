package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"github.com/community-support-hub/server/internal/hub/graph/conversations"
	"github.com/community-support-hub/server/internal/hub/metrics"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

const (
	NodeLoadSession = "LoadSession"
	NodeTransition  = "Transition"
	NodeIgnore      = "Ignore"
	NodePersist     = "Persist"
)

// NewLoadSessionPreHandler records the invocation identity in local state.
func NewLoadSessionPreHandler() func(context.Context, model.TurnInput, *model.AppState) (model.TurnInput, error) {
	return func(ctx context.Context, in model.TurnInput, s *model.AppState) (model.TurnInput, error) {
		s.ConversationID = in.ConversationID
		if in.Action != nil {
			s.ActionKind = in.Action.Kind()
		}
		return in, nil
	}
}

// NewLoadSessionNode joins the action with the stored dialogue state.
func NewLoadSessionNode(sm *conversations.SessionManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.TurnInput) (model.TurnRequest, error) {
		state, err := sm.State(ctx, in.ConversationID)
		if err != nil {
			return model.TurnRequest{}, err
		}
		return model.TurnRequest{
			ConversationID: in.ConversationID,
			State:          state,
			Action:         sm.Sanitize(in.Action),
		}, nil
	})
}

// NewLoadSessionPostHandler keeps the loaded state for later nodes.
func NewLoadSessionPostHandler() func(context.Context, model.TurnRequest, *model.AppState) (model.TurnRequest, error) {
	return func(ctx context.Context, out model.TurnRequest, s *model.AppState) (model.TurnRequest, error) {
		s.Before = out.State
		logx.Debug().
			Str("conversation_id", s.ConversationID).
			Str("node", NodeLoadSession).
			Str("step", string(out.State.Step)).
			Str("action", s.ActionKind).
			Msg("Session loaded")
		return out, nil
	}
}

// NewBlankInputCondition routes blank text to NodeIgnore so it never reaches
// the engine or the transcript.
func NewBlankInputCondition() func(context.Context, model.TurnRequest) (string, error) {
	return func(ctx context.Context, in model.TurnRequest) (string, error) {
		if model.IsBlank(in.Action) {
			logx.Debug().Str("conversation_id", in.ConversationID).Msg("Blank input - ignoring turn")
			return NodeIgnore, nil
		}
		return NodeTransition, nil
	}
}

// NewIgnoreNode answers a rejected turn with the unchanged state.
func NewIgnoreNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.TurnRequest) (model.TurnResult, error) {
		return model.TurnResult{
			ConversationID: in.ConversationID,
			State:          in.State,
			Entries:        []model.MessageLogEntry{},
			Accepted:       false,
		}, nil
	})
}

// NewTransitionNode applies the conversation engine.
func NewTransitionNode(sm *conversations.SessionManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.TurnRequest) (model.Turn, error) {
		turn, err := sm.Handle(ctx, in)
		if err != nil {
			return model.Turn{}, fmt.Errorf("transition: %w", err)
		}
		return turn, nil
	})
}

// NewTransitionPostHandler reports matcher outcomes and step changes.
func NewTransitionPostHandler() func(context.Context, model.Turn, *model.AppState) (model.Turn, error) {
	return func(ctx context.Context, out model.Turn, s *model.AppState) (model.Turn, error) {
		if out.MatchOutcome != "" {
			metrics.ResourceMatches.WithLabelValues(out.MatchOutcome).Inc()
		}
		logx.Debug().
			Str("conversation_id", s.ConversationID).
			Str("node", NodeTransition).
			Str("from", string(s.Before.Step)).
			Str("to", string(out.State.Step)).
			Str("match_outcome", out.MatchOutcome).
			Msg("Transition applied")
		return out, nil
	}
}

// NewPersistNode appends the turn to the transcript and saves the next state.
func NewPersistNode(sm *conversations.SessionManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, turn model.Turn) (model.TurnResult, error) {
		var conversationID string
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			conversationID = state.ConversationID
			return nil
		})
		if err != nil {
			return model.TurnResult{}, fmt.Errorf("failed to access state: %w", err)
		}

		if err := sm.Persist(ctx, conversationID, turn); err != nil {
			logx.Error().
				Str("conversation_id", conversationID).
				Err(err).
				Msg("Error persisting turn")
			return model.TurnResult{}, err
		}

		return model.TurnResult{
			ConversationID: conversationID,
			State:          turn.State,
			Entries:        turn.Entries,
			Accepted:       len(turn.Entries) > 0,
		}, nil
	})
}
