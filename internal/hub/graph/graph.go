// Package graph runs one assistant turn as an eino compose graph:
// LoadSession -> (blank ? Ignore : Transition -> Persist) -> END.
package graph

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/cloudwego/eino/compose"

	"github.com/community-support-hub/server/internal/hub/conversation"
	"github.com/community-support-hub/server/internal/hub/graph/conversations"
	"github.com/community-support-hub/server/internal/hub/graph/nodes"
	"github.com/community-support-hub/server/internal/hub/graph/observers"
	"github.com/community-support-hub/server/internal/hub/metrics"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

// Runner executes assistant turns and exposes the session lifecycle around them.
type Runner interface {
	Open(ctx context.Context) (model.TurnResult, error)
	Transcript(ctx context.Context, conversationID string) (model.TurnResult, error)
	Invoke(ctx context.Context, in model.TurnInput) (model.TurnResult, error)
	Close(ctx context.Context, conversationID string) error
}

// Config holds everything needed to compose the turn graph end-to-end.
type Config struct {
	Catalog          conversation.Catalog
	Conversation     model.ConversationConfig
	ConversationRepo model.ConversationRepository
}

// GraphBuilder handles the construction of the turn graph.
type GraphBuilder struct {
	sessions *conversations.SessionManager
	graph    *compose.Graph[model.TurnInput, model.TurnResult]
}

const lockStripes = 64

type graphRunner struct {
	runnable compose.Runnable[model.TurnInput, model.TurnResult]
	sessions *conversations.SessionManager
	// turns of one conversation are serialized; distinct conversations
	// only contend when they hash to the same stripe
	locks [lockStripes]sync.Mutex
}

func (r *graphRunner) lockFor(conversationID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(conversationID))
	return &r.locks[h.Sum32()%lockStripes]
}

func (r *graphRunner) Open(ctx context.Context) (model.TurnResult, error) {
	res, err := r.sessions.Open(ctx)
	if err != nil {
		return model.TurnResult{}, err
	}
	logx.Info().Str("conversation_id", res.ConversationID).Msg("Conversation opened")
	return res, nil
}

func (r *graphRunner) Transcript(ctx context.Context, conversationID string) (model.TurnResult, error) {
	return r.sessions.Transcript(ctx, conversationID)
}

// Close waits for an in-flight turn of the conversation before erasing it.
func (r *graphRunner) Close(ctx context.Context, conversationID string) error {
	mu := r.lockFor(conversationID)
	mu.Lock()
	defer mu.Unlock()

	if err := r.sessions.Close(ctx, conversationID); err != nil {
		return err
	}
	logx.Info().Str("conversation_id", conversationID).Msg("Conversation closed")
	return nil
}

func (r *graphRunner) Invoke(ctx context.Context, in model.TurnInput) (model.TurnResult, error) {
	if in.Action == nil {
		return model.TurnResult{}, fmt.Errorf("turn without action")
	}

	mu := r.lockFor(in.ConversationID)
	mu.Lock()
	defer mu.Unlock()

	out, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()...))
	if err != nil {
		return model.TurnResult{}, err
	}
	metrics.ChatTurns.WithLabelValues(in.Action.Kind(), strconv.FormatBool(out.Accepted)).Inc()
	return out, nil
}

// BuildTurnGraph composes the session manager, builds the graph, and returns a Runner.
func BuildTurnGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.ConversationRepo == nil {
		return nil, fmt.Errorf("conversation repo is nil")
	}
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	sm := conversations.NewSessionManager(cfg.ConversationRepo, conversation.NewEngine(cfg.Catalog), cfg.Conversation)

	runnable, err := BuildGraph(ctx, sm)
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Turn graph built successfully")
	return &graphRunner{runnable: runnable, sessions: sm}, nil
}

// BuildGraph constructs and returns the compiled turn graph.
func BuildGraph(ctx context.Context, sm *conversations.SessionManager) (compose.Runnable[model.TurnInput, model.TurnResult], error) {
	if sm == nil {
		return nil, fmt.Errorf("session manager is nil")
	}

	builder := &GraphBuilder{
		sessions: sm,
		graph: compose.NewGraph[model.TurnInput, model.TurnResult](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}
	if err := builder.addBranches(); err != nil {
		return nil, err
	}
	return builder.compile(ctx)
}

func (b *GraphBuilder) addNodes() error {
	steps := []struct {
		key  string
		node *compose.Lambda
		opts []compose.GraphAddNodeOpt
	}{
		{
			key:  nodes.NodeLoadSession,
			node: nodes.NewLoadSessionNode(b.sessions),
			opts: []compose.GraphAddNodeOpt{
				compose.WithStatePreHandler(nodes.NewLoadSessionPreHandler()),
				compose.WithStatePostHandler(nodes.NewLoadSessionPostHandler()),
			},
		},
		{key: nodes.NodeIgnore, node: nodes.NewIgnoreNode()},
		{
			key:  nodes.NodeTransition,
			node: nodes.NewTransitionNode(b.sessions),
			opts: []compose.GraphAddNodeOpt{
				compose.WithStatePostHandler(nodes.NewTransitionPostHandler()),
			},
		},
		{key: nodes.NodePersist, node: nodes.NewPersistNode(b.sessions)},
	}

	for _, s := range steps {
		opts := append(s.opts, compose.WithNodeName(s.key))
		if err := b.graph.AddLambdaNode(s.key, s.node, opts...); err != nil {
			logx.Error().Err(err).Str("node", s.key).Msg("Error adding node")
			return fmt.Errorf("error adding node %s: %w", s.key, err)
		}
	}
	return nil
}

func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeLoadSession},
		{nodes.NodeTransition, nodes.NodePersist},
		{nodes.NodePersist, compose.END},
		{nodes.NodeIgnore, compose.END},
	}

	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			return fmt.Errorf("error adding edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

func (b *GraphBuilder) addBranches() error {
	blankBranch := compose.NewGraphBranch(
		nodes.NewBlankInputCondition(),
		map[string]bool{
			nodes.NodeIgnore:     true,
			nodes.NodeTransition: true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeLoadSession, blankBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding blank input branch")
		return fmt.Errorf("error adding blank input branch: %w", err)
	}
	return nil
}

func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.TurnInput, model.TurnResult], error) {
	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(10))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
