package observers

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"

	logx "github.com/community-support-hub/server/pkg/logger"
)

type startKey struct{}

// newNodeHandler logs lifecycle and latency of graph nodes.
func newNodeHandler() einocb.Handler {
	return einocb.NewHandlerBuilder().
		OnStartFn(func(ctx context.Context, info *einocb.RunInfo, _ einocb.CallbackInput) context.Context {
			return context.WithValue(ctx, startKey{}, time.Now())
		}).
		OnEndFn(func(ctx context.Context, info *einocb.RunInfo, _ einocb.CallbackOutput) context.Context {
			ev := logx.Debug().
				Str("component", string(info.Component)).
				Str("type", info.Type).
				Str("name", info.Name)
			if started, ok := ctx.Value(startKey{}).(time.Time); ok {
				ev = ev.Dur("elapsed", time.Since(started))
			}
			ev.Msg("Node finished")
			return ctx
		}).
		OnErrorFn(func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Warn().
				Err(err).
				Str("component", string(info.Component)).
				Str("name", info.Name).
				Msg("Node failed")
			return ctx
		}).
		Build()
}

// NewAllCallbacks aggregates the observer handlers for one graph invocation.
func NewAllCallbacks() []einocb.Handler {
	return []einocb.Handler{
		newNodeHandler(),
		callbackHelper.NewHandlerHelper().
			Prompt(newPromptHandler()).
			Handler(),
	}
}
