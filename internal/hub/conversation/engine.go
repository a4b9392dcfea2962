// Package conversation implements the assistant's dialogue state machine.
package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/community-support-hub/server/internal/hub/graph/prompts"
	"github.com/community-support-hub/server/internal/hub/location"
	"github.com/community-support-hub/server/internal/hub/matcher"
	"github.com/community-support-hub/server/internal/hub/model"
)

const (
	introLocal      = "I found these verified organizations in your area:"
	introFallback   = "I couldn't find organizations in that exact area, but these nationwide services can help:"
	introNationwide = "Here are nationwide resources that can help:"
)

var (
	listingReplies  = []string{model.ReplyShowMore, model.ReplyStartOver, model.ReplySubmitHelpRequest}
	noResultReplies = []string{model.ReplyShowNationwide, model.ReplyTryDifferentLocation, model.ReplyStartOver}
	followUpReplies = []string{model.ReplyTryDifferentLocation, model.ReplyDifferentService, model.ReplyStartOver, model.ReplySubmitHelpRequest}
)

// Catalog is the read model the engine matches against.
type Catalog interface {
	Records() []model.Resource
}

// Engine turns a dialogue state plus one visitor action into the next state
// and the transcript entries of that turn. It holds no per-conversation data
// and is safe for concurrent use.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Greeting is the assistant's opening entry of every conversation.
func (e *Engine) Greeting(ctx context.Context) (model.MessageLogEntry, error) {
	text, err := prompts.Render(ctx, prompts.Greeting, nil)
	if err != nil {
		return model.MessageLogEntry{}, err
	}
	return model.AssistantEntry(text, model.ServiceOptionLabels()...), nil
}

// Handle applies one action. Blank text actions produce an empty turn with
// the state unchanged; every other action yields exactly one user entry
// followed by one assistant entry.
func (e *Engine) Handle(ctx context.Context, state model.ConversationState, action model.ChatAction) (model.Turn, error) {
	if model.IsBlank(action) {
		return model.Turn{State: state}, nil
	}
	if state.Step == "" {
		state.Step = model.StepInitial
	}

	reply, err := e.transition(ctx, state, action)
	if err != nil {
		return model.Turn{}, fmt.Errorf("conversation %s on %s: %w", action.Kind(), state.Step, err)
	}
	reply.Entries = append([]model.MessageLogEntry{model.UserEntry(action.Label())}, reply.Entries...)
	return reply, nil
}

func (e *Engine) transition(ctx context.Context, state model.ConversationState, action model.ChatAction) (model.Turn, error) {
	switch a := action.(type) {
	case model.StartOver:
		return e.restart(ctx, model.NewConversationState())

	case model.DifferentService:
		next := state
		next.Step = model.StepInitial
		next.SelectedServiceTag = ""
		return e.restart(ctx, next)

	case model.SelectService:
		return e.selectService(ctx, state, a.Tag)

	case model.TryDifferentLocation:
		next := state
		next.Step = model.StepAwaitingLocation
		return e.askLocation(ctx, next)

	case model.SubmitLocation:
		return e.search(ctx, state, a.Text)

	case model.ShowNationwide:
		return e.nationwide(ctx, state)

	case model.ShowMore:
		return e.say(ctx, state, prompts.Browse, listingReplies...)

	case model.RequestForm:
		return e.say(ctx, state, prompts.RequestForm, model.ReplyStartOver)

	case model.FreeText:
		return e.freeText(ctx, state, a.Text)
	}
	return model.Turn{}, fmt.Errorf("unsupported action %T", action)
}

func (e *Engine) freeText(ctx context.Context, state model.ConversationState, text string) (model.Turn, error) {
	switch state.Step {
	case model.StepAwaitingLocation:
		return e.search(ctx, state, text)

	case model.StepShowingResults:
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "more") || strings.Contains(lower, "other"):
			return e.say(ctx, state, prompts.Browse, listingReplies...)
		case strings.Contains(lower, "yes") || strings.Contains(lower, "nationwide"):
			return e.nationwide(ctx, state)
		}
		return e.say(ctx, state, prompts.FollowUp, followUpReplies...)
	}

	if opt, ok := model.DetectServiceOption(text); ok {
		return e.selectService(ctx, state, opt.Tag)
	}
	return e.say(ctx, state, prompts.ClarifyService, model.ServiceOptionLabels()...)
}

func (e *Engine) restart(ctx context.Context, next model.ConversationState) (model.Turn, error) {
	greeting, err := e.Greeting(ctx)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{State: next, Entries: []model.MessageLogEntry{greeting}}, nil
}

func (e *Engine) selectService(ctx context.Context, state model.ConversationState, tag model.ServiceTag) (model.Turn, error) {
	next := state
	next.Step = model.StepAwaitingLocation
	next.SelectedServiceTag = tag
	return e.askLocation(ctx, next)
}

func (e *Engine) askLocation(ctx context.Context, next model.ConversationState) (model.Turn, error) {
	label := ""
	if opt, ok := model.ServiceOptionByTag(next.SelectedServiceTag); ok {
		label = opt.Label
	}
	text, err := prompts.RenderAskLocation(ctx, label)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{State: next, Entries: []model.MessageLogEntry{model.AssistantEntry(text)}}, nil
}

func (e *Engine) search(ctx context.Context, state model.ConversationState, raw string) (model.Turn, error) {
	q := location.Resolve(raw)
	result := matcher.Match(e.catalog.Records(), q.Normalized, model.CategoriesFor(state.SelectedServiceTag))

	next := state
	next.Step = model.StepShowingResults
	next.LastLocationQuery = q.Normalized

	data := prompts.ListingData{
		Query:     q.Normalized,
		Zip:       q.RecognizedZip,
		Place:     q.Normalized,
		Resources: listingItems(result.Resources),
	}

	turn := model.Turn{State: next, MatchOutcome: string(result.Outcome)}
	if len(result.Resources) == 0 {
		text, err := prompts.RenderNoResults(ctx, data)
		if err != nil {
			return model.Turn{}, err
		}
		turn.Entries = []model.MessageLogEntry{model.AssistantEntry(text, noResultReplies...)}
		return turn, nil
	}

	data.Intro = introLocal
	if result.Outcome == matcher.OutcomeNationwide {
		data.Intro = introFallback
	}
	text, err := prompts.RenderListing(ctx, data)
	if err != nil {
		return model.Turn{}, err
	}
	turn.Entries = []model.MessageLogEntry{model.AssistantEntry(text, listingReplies...)}
	return turn, nil
}

func (e *Engine) nationwide(ctx context.Context, state model.ConversationState) (model.Turn, error) {
	result := matcher.Nationwide(e.catalog.Records(), model.CategoriesFor(state.SelectedServiceTag))
	if len(result.Resources) == 0 {
		return e.say(ctx, state, prompts.FollowUp, followUpReplies...)
	}

	next := state
	next.Step = model.StepShowingResults

	text, err := prompts.RenderListing(ctx, prompts.ListingData{
		Intro:     introNationwide,
		Resources: listingItems(result.Resources),
	})
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{
		State:        next,
		Entries:      []model.MessageLogEntry{model.AssistantEntry(text, listingReplies...)},
		MatchOutcome: string(result.Outcome),
	}, nil
}

func (e *Engine) say(ctx context.Context, state model.ConversationState, name string, replies ...string) (model.Turn, error) {
	text, err := prompts.Render(ctx, name, nil)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{State: state, Entries: []model.MessageLogEntry{model.AssistantEntry(text, replies...)}}, nil
}

func listingItems(rs []model.Resource) []prompts.ListingItem {
	items := make([]prompts.ListingItem, 0, len(rs))
	for _, r := range rs {
		items = append(items, prompts.ListingItem{
			Name:        r.Name,
			Location:    r.Location,
			Description: r.Description,
			Phone:       r.Phone,
			Website:     r.Website,
		})
	}
	return items
}
