package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/community-support-hub/server/internal/hub/catalog"
	"github.com/community-support-hub/server/internal/hub/model"
)

type staticCatalog []model.Resource

func (s staticCatalog) Records() []model.Resource { return s }

func newEngine() *Engine {
	return NewEngine(catalog.New(nil))
}

func handle(t *testing.T, e *Engine, state model.ConversationState, action model.ChatAction) model.Turn {
	t.Helper()
	turn, err := e.Handle(context.Background(), state, action)
	require.NoError(t, err)
	return turn
}

func assistantReply(t *testing.T, turn model.Turn) model.MessageLogEntry {
	t.Helper()
	require.Len(t, turn.Entries, 2)
	assert.Equal(t, model.SpeakerUser, turn.Entries[0].Speaker)
	assert.Equal(t, model.SpeakerAssistant, turn.Entries[1].Speaker)
	return turn.Entries[1]
}

func TestEngine_HousingScenario(t *testing.T) {
	e := newEngine()
	state := model.NewConversationState()

	turn := handle(t, e, state, model.SelectService{Tag: model.TagHousing})
	assert.Equal(t, model.StepAwaitingLocation, turn.State.Step)
	assert.Equal(t, model.TagHousing, turn.State.SelectedServiceTag)
	assert.Equal(t, "Housing assistance", turn.Entries[0].Text)
	assert.Contains(t, assistantReply(t, turn).Text, "What's your location or zip code?")

	turn = handle(t, e, turn.State, model.FreeText{Text: "11385"})
	assert.Equal(t, model.StepShowingResults, turn.State.Step)
	assert.Equal(t, "Queens, NY", turn.State.LastLocationQuery)
	assert.Equal(t, "local", turn.MatchOutcome)
	reply := assistantReply(t, turn)
	assert.Contains(t, reply.Text, "I detected ZIP code 11385, that's in Queens, NY.")
	assert.Contains(t, reply.Text, "Safe Haven Housing")
	assert.NotContains(t, reply.Text, "Trauma Recovery Center")
	assert.Equal(t, []string{model.ReplyShowMore, model.ReplyStartOver, model.ReplySubmitHelpRequest}, reply.QuickReplies)

	turn = handle(t, e, turn.State, model.StartOver{})
	assert.Equal(t, model.NewConversationState(), turn.State)
	assert.Empty(t, turn.State.SelectedServiceTag)
	assert.Equal(t, model.ServiceOptionLabels(), assistantReply(t, turn).QuickReplies)
}

func TestEngine_BlankTextIsIgnored(t *testing.T) {
	e := newEngine()
	state := model.ConversationState{Step: model.StepAwaitingLocation, SelectedServiceTag: model.TagLegal}

	for _, action := range []model.ChatAction{
		model.FreeText{Text: "   "},
		model.SubmitLocation{Text: "\t\n"},
		model.SelectService{},
	} {
		turn := handle(t, e, state, action)
		assert.Empty(t, turn.Entries, "%T", action)
		assert.Equal(t, state, turn.State)
	}
}

func TestEngine_NoResultsOffersNationwide(t *testing.T) {
	e := NewEngine(staticCatalog{{Name: "Local only", Location: "Denver, CO", Type: []model.ServiceTag{model.TagHousing}}})
	state := model.ConversationState{Step: model.StepAwaitingLocation}

	turn := handle(t, e, state, model.SubmitLocation{Text: "Atlantis"})
	assert.Equal(t, model.StepShowingResults, turn.State.Step)
	assert.Equal(t, "none", turn.MatchOutcome)
	reply := assistantReply(t, turn)
	assert.Contains(t, reply.Text, "Atlantis")
	assert.Equal(t, []string{model.ReplyShowNationwide, model.ReplyTryDifferentLocation, model.ReplyStartOver}, reply.QuickReplies)
}

func TestEngine_FallbackListingSaysNationwide(t *testing.T) {
	turn := handle(t, newEngine(), model.ConversationState{Step: model.StepAwaitingLocation}, model.FreeText{Text: "Nowhereville"})
	assert.Equal(t, "nationwide", turn.MatchOutcome)
	assert.Contains(t, assistantReply(t, turn).Text, "nationwide services can help")
}

func TestEngine_ShowingResultsTransitions(t *testing.T) {
	e := newEngine()
	results := model.ConversationState{
		Step:               model.StepShowingResults,
		SelectedServiceTag: model.TagLegal,
		LastLocationQuery:  "Chicago",
	}

	t.Run("try different location keeps service", func(t *testing.T) {
		turn := handle(t, e, results, model.TryDifferentLocation{})
		assert.Equal(t, model.StepAwaitingLocation, turn.State.Step)
		assert.Equal(t, model.TagLegal, turn.State.SelectedServiceTag)
	})

	t.Run("different service clears tag", func(t *testing.T) {
		turn := handle(t, e, results, model.DifferentService{})
		assert.Equal(t, model.StepInitial, turn.State.Step)
		assert.Empty(t, turn.State.SelectedServiceTag)
		assert.Equal(t, model.ServiceOptionLabels(), assistantReply(t, turn).QuickReplies)
	})

	t.Run("show nationwide stays and narrows", func(t *testing.T) {
		housing := results
		housing.SelectedServiceTag = model.TagHousing
		turn := handle(t, e, housing, model.ShowNationwide{})
		assert.Equal(t, housing, turn.State)
		assert.Equal(t, "nationwide", turn.MatchOutcome)
		reply := assistantReply(t, turn)
		assert.Contains(t, reply.Text, "HUD Housing Counseling")
		assert.NotContains(t, reply.Text, "NAMI")
		assert.Equal(t, []string{model.ReplyShowMore, model.ReplyStartOver, model.ReplySubmitHelpRequest}, reply.QuickReplies)
	})

	tests := []struct {
		text       string
		wantSubstr string
	}{
		{"show me more", "Resource Directory"},
		{"any OTHER options?", "Resource Directory"},
		{"Yes please", "nationwide resources"},
		{"nationwide is fine", "nationwide resources"},
		{"thanks", "anything else"},
	}
	for _, tt := range tests {
		t.Run("free text "+tt.text, func(t *testing.T) {
			turn := handle(t, e, results, model.FreeText{Text: tt.text})
			assert.Equal(t, results, turn.State)
			assert.Contains(t, assistantReply(t, turn).Text, tt.wantSubstr)
		})
	}
}

func TestEngine_RequestFormDoesNotAdvance(t *testing.T) {
	e := newEngine()
	for _, state := range []model.ConversationState{
		model.NewConversationState(),
		{Step: model.StepAwaitingLocation, SelectedServiceTag: model.TagYouth},
		{Step: model.StepShowingResults, LastLocationQuery: "Brooklyn"},
	} {
		turn := handle(t, e, state, model.RequestForm{})
		assert.Equal(t, state, turn.State)
		reply := assistantReply(t, turn)
		assert.Contains(t, reply.Text, "Request Help form")
		assert.Equal(t, model.ReplySubmitHelpRequest, turn.Entries[0].Text)
	}
}

func TestEngine_InitialFreeText(t *testing.T) {
	e := newEngine()

	turn := handle(t, e, model.NewConversationState(), model.FreeText{Text: "I need a lawyer"})
	assert.Equal(t, model.StepAwaitingLocation, turn.State.Step)
	assert.Equal(t, model.TagLegal, turn.State.SelectedServiceTag)

	turn = handle(t, e, model.NewConversationState(), model.FreeText{Text: "hello?"})
	assert.Equal(t, model.NewConversationState(), turn.State)
	assert.Equal(t, model.ServiceOptionLabels(), assistantReply(t, turn).QuickReplies)
}

func TestEngine_ShowMore(t *testing.T) {
	state := model.ConversationState{Step: model.StepShowingResults}
	turn := handle(t, newEngine(), state, model.ShowMore{})
	assert.Equal(t, state, turn.State)
	assert.Equal(t, model.ReplyShowMore, turn.Entries[0].Text)
	assert.Contains(t, assistantReply(t, turn).Text, "Resource Directory")
}

func TestEngine_ListingCappedAtFive(t *testing.T) {
	turn := handle(t, newEngine(), model.ConversationState{Step: model.StepAwaitingLocation}, model.FreeText{Text: "nowhere"})
	reply := assistantReply(t, turn)
	assert.Equal(t, 5, countOccurrences(reply.Text, "Phone: "))
}

func TestEngine_Greeting(t *testing.T) {
	entry, err := newEngine().Greeting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SpeakerAssistant, entry.Speaker)
	assert.Len(t, entry.QuickReplies, len(model.ServiceOptions))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "a b", SanitizeText("  a \n\t b  ", 10))
	assert.Equal(t, "abc", SanitizeText("abcdef", 3))
	assert.Equal(t, "ab", SanitizeText("ab cd", 3))
	assert.Equal(t, "ok", SanitizeText("o\x00k\xff", 10))
	assert.Equal(t, "Brooklyn", SanitizeText("Brooklyn", 0))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
