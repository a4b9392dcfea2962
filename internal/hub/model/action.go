package model

import "strings"

// ChatAction is a discrete visitor action consumed by the conversation engine.
// The set is closed: only types in this file implement it.
type ChatAction interface {
	// Kind is a stable name used in logs and metrics.
	Kind() string
	// Label is the transcript text of the visitor's turn.
	Label() string
	isChatAction()
}

// Quick-reply labels offered by the assistant.
const (
	ReplyShowMore             = "Show more resources"
	ReplyStartOver            = "Start over"
	ReplySubmitHelpRequest    = "Submit help request"
	ReplyShowNationwide       = "Yes, show nationwide resources"
	ReplyTryDifferentLocation = "Try a different location"
	ReplyDifferentService     = "Different type of help"
)

type SelectService struct{ Tag ServiceTag }

type SubmitLocation struct{ Text string }

type FreeText struct{ Text string }

type StartOver struct{}

type ShowNationwide struct{}

type RequestForm struct{}

type TryDifferentLocation struct{}

type DifferentService struct{}

type ShowMore struct{}

func (SelectService) Kind() string        { return "select_service" }
func (SubmitLocation) Kind() string       { return "submit_location" }
func (FreeText) Kind() string             { return "free_text" }
func (StartOver) Kind() string            { return "start_over" }
func (ShowNationwide) Kind() string       { return "show_nationwide" }
func (RequestForm) Kind() string          { return "request_form" }
func (TryDifferentLocation) Kind() string { return "try_different_location" }
func (DifferentService) Kind() string     { return "different_service" }
func (ShowMore) Kind() string             { return "show_more" }

func (a SelectService) Label() string {
	if o, ok := ServiceOptionByTag(a.Tag); ok {
		return o.Label
	}
	return string(a.Tag)
}
func (a SubmitLocation) Label() string     { return strings.TrimSpace(a.Text) }
func (a FreeText) Label() string           { return strings.TrimSpace(a.Text) }
func (StartOver) Label() string            { return ReplyStartOver }
func (ShowNationwide) Label() string       { return ReplyShowNationwide }
func (RequestForm) Label() string          { return ReplySubmitHelpRequest }
func (TryDifferentLocation) Label() string { return ReplyTryDifferentLocation }
func (DifferentService) Label() string     { return ReplyDifferentService }
func (ShowMore) Label() string             { return ReplyShowMore }

func (SelectService) isChatAction()        {}
func (SubmitLocation) isChatAction()       {}
func (FreeText) isChatAction()             {}
func (StartOver) isChatAction()            {}
func (ShowNationwide) isChatAction()       {}
func (RequestForm) isChatAction()          {}
func (TryDifferentLocation) isChatAction() {}
func (DifferentService) isChatAction()     {}
func (ShowMore) isChatAction()             {}

// IsBlank reports whether a text-carrying action has nothing to say.
// Blank actions must not reach the engine.
func IsBlank(a ChatAction) bool {
	switch v := a.(type) {
	case FreeText:
		return strings.TrimSpace(v.Text) == ""
	case SubmitLocation:
		return strings.TrimSpace(v.Text) == ""
	case SelectService:
		return v.Tag == ""
	case nil:
		return true
	}
	return false
}

var quickReplies = map[string]ChatAction{
	strings.ToLower(ReplyShowMore):             ShowMore{},
	strings.ToLower(ReplyStartOver):            StartOver{},
	strings.ToLower(ReplySubmitHelpRequest):    RequestForm{},
	strings.ToLower(ReplyShowNationwide):       ShowNationwide{},
	strings.ToLower(ReplyTryDifferentLocation): TryDifferentLocation{},
	strings.ToLower(ReplyDifferentService):     DifferentService{},
}

// ParseQuickReply maps a clicked quick-reply label to its action.
// ok is false for labels the assistant never offers.
func ParseQuickReply(label string) (ChatAction, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if a, ok := quickReplies[key]; ok {
		return a, true
	}
	if o, ok := ServiceOptionByLabel(label); ok {
		return SelectService{Tag: o.Tag}, true
	}
	return nil, false
}
