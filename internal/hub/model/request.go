package model

import (
	"strings"
	"time"
)

// SupportTypes enumerates the request form's support type choices.
var SupportTypes = []string{"trauma", "housing", "legal", "financial", "safety", "peer", "medical", "other"}

const (
	UrgencyImmediate = "immediate"
	UrgencySoon      = "soon"
	UrgencyPlanning  = "planning"
)

var Urgencies = []string{UrgencyImmediate, UrgencySoon, UrgencyPlanning}

// HelpRequest is the anonymous support request form.
type HelpRequest struct {
	SupportType string `json:"supportType"`
	Location    string `json:"location"`
	Situation   string `json:"situation"`
	Urgency     string `json:"urgency"`
	Contact     string `json:"contact"`
}

// Normalized trims every field and applies the default urgency.
func (r HelpRequest) Normalized() HelpRequest {
	out := HelpRequest{
		SupportType: strings.TrimSpace(r.SupportType),
		Location:    strings.TrimSpace(r.Location),
		Situation:   strings.TrimSpace(r.Situation),
		Urgency:     strings.ToLower(strings.TrimSpace(r.Urgency)),
		Contact:     strings.TrimSpace(r.Contact),
	}
	if out.Urgency == "" {
		out.Urgency = UrgencySoon
	}
	return out
}

// Receipt acknowledges a delivered request.
type Receipt struct {
	ID          string    `json:"id"`
	Submitted   bool      `json:"submitted"`
	SubmittedAt time.Time `json:"submittedAt"`
}
