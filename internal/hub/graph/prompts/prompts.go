// Package prompts renders the assistant's reply texts.
package prompts

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/*.txt
var templates embed.FS

const (
	Greeting       = "greeting"
	AskLocation    = "ask_location"
	Listing        = "listing"
	NoResults      = "no_results"
	Browse         = "browse"
	FollowUp       = "follow_up"
	RequestForm    = "request_form"
	ClarifyService = "clarify_service"
)

// ListingItem is one resource line of a listing reply.
type ListingItem struct {
	Name        string
	Location    string
	Description string
	Phone       string
	Website     string
}

// ListingData feeds the listing and no_results templates.
type ListingData struct {
	Intro     string
	Query     string
	Zip       string
	Place     string
	Resources []ListingItem
}

// Render formats a named template through the eino prompt component so that
// prompt callbacks fire for every reply.
func Render(ctx context.Context, name string, vars map[string]any) (string, error) {
	raw, err := templates.ReadFile("template/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("reply template %q: %w", name, err)
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.AssistantMessage(string(raw), nil),
	)
	if vars == nil {
		vars = map[string]any{}
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("reply render %q: %w", name, err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("reply render %q: empty result", name)
	}
	return strings.TrimSpace(msgs[0].Content), nil
}

// RenderAskLocation renders the location question, naming the chosen service
// when there is one.
func RenderAskLocation(ctx context.Context, serviceLabel string) (string, error) {
	return Render(ctx, AskLocation, map[string]any{"Service": strings.ToLower(serviceLabel)})
}

// RenderListing renders a resource listing.
func RenderListing(ctx context.Context, data ListingData) (string, error) {
	return Render(ctx, Listing, listingVars(data))
}

// RenderNoResults renders the apology offered when nothing matched.
func RenderNoResults(ctx context.Context, data ListingData) (string, error) {
	return Render(ctx, NoResults, listingVars(data))
}

func listingVars(data ListingData) map[string]any {
	return map[string]any{
		"Intro":     data.Intro,
		"Query":     data.Query,
		"Zip":       data.Zip,
		"Place":     data.Place,
		"Resources": data.Resources,
	}
}
