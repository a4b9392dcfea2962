package intake

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	errx "github.com/community-support-hub/server/internal/core/error"
	"github.com/community-support-hub/server/internal/hub/model"
)

var requiredFields = []string{"supportType", "location"}

var requestSchema = mustSchema(map[string]any{
	"type":     "object",
	"required": requiredFields,
	"properties": map[string]any{
		"supportType": map[string]any{"type": "string", "minLength": 1, "enum": model.SupportTypes},
		"location":    map[string]any{"type": "string", "minLength": 1, "maxLength": 200},
		"situation":   map[string]any{"type": "string", "maxLength": 5000},
		"urgency":     map[string]any{"type": "string", "enum": model.Urgencies},
		"contact":     map[string]any{"type": "string", "maxLength": 200},
	},
})

func mustSchema(doc map[string]any) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("help request schema: %v", err))
	}
	return s
}

// Validate checks a normalized request. Missing required fields win over any
// other problem and come back as errx.RequiredFields; values outside their
// allowed set come back as errx.InvalidInput.
func Validate(req model.HelpRequest) error {
	result, err := requestSchema.Validate(gojsonschema.NewGoLoader(req))
	if err != nil {
		return errx.InvalidInput(fmt.Errorf("validate help request: %w", err))
	}
	if result.Valid() {
		return nil
	}

	var missing, invalid []string
	var details []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if p, ok := desc.Details()["property"].(string); ok {
				field = p
			}
		}
		switch desc.Type() {
		case "required", "string_gte":
			missing = appendUnique(missing, field)
		default:
			invalid = appendUnique(invalid, field)
			details = append(details, desc.String())
		}
	}

	if len(missing) > 0 {
		return errx.RequiredFields(missing...)
	}
	return errx.InvalidInput(fmt.Errorf("help request validation failed: %s", strings.Join(details, "; ")), invalid...)
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
