// Package directory implements the browsable resource listing.
package directory

import (
	"strings"

	"github.com/community-support-hub/server/internal/hub/model"
)

// Filter returns the records visible under a category and search text.
// An empty or "all" category does not restrict; a blank search does not
// restrict. Both conditions must hold. Catalog order is kept.
func Filter(records []model.Resource, category string, search string) []model.Resource {
	category = strings.TrimSpace(category)
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Resource, 0, len(records))
	for _, r := range records {
		if category != "" && category != model.CategoryAll && !r.HasAnyType(model.ServiceTag(category)) {
			continue
		}
		if query != "" && !matchesText(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesText(r model.Resource, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Description), query) ||
		strings.Contains(strings.ToLower(r.Location), query) {
		return true
	}
	for _, t := range r.Type {
		if strings.Contains(string(t), query) {
			return true
		}
	}
	return false
}
