// Package matcher selects catalog resources for a location query.
package matcher

import (
	"strings"

	"github.com/community-support-hub/server/internal/hub/model"
)

// MaxResults bounds every match result.
const MaxResults = 5

// Outcome names the rule that produced a result set.
type Outcome string

const (
	OutcomeLocal      Outcome = "local"
	OutcomeNationwide Outcome = "nationwide"
	OutcomeNone       Outcome = "none"
)

// Result is an ordered, bounded match.
type Result struct {
	Resources []model.Resource
	Outcome   Outcome
	// Narrowed is true when the service categories were applied.
	Narrowed bool
}

// Match runs the layered strategy: direct location match and state codes,
// else the nationwide fallback, then best-effort narrowing by categories,
// then truncation to MaxResults in catalog order.
func Match(records []model.Resource, query string, categories []model.ServiceTag) Result {
	found := matchLocal(records, query)
	outcome := OutcomeLocal
	if len(found) == 0 {
		found = nationwide(records)
		outcome = OutcomeNationwide
	}
	if len(found) == 0 {
		return Result{Outcome: OutcomeNone}
	}

	found, narrowed := narrow(found, categories)
	return Result{Resources: truncate(found), Outcome: outcome, Narrowed: narrowed}
}

// Nationwide returns up to MaxResults nationwide or multi-state resources,
// narrowed by categories when that leaves something.
func Nationwide(records []model.Resource, categories []model.ServiceTag) Result {
	found := nationwide(records)
	if len(found) == 0 {
		return Result{Outcome: OutcomeNone}
	}
	found, narrowed := narrow(found, categories)
	return Result{Resources: truncate(found), Outcome: OutcomeNationwide, Narrowed: narrowed}
}

func matchLocal(records []model.Resource, query string) []model.Resource {
	q := strings.ToLower(strings.TrimSpace(query))
	codes := stateTokens(query)

	var out []model.Resource
	for _, r := range records {
		if q != "" && directMatch(r.Location, q) {
			out = append(out, r)
			continue
		}
		for _, code := range codes {
			if locationHasState(r.Location, code) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// directMatch: the location contains the query, or the query contains the
// location's place name (the part before the first comma).
func directMatch(location, q string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	if strings.Contains(loc, q) {
		return true
	}
	head := strings.TrimSpace(strings.SplitN(loc, ",", 2)[0])
	return head != "" && strings.Contains(q, head)
}

func nationwide(records []model.Resource) []model.Resource {
	var out []model.Resource
	for _, r := range records {
		if r.IsNationwide() {
			out = append(out, r)
		}
	}
	return out
}

// narrow keeps records typed with any of categories. It never empties a
// non-empty set: when nothing qualifies the input is returned unchanged.
func narrow(records []model.Resource, categories []model.ServiceTag) ([]model.Resource, bool) {
	if len(categories) == 0 {
		return records, false
	}
	var kept []model.Resource
	for _, r := range records {
		if r.HasAnyType(categories...) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return records, false
	}
	return kept, true
}

func truncate(records []model.Resource) []model.Resource {
	if len(records) > MaxResults {
		return records[:MaxResults]
	}
	return records
}
