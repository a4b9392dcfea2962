package matcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/community-support-hub/server/internal/hub/catalog"
	"github.com/community-support-hub/server/internal/hub/location"
	"github.com/community-support-hub/server/internal/hub/model"
)

func names(rs []model.Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestMatch_Defaults(t *testing.T) {
	records := catalog.DefaultResources

	tests := []struct {
		name        string
		query       string
		categories  []model.ServiceTag
		wantOutcome Outcome
		wantNames   []string
	}{
		{
			name:        "direct city match",
			query:       "Chicago",
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"Chicago CRED"},
		},
		{
			name:        "query contains place name",
			query:       "somewhere around brooklyn heights",
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"Trauma Recovery Center"},
		},
		{
			name:        "uppercase state code",
			query:       "Queens, NY",
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"SNUG Street Outreach", "Trauma Recovery Center", "Safe Haven Housing"},
		},
		{
			name:        "bare lowercase state code",
			query:       "ny",
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"SNUG Street Outreach", "Trauma Recovery Center", "Safe Haven Housing"},
		},
		{
			name:        "uppercase code inside sentence",
			query:       "somewhere in NY please",
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"SNUG Street Outreach", "Trauma Recovery Center", "Safe Haven Housing"},
		},
		{
			name:        "narrowed to housing",
			query:       "Queens, NY",
			categories:  model.CategoriesFor(model.TagHousing),
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"Safe Haven Housing"},
		},
		{
			name:        "narrowing that would empty is skipped",
			query:       "Chicago",
			categories:  model.CategoriesFor(model.TagHousing),
			wantOutcome: OutcomeLocal,
			wantNames:   []string{"Chicago CRED"},
		},
		{
			name:        "nationwide housing fallback",
			query:       "Atlantis",
			categories:  model.CategoriesFor(model.TagHousing),
			wantOutcome: OutcomeNationwide,
			wantNames: []string{
				"National Domestic Violence Hotline",
				"HUD Housing Counseling",
				"National Alliance to End Homelessness",
				"Salvation Army Emergency Services",
				"National Runaway Safeline",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(records, tt.query, tt.categories)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, tt.wantNames, names(got.Resources))
		})
	}
}

func TestMatch_LowercaseCodeInSentenceIgnored(t *testing.T) {
	got := Match(catalog.DefaultResources, "near me in ny", nil)
	assert.Equal(t, OutcomeNationwide, got.Outcome)
	for _, r := range got.Resources {
		assert.True(t, r.IsNationwide(), "%q is not nationwide", r.Name)
	}
}

func TestMatch_ZipThroughResolver(t *testing.T) {
	q := location.Resolve("11385")
	got := Match(catalog.DefaultResources, q.Normalized, model.CategoriesFor(model.TagHousing))
	assert.Equal(t, []string{"Safe Haven Housing"}, names(got.Resources))
	assert.True(t, got.Narrowed)
}

func TestMatch_EmptyQueryFallsBackToNationwide(t *testing.T) {
	got := Match(catalog.DefaultResources, "   ", nil)
	assert.Equal(t, OutcomeNationwide, got.Outcome)
	assert.Len(t, got.Resources, MaxResults)
	assert.Equal(t, "National Alliance on Mental Illness (NAMI)", got.Resources[0].Name)
}

func TestMatch_EmptyLocationNeverMatchesDirectly(t *testing.T) {
	records := []model.Resource{
		{Name: "No location"},
		{Name: "Somewhere", Location: "Denver, CO"},
	}
	got := Match(records, "Denver", nil)
	assert.Equal(t, []string{"Somewhere"}, names(got.Resources))
}

func TestMatch_NothingAtAll(t *testing.T) {
	records := []model.Resource{{Name: "Local", Location: "Denver, CO"}}
	got := Match(records, "Atlantis", nil)
	assert.Equal(t, OutcomeNone, got.Outcome)
	assert.Empty(t, got.Resources)
}

func TestMatch_TruncatesInCatalogOrder(t *testing.T) {
	var records []model.Resource
	for i := 0; i < 12; i++ {
		records = append(records, model.Resource{
			ID:       model.NumericID(i),
			Name:     fmt.Sprintf("Org %d", i),
			Location: "Denver, CO",
		})
	}
	got := Match(records, "denver", nil)
	require.Len(t, got.Resources, MaxResults)
	for i, r := range got.Resources {
		assert.Equal(t, fmt.Sprintf("Org %d", i), r.Name)
	}
}

func TestMatch_NarrowingNeverEmptiesNonEmptySet(t *testing.T) {
	for _, opt := range model.ServiceOptions {
		for _, query := range []string{"Chicago", "Brooklyn", "NY", "Atlantis", ""} {
			got := Match(catalog.DefaultResources, query, model.CategoriesFor(opt.Tag))
			assert.NotEmpty(t, got.Resources, "tag=%s query=%q", opt.Tag, query)
			assert.LessOrEqual(t, len(got.Resources), MaxResults)
		}
	}
}

func TestNationwide(t *testing.T) {
	got := Nationwide(catalog.DefaultResources, model.CategoriesFor(model.TagLegal))
	assert.Equal(t, OutcomeNationwide, got.Outcome)
	require.NotEmpty(t, got.Resources)
	for _, r := range got.Resources {
		assert.True(t, r.IsNationwide())
		assert.True(t, r.HasAnyType(model.TagLegal, model.TagVictims))
	}

	none := Nationwide([]model.Resource{{Name: "x", Location: "Queens, NY"}}, nil)
	assert.Equal(t, OutcomeNone, none.Outcome)
}

func TestStateTokens(t *testing.T) {
	assert.Equal(t, []string{"NY"}, stateTokens("Queens, NY"))
	assert.Equal(t, []string{"IL"}, stateTokens(" il "))
	assert.Empty(t, stateTokens("go to the ZZ store"))
	assert.Empty(t, stateTokens("meet me in or near oakland"))
	assert.Equal(t, []string{"NY", "NJ"}, stateTokens("NY or NJ, NY"))
}
