// Package location turns visitor-typed places into location queries.
package location

import (
	"regexp"
	"strings"
)

var zipPattern = regexp.MustCompile(`\b\d{5}\b`)

// zipPrefixes maps the first three ZIP digits of major metro areas to a
// "City, ST" place. It is not a ZIP database; unmapped prefixes fall through
// to the raw input.
var zipPrefixes = map[string]string{
	// New York City
	"100": "New York, NY",
	"101": "New York, NY",
	"102": "New York, NY",
	"103": "Staten Island, NY",
	"104": "Bronx, NY",
	"110": "Queens, NY",
	"111": "Queens, NY",
	"112": "Brooklyn, NY",
	"113": "Queens, NY",
	"114": "Queens, NY",
	"116": "Queens, NY",
	// Northeast
	"021": "Boston, MA",
	"191": "Philadelphia, PA",
	"152": "Pittsburgh, PA",
	"212": "Baltimore, MD",
	"200": "Washington, DC",
	"071": "Newark, NJ",
	// Midwest
	"606": "Chicago, IL",
	"607": "Chicago, IL",
	"608": "Chicago, IL",
	"482": "Detroit, MI",
	"441": "Cleveland, OH",
	"462": "Indianapolis, IN",
	"532": "Milwaukee, WI",
	"631": "St. Louis, MO",
	"554": "Minneapolis, MN",
	// South
	"303": "Atlanta, GA",
	"331": "Miami, FL",
	"700": "New Orleans, LA",
	"372": "Nashville, TN",
	"381": "Memphis, TN",
	"752": "Dallas, TX",
	"770": "Houston, TX",
	// West
	"900": "Los Angeles, CA",
	"901": "Los Angeles, CA",
	"941": "San Francisco, CA",
	"946": "Oakland, CA",
	"981": "Seattle, WA",
	"802": "Denver, CO",
	"850": "Phoenix, AZ",
	"891": "Las Vegas, NV",
}

// Query is a resolved location.
type Query struct {
	// Normalized is the string handed to the matcher.
	Normalized string
	// RecognizedZip is the 5-digit code that produced Normalized, if any.
	RecognizedZip string
}

// Recognized reports whether a ZIP code was mapped to a place.
func (q Query) Recognized() bool {
	return q.RecognizedZip != ""
}

// Resolve maps raw input to a location query. Only the first 5-digit
// sequence is considered. Pure; safe for concurrent use.
func Resolve(raw string) Query {
	trimmed := strings.TrimSpace(raw)

	zip := zipPattern.FindString(trimmed)
	if zip == "" {
		return Query{Normalized: trimmed}
	}

	place, ok := zipPrefixes[zip[:3]]
	if !ok {
		return Query{Normalized: trimmed}
	}
	return Query{Normalized: place, RecognizedZip: zip}
}
