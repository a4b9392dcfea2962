package matcher

import (
	"regexp"
	"strings"
)

// stateNames maps USPS state codes to lowercase full names.
var stateNames = map[string]string{
	"AL": "alabama", "AK": "alaska", "AZ": "arizona", "AR": "arkansas",
	"CA": "california", "CO": "colorado", "CT": "connecticut", "DE": "delaware",
	"FL": "florida", "GA": "georgia", "HI": "hawaii", "ID": "idaho",
	"IL": "illinois", "IN": "indiana", "IA": "iowa", "KS": "kansas",
	"KY": "kentucky", "LA": "louisiana", "ME": "maine", "MD": "maryland",
	"MA": "massachusetts", "MI": "michigan", "MN": "minnesota", "MS": "mississippi",
	"MO": "missouri", "MT": "montana", "NE": "nebraska", "NV": "nevada",
	"NH": "new hampshire", "NJ": "new jersey", "NM": "new mexico", "NY": "new york",
	"NC": "north carolina", "ND": "north dakota", "OH": "ohio", "OK": "oklahoma",
	"OR": "oregon", "PA": "pennsylvania", "RI": "rhode island", "SC": "south carolina",
	"SD": "south dakota", "TN": "tennessee", "TX": "texas", "UT": "utah",
	"VT": "vermont", "VA": "virginia", "WA": "washington", "WV": "west virginia",
	"WI": "wisconsin", "WY": "wyoming", "DC": "district of columbia",
}

var upperPair = regexp.MustCompile(`\b[A-Z]{2}\b`)

// stateTokens extracts state codes from a query. Uppercase pairs anywhere in
// the query count ("Queens, NY"); a lowercase pair counts only when it is the
// whole query ("ny"), so words like "in", "me" or "or" inside sentences do not
// turn into states.
func stateTokens(query string) []string {
	var tokens []string
	seen := map[string]bool{}
	add := func(code string) {
		if _, known := stateNames[code]; known && !seen[code] {
			seen[code] = true
			tokens = append(tokens, code)
		}
	}

	for _, m := range upperPair.FindAllString(query, -1) {
		add(m)
	}
	if trimmed := strings.TrimSpace(query); len(trimmed) == 2 {
		add(strings.ToUpper(trimmed))
	}
	return tokens
}

// locationHasState reports whether a location names the state either by code
// as a separate word or by its full name.
func locationHasState(location, code string) bool {
	for _, word := range strings.FieldsFunc(location, notLetter) {
		if strings.EqualFold(word, code) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(location), stateNames[code])
}

func notLetter(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
}
