package conversation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultMaxInputLength = 2000

// SanitizeText prepares visitor free text for the engine: invalid UTF-8 is
// dropped, control characters other than whitespace are removed, runs of
// whitespace collapse to one space and the result is capped at maxRunes.
func SanitizeText(s string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = DefaultMaxInputLength
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var b strings.Builder
	b.Grow(len(s))
	count := 0
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if pendingSpace {
			if count+1 >= maxRunes {
				break
			}
			b.WriteByte(' ')
			count++
			pendingSpace = false
		}
		if count >= maxRunes {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
