package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw      string
		wantNorm string
		wantZip  string
	}{
		{"I live in 11217", "Brooklyn, NY", "11217"},
		{"11385", "Queens, NY", "11385"},
		{"  60614  ", "Chicago, IL", "60614"},
		{"zip 99999", "zip 99999", ""},
		{"  Brooklyn  ", "Brooklyn", ""},
		{"call 123456 now", "call 123456 now", ""},
		{"10001 or 60614", "New York, NY", "10001"},
		{"", "", ""},
	}

	for _, tt := range tests {
		got := Resolve(tt.raw)
		assert.Equal(t, tt.wantNorm, got.Normalized, "Resolve(%q).Normalized", tt.raw)
		assert.Equal(t, tt.wantZip, got.RecognizedZip, "Resolve(%q).RecognizedZip", tt.raw)
		assert.Equal(t, tt.wantZip != "", got.Recognized())
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Query{Normalized: "Brooklyn, NY", RecognizedZip: "11217"}, Resolve("I live in 11217"))
	}
}

func TestResolveUsesFirstThreeDigits(t *testing.T) {
	for _, zip := range []string{"11201", "11217", "11299"} {
		assert.Equal(t, "Brooklyn, NY", Resolve(zip).Normalized, zip)
	}
	for raw, place := range zipPrefixes {
		got := Resolve(raw + "01")
		assert.Equal(t, place, got.Normalized, raw)
		assert.Equal(t, raw+"01", got.RecognizedZip)
	}
	assert.False(t, Resolve("99901").Recognized())
}
