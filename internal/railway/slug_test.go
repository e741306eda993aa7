package railway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Lowercases",
			input:    "Central",
			expected: "central",
		},
		{
			name:     "SpacesBecomeHyphens",
			input:    "Central North",
			expected: "central-north",
		},
		{
			name:     "PunctuationIsStripped",
			input:    "St. Mary's Cross",
			expected: "st-marys-cross",
		},
		{
			name:     "RepeatedSeparatorsCollapse",
			input:    "Old  Town -- West",
			expected: "old-town-west",
		},
		{
			name:     "LeadingAndTrailingSeparatorsTrimmed",
			input:    " Harbor ",
			expected: "harbor",
		},
		{
			name:     "SlashesSeparate",
			input:    "Airport/Terminal 2",
			expected: "airport-terminal-2",
		},
		{
			name:     "DigitsSurvive",
			input:    "Platform 9",
			expected: "platform-9",
		},
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
		{
			name:     "OnlyPunctuation",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slug(tc.input))
		})
	}
}

func TestSlugIsDeterministic(t *testing.T) {
	assert.Equal(t, Slug("Central North"), Slug("Central North"))
}
