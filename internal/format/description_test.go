package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/spellbook/internal/format"
)

func TestIsHeader(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected bool
	}{
		{name: "short label", fragment: "Cure", expected: true},
		{name: "label with period", fragment: "Blinded Condition.", expected: true},
		{name: "24 characters", fragment: "abcdefghijklmnopqrstuvwx", expected: true},
		{name: "25 characters", fragment: "abcdefghijklmnopqrstuvwxy", expected: false},
		{name: "buildings exception", fragment: "- buildings", expected: false},
		{name: "prose", fragment: "You touch a creature and end one disease.", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, format.IsHeader(tc.fragment))
		})
	}
}

func TestDescription(t *testing.T) {
	testCases := []struct {
		name        string
		desc        []string
		higherLevel []string
		expected    []format.Block
	}{
		{
			name:     "header merges with following prose",
			desc:     []string{"Cure", "You touch a creature and end one disease."},
			expected: []format.Block{{Header: "Cure.", Text: "You touch a creature and end one disease."}},
		},
		{
			name:     "existing period kept",
			desc:     []string{"Cure.", "You touch a creature and end one disease."},
			expected: []format.Block{{Header: "Cure.", Text: "You touch a creature and end one disease."}},
		},
		{
			name:     "buildings stays plain",
			desc:     []string{"- buildings"},
			expected: []format.Block{{Text: "- buildings"}},
		},
		{
			name: "prose only",
			desc: []string{"First paragraph of plain prose.", "Second paragraph of plain prose."},
			expected: []format.Block{
				{Text: "First paragraph of plain prose."},
				{Text: "Second paragraph of plain prose."},
			},
		},
		{
			name:     "trailing header dropped",
			desc:     []string{"First paragraph of plain prose.", "Dangling"},
			expected: []format.Block{{Text: "First paragraph of plain prose."}},
		},
		{
			name:        "higher levels appended",
			desc:        []string{"First paragraph of plain prose."},
			higherLevel: []string{"Damage increases by 1d6.", "Range doubles."},
			expected: []format.Block{
				{Text: "First paragraph of plain prose."},
				{Header: format.HigherLevelsHeader, Text: "Damage increases by 1d6. Range doubles."},
			},
		},
		{
			name:     "empty",
			expected: []format.Block{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, format.Description(tc.desc, tc.higherLevel))
		})
	}
}
