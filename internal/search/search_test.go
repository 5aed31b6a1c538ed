package search_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	dicemock "github.com/KirkDiggler/rpg-toolkit/dice/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/search"
)

type SearchTestSuite struct {
	suite.Suite
	catalog []entities.SpellSummary
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}

func (s *SearchTestSuite) SetupTest() {
	s.catalog = []entities.SpellSummary{
		{Index: "acid-arrow", Name: "Acid Arrow"},
		{Index: "cure-wounds", Name: "Cure Wounds"},
		{Index: "fire-bolt", Name: "Fire Bolt"},
		{Index: "fireball", Name: "Fireball"},
		{Index: "fire-shield", Name: "Fire Shield"},
		{Index: "light", Name: "Light"},
		{Index: "mage-hand", Name: "Mage Hand"},
		{Index: "magic-missile", Name: "Magic Missile"},
		{Index: "wall-of-fire", Name: "Wall of Fire"},
	}
}

func names(spells []entities.SpellSummary) []string {
	out := make([]string, len(spells))
	for i, spell := range spells {
		out[i] = spell.Name
	}
	return out
}

func (s *SearchTestSuite) TestEmptyQueryReturnsCatalogInOrder() {
	for _, query := range []string{"", "   ", "\t\n"} {
		s.Equal(s.catalog, search.Search(s.catalog, query))
	}
}

func (s *SearchTestSuite) TestSingleCharacterPrefixIsCaseSensitive() {
	catalog := []entities.SpellSummary{
		{Index: "fire-bolt", Name: "Fire Bolt"},
		{Index: "fireball", Name: "Fireball"},
	}

	s.Equal([]string{"Fire Bolt", "Fireball"}, names(search.Search(catalog, "F")))
	s.Empty(search.Search(catalog, "f"))
	s.Equal([]string{"Fire Bolt", "Fireball"}, names(search.Search(catalog, " F ")))
}

func (s *SearchTestSuite) TestSingleCharacterIsCompleteAndOrdered() {
	for _, query := range []string{"M", "F", "W", "Z", "a"} {
		results := search.Search(s.catalog, query)

		expected := []entities.SpellSummary{}
		for _, spell := range s.catalog {
			if len(spell.Name) > 0 && spell.Name[:1] == query {
				expected = append(expected, spell)
			}
		}
		s.Equal(expected, results, "query %q", query)
	}
}

func (s *SearchTestSuite) TestMultiCharacterFuzzyMatches() {
	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "exact prefix ties keep catalog order",
			query:    "fire",
			expected: []string{"Fire Bolt", "Fireball", "Fire Shield", "Wall of Fire"},
		},
		{
			name:     "typo is tolerated",
			query:    "firebll",
			expected: []string{"Fireball"},
		},
		{
			name:     "case insensitive",
			query:    "MAGIC MISSILE",
			expected: []string{"Magic Missile"},
		},
		{
			name:     "shared prefix keeps catalog order",
			query:    "mag",
			expected: []string{"Mage Hand", "Magic Missile"},
		},
		{
			name:     "unrelated query finds nothing",
			query:    "zzzz",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, names(search.Search(s.catalog, tc.query)))
		})
	}
}

func (s *SearchTestSuite) TestEarlierMatchRanksFirst() {
	catalog := []entities.SpellSummary{
		{Index: "wall-of-fire", Name: "Wall of Fire"},
		{Index: "fireball", Name: "Fireball"},
	}

	s.Equal([]string{"Fireball", "Wall of Fire"}, names(search.Search(catalog, "fire")))
}

func (s *SearchTestSuite) TestMultiCharacterNeverExceedsThreshold() {
	queries := []string{"fi", "fire", "firebal", "cure wonds", "mgic", "wal of fir", "arrow", "lihgt"}
	for _, query := range queries {
		for _, m := range search.Rank(s.catalog, query) {
			s.LessOrEqual(m.Score, search.Threshold, "query %q matched %q", query, m.Spell.Name)
			s.LessOrEqual(search.Score(m.Spell.Name, query), search.Threshold)
		}
	}
}

func (s *SearchTestSuite) TestRankOrdersByScore() {
	matches := search.Rank(s.catalog, "fire")
	for i := 1; i < len(matches); i++ {
		s.LessOrEqual(matches[i-1].Score, matches[i].Score)
	}
}

func (s *SearchTestSuite) TestEmptyCatalog() {
	s.Empty(search.Search(nil, ""))
	s.Empty(search.Search([]entities.SpellSummary{}, "F"))
	s.Empty(search.Search(nil, "fire"))

	name, ok := search.PickPlaceholder(nil, dice.DefaultRoller)
	s.False(ok)
	s.Equal("", name)
}

func (s *SearchTestSuite) TestScore() {
	s.Equal(0.0, search.Score("Fireball", "fireball"))
	s.Equal(0.0, search.Score("Fireball", ""))
	s.InDelta(0.05, search.Score("Wall of Fire", "of fire"), 1e-9)
	s.InDelta(1.0/7.0, search.Score("Fireball", "firebll"), 1e-9)
	s.Equal(1.0, search.Score("Light", "xyzzy"))
}

func (s *SearchTestSuite) TestPickPlaceholderAlwaysFromCatalog() {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		name, ok := search.PickPlaceholder(s.catalog, dice.DefaultRoller)
		s.Require().True(ok)
		s.Contains(names(s.catalog), name)
		seen[name] = true
	}
	s.Len(seen, len(s.catalog), "every entry should come up over 500 rolls")

	ctrl := gomock.NewController(s.T())
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Roll(len(s.catalog)).Return(4, nil)

	name, ok := search.PickPlaceholder(s.catalog, roller)
	s.True(ok)
	s.Equal("Fireball", name)
}

func (s *SearchTestSuite) TestPickPlaceholderRollerErrors() {
	ctrl := gomock.NewController(s.T())
	roller := dicemock.NewMockRoller(ctrl)
	gomock.InOrder(
		roller.EXPECT().Roll(len(s.catalog)).Return(0, errors.New("dice: crypto/rand error")),
		roller.EXPECT().Roll(len(s.catalog)).Return(len(s.catalog)+1, nil),
	)

	_, ok := search.PickPlaceholder(s.catalog, roller)
	s.False(ok)

	_, ok = search.PickPlaceholder(s.catalog, roller)
	s.False(ok, "rolls outside 1..n are rejected")
}
