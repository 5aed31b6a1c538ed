// Package search filters the spell catalog for a user-entered query
package search

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/spellbook/internal/entities"
)

// Match is a catalog entry together with its fuzzy score
type Match struct {
	Spell entities.SpellSummary `json:"spell"`
	Score float64               `json:"score"`
}

// Search returns the catalog entries matching query.
//
// The query is trimmed first. An empty query returns the whole catalog in
// order. A single character returns every entry whose name starts with that
// character, case-sensitively and in catalog order. Anything longer is
// fuzzy-matched against names and ordered best match first, with ties kept in
// catalog order.
func Search(catalog []entities.SpellSummary, query string) []entities.SpellSummary {
	matches := Rank(catalog, query)
	results := make([]entities.SpellSummary, len(matches))
	for i, m := range matches {
		results[i] = m.Spell
	}
	return results
}

// Rank is Search with the scores kept. Prefix and empty-query matches score 0.
func Rank(catalog []entities.SpellSummary, query string) []Match {
	if len(catalog) == 0 {
		return []Match{}
	}

	term := strings.TrimSpace(query)
	switch utf8.RuneCountInString(term) {
	case 0:
		matches := make([]Match, len(catalog))
		for i, spell := range catalog {
			matches[i] = Match{Spell: spell}
		}
		return matches
	case 1:
		// a single letter reads better as an alphabetical prefix list than fuzzy results
		matches := []Match{}
		for _, spell := range catalog {
			if strings.HasPrefix(spell.Name, term) {
				matches = append(matches, Match{Spell: spell})
			}
		}
		return matches
	default:
		return fuzzy(catalog, term)
	}
}

func fuzzy(catalog []entities.SpellSummary, term string) []Match {
	pattern := []rune(strings.ToLower(term))
	maxEdits := int(Threshold * float64(len(pattern)))

	matches := []Match{}
	for _, spell := range catalog {
		score, ok := bestWindow([]rune(strings.ToLower(spell.Name)), pattern, maxEdits, Threshold)
		if !ok {
			continue
		}
		matches = append(matches, Match{Spell: spell, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}

// PickPlaceholder returns a uniformly random name from the catalog by rolling
// a die with one face per entry. It returns false when the catalog is empty
// or the roller fails.
func PickPlaceholder(catalog []entities.SpellSummary, roller dice.Roller) (string, bool) {
	if len(catalog) == 0 {
		return "", false
	}
	if roller == nil {
		roller = dice.DefaultRoller
	}

	roll, err := roller.Roll(len(catalog))
	if err != nil {
		slog.Warn("Failed to roll search placeholder", "faces", len(catalog), "error", err)
		return "", false
	}
	if roll < 1 || roll > len(catalog) {
		slog.Warn("Placeholder roll out of range", "roll", roll, "faces", len(catalog))
		return "", false
	}
	return catalog[roll-1].Name, true
}

// Session is the search state for one list screen. It is a value: WithQuery
// returns a new Session and leaves the receiver untouched.
type Session struct {
	Query       string
	Results     []entities.SpellSummary
	Placeholder string

	catalog []entities.SpellSummary
	roller  dice.Roller
}

// NewSession starts a search over catalog with an empty query and picks the
// initial placeholder. A nil roller uses dice.DefaultRoller.
func NewSession(catalog []entities.SpellSummary, roller dice.Roller) Session {
	return NewSessionWithQuery(catalog, "", roller)
}

// NewSessionWithQuery is NewSession for a query typed before the catalog
// arrived. The placeholder is still picked exactly once.
func NewSessionWithQuery(catalog []entities.SpellSummary, query string, roller dice.Roller) Session {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	catalog = slices.Clone(catalog)
	placeholder, _ := PickPlaceholder(catalog, roller)

	return Session{
		Query:       query,
		Results:     Search(catalog, query),
		Placeholder: placeholder,
		catalog:     catalog,
		roller:      roller,
	}
}

// WithQuery returns the session for a new query. The placeholder is only
// re-picked when the query goes from empty to exactly one character, so it
// does not flicker on every keystroke.
func (s Session) WithQuery(query string) Session {
	next := s
	next.Query = query
	next.Results = Search(s.catalog, query)

	if s.Query == "" && utf8.RuneCountInString(query) == 1 {
		if placeholder, ok := PickPlaceholder(s.catalog, s.roller); ok {
			next.Placeholder = placeholder
		}
	}
	return next
}

// Catalog returns the catalog the session searches
func (s Session) Catalog() []entities.SpellSummary {
	return s.catalog
}

// Empty reports whether the session has no catalog to search
func (s Session) Empty() bool {
	return len(s.catalog) == 0
}
