package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
)

type searchResult struct {
	Index string  `json:"index"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON  bool
		refresh bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the spell catalog",
		Long: `Search spell names. An empty query lists every spell. A single character
lists the spells starting with it (case-sensitive). Longer queries are
fuzzy-matched and tolerate small typos.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.InvalidArgumentf("--limit must not be negative, got %d", limit)
			}

			service, cleanup, err := opts.service(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := service.SearchSpells(cmd.Context(), &catalog.SearchSpellsInput{
				Query:   strings.Join(args, " "),
				Refresh: refresh,
			})
			if err != nil {
				return err
			}

			matches := out.Matches
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			w := cmd.OutOrStdout()
			if asJSON {
				results := make([]searchResult, len(matches))
				for i, m := range matches {
					results[i] = searchResult{Index: m.Spell.Index, Name: m.Spell.Name, Score: m.Score}
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(matches) == 0 {
				_, err := fmt.Fprintln(w, "No Spells Found")
				return err
			}
			for _, m := range matches {
				if _, err := fmt.Fprintf(w, "%-28s %s\n", m.Spell.Name, m.Spell.Index); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Refetch the catalog instead of using the cache")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (0 for all)")

	return cmd
}
