package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/format"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Show the formatted detail for one spell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := opts.service(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := service.GetSpell(cmd.Context(), &catalog.GetSpellInput{
				Index:   args[0],
				Refresh: refresh,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Spell)
			}

			sheet := format.Format(out.Spell)
			for _, d := range sheet.Diagnostics {
				slog.Warn("Spell detail diagnostic", "index", sheet.Index, "diagnostic", d.String())
			}
			return printSheet(w, sheet)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw spell record as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Refetch the spell instead of using the cache")

	return cmd
}

func printSheet(w io.Writer, sheet *format.Sheet) error {
	var b strings.Builder

	b.WriteString(sheet.Name)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(sheet.Name)))
	b.WriteString("\n")

	for _, f := range sheet.Fields {
		fmt.Fprintf(&b, "%-13s %s\n", f.Label+":", f.Value)
	}
	if len(sheet.Classes) > 0 {
		fmt.Fprintf(&b, "%-13s %s\n", "Classes:", strings.Join(sheet.Classes, ", "))
	}
	if sheet.Ritual {
		fmt.Fprintf(&b, "%-13s %s\n", "Ritual:", "Yes")
	}

	for _, block := range sheet.Blocks {
		b.WriteString("\n")
		if block.Header != "" {
			b.WriteString(block.Header)
			b.WriteString(" ")
		}
		b.WriteString(block.Text)
		b.WriteString("\n")
	}

	if sheet.Footnote != "" {
		b.WriteString("\n")
		b.WriteString(sheet.Footnote)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
