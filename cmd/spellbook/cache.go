package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
)

func newCacheCmd(opts *rootOptions) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the spell cache",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached catalog and spell entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.noCache {
				return errors.FailedPrecondition("--no-cache leaves nothing to clear")
			}

			service, cleanup, err := opts.service(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := service.ClearCache(cmd.Context(), &catalog.ClearCacheInput{})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached entries\n", out.Deleted)
			return err
		},
	})

	return cacheCmd
}
