package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/guicastle/typeahead/internal/config"
)

// newSearchCmd creates the one-shot search command. It exercises the provider
// directly, without the interactive pipeline.
func newSearchCmd() *cobra.Command {
	var limit int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single query against the dataset and print matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			prov, err := buildProvider(cfg, 0)
			if err != nil {
				return err
			}
			defer func() { _ = prov.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			items, err := prov.Search(ctx, args[0])
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			shown := len(items)
			if limit > 0 && shown > limit {
				shown = limit
			}
			for _, item := range items[:shown] {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d match(es)\n", len(items))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum matches to print (0 = all)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Lookup timeout")

	return cmd
}
