package commands

import (
	"context"
	"fmt"
	"log/slog"

	"chuck/internal/client"

	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the command listing the available joke
// categories, one per line in text mode. The category list carries no
// further structure, so no shape validation happens beyond JSON decoding
// and an empty list renders as no output at all.
func NewCategoriesCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available joke categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool(flagJSON)

			c, timeout, err := newClientFromFlags(cmd, logger)
			if err != nil {
				return fail(cmd, "failed to fetch categories", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			categories, err := c.FetchCategories(ctx)
			if err != nil {
				return fail(cmd, "failed to fetch categories", err)
			}

			if asJSON {
				return client.WriteJSON(cmd.OutOrStdout(), categories)
			}
			for _, category := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
			return nil
		},
	}
}
