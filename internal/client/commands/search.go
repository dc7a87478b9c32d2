package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"chuck/internal/client"
	"chuck/internal/joke"

	"github.com/spf13/cobra"
)

// DefaultSearchLimit caps the rendered search hits unless --limit overrides
// it.
const DefaultSearchLimit = 10

// NewSearchCmd creates the free-text search command.
//
// The query is validated before any network activity: a missing or
// whitespace-only query is a handled failure and performs no request. The
// query itself is transmitted exactly as given; trimming is for validation
// only. Result lists are truncated client-side in the API client, so JSON
// and text output render the same payload.
//
// Example usage:
//
//	chuck search "roundhouse kick"
//	chuck search kick --limit 3
//	chuck search kick --json
func NewSearchCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search jokes by free text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool(flagJSON)
			verbose, _ := cmd.Flags().GetBool(flagVerbose)
			limit, _ := cmd.Flags().GetInt(flagLimit)

			var query string
			if len(args) == 1 {
				query = args[0]
			}
			if strings.TrimSpace(query) == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: search query cannot be empty")
				return errHandled
			}

			c, timeout, err := newClientFromFlags(cmd, logger)
			if err != nil {
				return fail(cmd, "failed to search jokes", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			payload, err := c.Search(ctx, query, limit)
			if err != nil {
				return fail(cmd, "failed to search jokes", err)
			}

			if asJSON {
				return client.WriteJSON(cmd.OutOrStdout(), payload)
			}
			printSearchResults(cmd.OutOrStdout(), joke.SearchResultFromMap(payload), verbose)
			return nil
		},
	}

	cmd.Flags().IntP(flagLimit, "n", DefaultSearchLimit, "Maximum number of jokes to display")

	return cmd
}

// printSearchResults renders numbered hits, or a friendly line when the
// payload carried no usable result list.
func printSearchResults(w io.Writer, res joke.SearchResult, verbose bool) {
	if len(res.Result) == 0 {
		fmt.Fprintln(w, "No jokes found.")
		return
	}

	for i, j := range res.Result {
		fmt.Fprintf(w, "%d. %s\n", i+1, j.Value)
		if verbose {
			fmt.Fprintf(w, "   id: %s\n", j.ID)
			if len(j.Categories) > 0 {
				fmt.Fprintf(w, "   categories: %s\n", strings.Join(j.Categories, ", "))
			}
		}
	}
}
