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

// NewRandomCmd creates the command fetching one random joke. An optional
// category restricts the draw; the API decides what "random" means beyond
// that. With --json the raw payload is reproduced exactly, otherwise the
// joke is rendered as text via the records layer.
func NewRandomCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch a random joke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString(flagCategory)
			asJSON, _ := cmd.Flags().GetBool(flagJSON)
			verbose, _ := cmd.Flags().GetBool(flagVerbose)

			c, timeout, err := newClientFromFlags(cmd, logger)
			if err != nil {
				return fail(cmd, "failed to fetch random joke", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			payload, err := c.FetchRandom(ctx, category)
			if err != nil {
				return fail(cmd, "failed to fetch random joke", err)
			}

			if asJSON {
				return client.WriteJSON(cmd.OutOrStdout(), payload)
			}
			printJoke(cmd.OutOrStdout(), joke.FromMap(payload), verbose)
			return nil
		},
	}

	cmd.Flags().StringP(flagCategory, "c", "", "Restrict the joke to a category")

	return cmd
}

// printJoke renders a joke as text. Verbose mode prefixes a metadata block
// and a blank line before the joke itself.
func printJoke(w io.Writer, j joke.Joke, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "ID: %s\n", j.ID)
		fmt.Fprintf(w, "URL: %s\n", j.URL)
		if len(j.Categories) > 0 {
			fmt.Fprintf(w, "Categories: %s\n", strings.Join(j.Categories, ", "))
		}
		fmt.Fprintln(w)
	}

	value := j.Value
	if value == "" {
		value = "(no joke returned)"
	}
	fmt.Fprintln(w, value)
}
