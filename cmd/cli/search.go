package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsjohal14/learnhub/internal/scope/search"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank tutorials against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := search.Search(query, c.Docs())

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(results) == 0 {
				fmt.Fprintf(out, "No tutorials match %q\n", query)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tTITLE\tCATEGORY\tPATH")
			for _, r := range results {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Score, r.Title, r.Category, r.Path)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}
