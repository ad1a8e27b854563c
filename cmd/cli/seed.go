package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/dsjohal14/learnhub/internal/scope/db"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the Postgres catalog with the --catalog file or the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.databaseURL == "" {
				return fmt.Errorf("seed: %w (set --database-url or DATABASE_URL)", db.ErrNoDatabase)
			}

			// Read from the file source, never from the database being replaced
			var (
				c   *catalog.Catalog
				err error
			)
			if opts.catalogPath != "" {
				c, err = catalog.Open(opts.catalogPath)
			} else {
				c, err = catalog.Default()
			}
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			d, err := db.New(ctx, opts.databaseURL)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.EnsureSchema(ctx); err != nil {
				return err
			}
			n, err := d.ReplaceDocuments(ctx, c.Docs())
			if err != nil {
				return err
			}

			opts.logger.Info().Int64("rows", n).Msg("catalog seeded")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tutorials\n", n)
			return nil
		},
	}
}
