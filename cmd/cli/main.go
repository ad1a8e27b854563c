// Package main implements the learnhub CLI for searching and managing the tutorial catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dsjohal14/learnhub/internal/libs/config"
	"github.com/dsjohal14/learnhub/internal/libs/obs"
	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/dsjohal14/learnhub/internal/scope/db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	catalogPath string
	databaseURL string
	logLevel    string
	logger      zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "learnhub",
		Short:         "Search and manage the tutorial catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags win over the environment
			if !cmd.Flags().Changed("catalog") {
				opts.catalogPath = cfg.CatalogPath
			}
			if !cmd.Flags().Changed("database-url") {
				opts.databaseURL = cfg.DatabaseURL
			}
			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = cfg.LogLevel
			}

			obs.InitLogger(opts.logLevel)
			opts.logger = obs.NewLogger(cmd.ErrOrStderr(), "cli")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (.yaml, .json, .jsonl); defaults to $CATALOG_PATH or the built-in catalog")
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "Postgres URL to read the catalog from; defaults to $DATABASE_URL")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level; defaults to $LOG_LEVEL")

	root.AddCommand(
		newSearchCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newCategoriesCmd(opts),
		newValidateCmd(opts),
		newExportCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

// loadCatalog opens the catalog the same way the API server does
func (o *options) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c, source, err := db.OpenCatalog(ctx, o.databaseURL, o.catalogPath, o.logger)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s catalog: %w", source, err)
	}
	o.logger.Debug().Str("source", string(source)).Int("doc_count", c.Count()).Msg("catalog loaded")
	return c, nil
}
