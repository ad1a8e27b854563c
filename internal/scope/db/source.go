package db

import (
	"context"
	"fmt"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/rs/zerolog"
)

// Source names where a catalog was loaded from
type Source string

// Catalog sources, in order of precedence
const (
	SourcePostgres Source = "postgres"
	SourceFile     Source = "file"
	SourceBuiltin  Source = "builtin"
)

// OpenCatalog loads the catalog once at startup. Postgres wins when
// databaseURL is set, then catalogPath, then the built-in catalog.
func OpenCatalog(ctx context.Context, databaseURL, catalogPath string, logger zerolog.Logger) (*catalog.Catalog, Source, error) {
	switch {
	case databaseURL != "":
		d, err := New(ctx, databaseURL)
		if err != nil {
			return nil, SourcePostgres, err
		}
		defer d.Close()

		docs, err := d.LoadDocuments(ctx)
		if err != nil {
			return nil, SourcePostgres, err
		}
		if len(docs) == 0 {
			logger.Warn().Msg("tutorials table is empty, run `learnhub seed` to populate it")
		}

		c, err := catalog.New(docs)
		if err != nil {
			return nil, SourcePostgres, fmt.Errorf("invalid catalog in database: %w", err)
		}
		return c, SourcePostgres, nil

	case catalogPath != "":
		c, err := catalog.Open(catalogPath)
		return c, SourceFile, err

	default:
		c, err := catalog.Default()
		return c, SourceBuiltin, err
	}
}
