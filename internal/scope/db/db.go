// Package db loads and stores the tutorial catalog in Postgres.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDatabase is returned when an operation needs Postgres but no URL is configured.
var ErrNoDatabase = errors.New("no database configured")

const schema = `
CREATE TABLE IF NOT EXISTS tutorials (
	id          TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	category    TEXT NOT NULL,
	path        TEXT NOT NULL,
	keywords    TEXT[] NOT NULL DEFAULT '{}',
	content     TEXT
)`

var tutorialColumns = []string{"id", "position", "title", "description", "category", "path", "keywords", "content"}

// DB wraps the database connection pool
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection
func New(ctx context.Context, connString string) (*DB, error) {
	if connString == "" {
		return nil, ErrNoDatabase
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the database connection
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying connection pool
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// EnsureSchema creates the tutorials table if it does not exist
func (d *DB) EnsureSchema(ctx context.Context) error {
	if _, err := d.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadDocuments reads every tutorial in catalog order
func (d *DB) LoadDocuments(ctx context.Context) ([]catalog.Document, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, title, description, category, path, keywords, content
		   FROM tutorials
		  ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tutorials: %w", err)
	}

	docs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to read tutorials: %w", err)
	}
	return docs, nil
}

// ReplaceDocuments swaps the stored catalog for docs in a single transaction
// and returns the number of rows written
func (d *DB) ReplaceDocuments(ctx context.Context, docs []catalog.Document) (int64, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM tutorials`); err != nil {
		return 0, fmt.Errorf("failed to clear tutorials: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"tutorials"}, tutorialColumns, pgx.CopyFromRows(documentRows(docs)))
	if err != nil {
		return 0, fmt.Errorf("failed to copy tutorials: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit tutorials: %w", err)
	}
	return n, nil
}

func scanDocument(row pgx.CollectableRow) (catalog.Document, error) {
	var (
		doc     catalog.Document
		content pgtype.Text
	)
	err := row.Scan(&doc.ID, &doc.Title, &doc.Description, &doc.Category, &doc.Path, &doc.Keywords, &content)
	doc.Content = content.String
	return doc, err
}

// documentRows lays docs out in tutorialColumns order; position keeps catalog order
func documentRows(docs []catalog.Document) [][]any {
	rows := make([][]any, len(docs))
	for i, doc := range docs {
		keywords := doc.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		rows[i] = []any{
			doc.ID,
			int32(i),
			doc.Title,
			doc.Description,
			doc.Category,
			doc.Path,
			keywords,
			pgtype.Text{String: doc.Content, Valid: doc.Content != ""},
		}
	}
	return rows
}
