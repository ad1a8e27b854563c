// Package catalog holds the read-only tutorial catalog that search runs over.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when two documents share an ID.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrMissingField is returned when a required document field is empty.
	ErrMissingField = errors.New("missing required field")
)

// Document is a single tutorial entry in the catalog
type Document struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Path        string   `json:"path" yaml:"path"` // Opaque locator, passed through untouched
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
}

// Catalog is an immutable, ordered set of documents.
// It is safe for concurrent use since nothing mutates it after New returns.
type Catalog struct {
	docs []Document
	byID map[string]int
}

// New validates docs and builds a catalog preserving their order.
// Keywords are trimmed and lower-cased; docs is not modified.
func New(docs []Document) (*Catalog, error) {
	c := &Catalog{
		docs: make([]Document, 0, len(docs)),
		byID: make(map[string]int, len(docs)),
	}

	for i, doc := range docs {
		if err := validate(doc); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if _, ok := c.byID[doc.ID]; ok {
			return nil, fmt.Errorf("document %d: %w: %s", i, ErrDuplicateID, doc.ID)
		}

		doc.Keywords = normalizeKeywords(doc.Keywords)
		c.byID[doc.ID] = len(c.docs)
		c.docs = append(c.docs, doc)
	}

	return c, nil
}

// Docs returns the documents in catalog order.
// The returned slice is shared and must be treated as read-only.
func (c *Catalog) Docs() []Document {
	return c.docs
}

// Count returns the number of documents
func (c *Catalog) Count() int {
	return len(c.docs)
}

// Get looks up a document by ID
func (c *Catalog) Get(id string) (Document, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Document{}, false
	}
	return c.docs[i], true
}

// Categories returns the distinct categories in order of first appearance
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, doc := range c.docs {
		if seen[doc.Category] {
			continue
		}
		seen[doc.Category] = true
		out = append(out, doc.Category)
	}
	return out
}

// ByCategory returns the documents in the given category, matched case-insensitively
func (c *Catalog) ByCategory(category string) []Document {
	var out []Document
	for _, doc := range c.docs {
		if strings.EqualFold(doc.Category, category) {
			out = append(out, doc)
		}
	}
	return out
}

func validate(doc Document) error {
	required := []struct {
		name  string
		value string
	}{
		{"id", doc.ID},
		{"title", doc.Title},
		{"description", doc.Description},
		{"category", doc.Category},
		{"path", doc.Path},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		out = append(out, kw)
	}
	return out
}
