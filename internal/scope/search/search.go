// Package search ranks catalog documents against a free-text query.
//
// Scoring is a linear scan with fixed weights: a whole-phrase match and
// per-word matches are counted independently for each field, so a single
// field can contribute both. Documents scoring zero are dropped and the
// rest are ordered by score, ties keeping catalog order.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
)

// MaxResults is the number of results Search returns at most
const MaxResults = 10

// Scoring weights
const (
	WeightTitleExact     = 100
	WeightTitlePhrase    = 50
	WeightTitleWord      = 20
	WeightDescPhrase     = 30
	WeightDescWord       = 10
	WeightKeywordExact   = 40
	WeightKeywordPhrase  = 25
	WeightKeywordWord    = 8
	WeightContentPhrase  = 15
	WeightContentWord    = 5
	WeightCategoryPhrase = 20
)

// Result is a document with its relevance score
type Result struct {
	catalog.Document
	Score int `json:"score"`
}

// Engine represents a search backend
type Engine interface {
	Search(query string) []Result
}

// CatalogEngine searches a fixed catalog
type CatalogEngine struct {
	catalog *catalog.Catalog
}

// NewCatalogEngine creates an engine over c
func NewCatalogEngine(c *catalog.Catalog) *CatalogEngine {
	return &CatalogEngine{catalog: c}
}

// Search ranks the engine's catalog against query
func (e *CatalogEngine) Search(query string) []Result {
	return Search(query, e.catalog.Docs())
}

// Search returns up to MaxResults documents matching query, best first.
// An empty or whitespace-only query yields no results. docs is not modified.
func Search(query string, docs []catalog.Document) []Result {
	term, words := Normalize(query)
	if term == "" {
		return []Result{}
	}

	results := make([]Result, 0)
	for i := range docs {
		score := Score(docs[i], term, words)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Document: docs[i], Score: score})
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// Normalize trims and lower-cases query and splits it on whitespace runs
func Normalize(query string) (term string, words []string) {
	term = strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return "", nil
	}
	return term, strings.Fields(term)
}

// Score computes the relevance of doc for an already normalized term and its words
func Score(doc catalog.Document, term string, words []string) int {
	score := 0

	title := strings.ToLower(doc.Title)
	if title == term {
		score += WeightTitleExact
	} else if strings.Contains(title, term) {
		score += WeightTitlePhrase
	}
	score += WeightTitleWord * countContained(title, words)

	desc := strings.ToLower(doc.Description)
	if strings.Contains(desc, term) {
		score += WeightDescPhrase
	}
	score += WeightDescWord * countContained(desc, words)

	for _, kw := range doc.Keywords {
		kw = strings.ToLower(kw)
		if kw == term {
			score += WeightKeywordExact
		} else if strings.Contains(kw, term) {
			score += WeightKeywordPhrase
		}
	}
	for _, word := range words {
		for _, kw := range doc.Keywords {
			if strings.Contains(strings.ToLower(kw), word) {
				score += WeightKeywordWord
			}
		}
	}

	if doc.Content != "" {
		content := strings.ToLower(doc.Content)
		if strings.Contains(content, term) {
			score += WeightContentPhrase
		}
		score += WeightContentWord * countContained(content, words)
	}

	if strings.Contains(strings.ToLower(doc.Category), term) {
		score += WeightCategoryPhrase
	}

	return score
}

// countContained counts the words that appear in s
func countContained(s string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			n++
		}
	}
	return n
}
