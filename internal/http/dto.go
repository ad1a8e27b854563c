// Package httpapi provides HTTP handlers and data transfer objects for the tutorial API.
package httpapi

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	DocCount int    `json:"doc_count"`
}

// SearchRequest represents search request
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"` // Default and max: search.MaxResults
}

// SearchResult represents a single search result with score
type SearchResult struct {
	ID          string   `json:"id"`
	Score       int      `json:"score"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	Keywords    []string `json:"keywords"`
}

// SearchResponse represents search results
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
	Query   string         `json:"query"`
}

// Tutorial is a catalog entry as returned by the tutorial endpoints
type Tutorial struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	Keywords    []string `json:"keywords"`
	Content     string   `json:"content,omitempty"` // Only set on single-tutorial lookups
}

// TutorialListResponse represents a list of tutorials
type TutorialListResponse struct {
	Tutorials []Tutorial `json:"tutorials"`
	Count     int        `json:"count"`
}

// Category summarizes one catalog category
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoriesResponse lists categories in catalog order
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
