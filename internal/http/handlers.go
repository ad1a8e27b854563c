package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/dsjohal14/learnhub/internal/scope/search"
	"github.com/rs/zerolog"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	catalog *catalog.Catalog
	engine  search.Engine
	logger  zerolog.Logger
}

// NewHandler creates a new HTTP handler serving the given catalog
func NewHandler(c *catalog.Catalog, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog: c,
		engine:  search.NewCatalogEngine(c),
		logger:  logger,
	}
}

// Helper functions used across all handlers

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func toTutorial(doc catalog.Document) Tutorial {
	return Tutorial{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		Path:        doc.Path,
		Keywords:    doc.Keywords,
	}
}
