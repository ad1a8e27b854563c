package httpapi

import (
	"net/http"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/go-chi/chi/v5"
)

// HandleListTutorials lists the catalog, optionally filtered by ?category=
func (h *Handler) HandleListTutorials(w http.ResponseWriter, r *http.Request) {
	docs := h.catalog.Docs()
	if category := r.URL.Query().Get("category"); category != "" {
		docs = h.catalog.ByCategory(category)
	}

	tutorials := make([]Tutorial, len(docs))
	for i, doc := range docs {
		tutorials[i] = toTutorial(doc)
	}

	writeJSON(w, http.StatusOK, TutorialListResponse{
		Tutorials: tutorials,
		Count:     len(tutorials),
	})
}

// HandleGetTutorial returns one tutorial including its content
func (h *Handler) HandleGetTutorial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, ok := h.catalog.Get(id)
	if !ok {
		h.logger.Debug().Str("id", id).Msg("tutorial not found")
		writeError(w, http.StatusNotFound, "tutorial not found", "NOT_FOUND")
		return
	}

	t := toTutorial(doc)
	t.Content = doc.Content
	writeJSON(w, http.StatusOK, t)
}

// HandleCategories lists categories with their tutorial counts
func (h *Handler) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	names := h.catalog.Categories()
	categories := make([]Category, len(names))
	for i, name := range names {
		categories[i] = Category{Name: name, Count: countCategory(h.catalog, name)}
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

func countCategory(c *catalog.Catalog, name string) int {
	n := 0
	for _, doc := range c.Docs() {
		if doc.Category == name {
			n++
		}
	}
	return n
}
