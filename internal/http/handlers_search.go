package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dsjohal14/learnhub/internal/scope/search"
)

// HandleSearch ranks the catalog against a JSON query body
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid search request")
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	h.search(w, req)
}

// HandleSearchQuery is the GET form of HandleSearch, reading ?q= and ?limit=
func (h *Handler) HandleSearchQuery(w http.ResponseWriter, r *http.Request) {
	req := SearchRequest{Query: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer", "INVALID_LIMIT")
			return
		}
		req.Limit = limit
	}

	h.search(w, req)
}

func (h *Handler) search(w http.ResponseWriter, req SearchRequest) {
	if req.Limit == 0 {
		req.Limit = search.MaxResults
	}
	if req.Limit < 0 || req.Limit > search.MaxResults {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("limit must be between 1 and %d", search.MaxResults), "INVALID_LIMIT")
		return
	}

	// Blank queries are not an error; they just match nothing
	ranked := h.engine.Search(req.Query)
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	results := make([]SearchResult, len(ranked))
	for i, r := range ranked {
		results[i] = SearchResult{
			ID:          r.ID,
			Score:       r.Score,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Path:        r.Path,
			Keywords:    r.Keywords,
		}
	}

	h.logger.Info().
		Str("query", req.Query).
		Int("results", len(results)).
		Int("limit", req.Limit).
		Msg("search completed")

	writeJSON(w, http.StatusOK, SearchResponse{
		Results: results,
		Count:   len(results),
		Query:   req.Query,
	})
}
