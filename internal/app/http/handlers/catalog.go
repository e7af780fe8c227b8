package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"quotemaster/go_backend/internal/session"
)

type catalogResponse struct {
	Items    interface{} `json:"items"`
	Total    int         `json:"total"`
	Offset   int         `json:"offset"`
	Limit    int         `json:"limit"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
}

func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := h.Session.Search(q.Get("q"), atoiDefault(q.Get("offset"), 0), atoiDefault(q.Get("limit"), 0))

	resp := catalogResponse{Items: page.Items, Total: page.Total, Offset: page.Offset, Limit: page.Limit}
	if _, at := h.Session.Catalog(); !at.IsZero() {
		resp.LoadedAt = &at
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := h.Session.RefreshCatalog(r.Context())
	var ie *session.IngestError
	switch {
	case errors.Is(err, session.ErrNotConfigured):
		writeJSON(w, http.StatusOK, map[string]string{
			"advisory": "Catalog sheet URL is not configured. Ask an administrator to set it.",
		})
	case errors.As(err, &ie):
		writeError(w, http.StatusBadGateway,
			"Failed to fetch the catalog sheet. Ensure it is public (anyone with the link can view).")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "catalog refresh failed")
	default:
		writeJSON(w, http.StatusOK, map[string]int{"items": n})
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
