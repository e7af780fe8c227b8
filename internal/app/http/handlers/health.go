package handlers

import (
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	items, _ := h.Session.Catalog()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"catalog_items": len(items),
	})
}
