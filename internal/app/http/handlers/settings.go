package handlers

import (
	"net/http"

	"quotemaster/go_backend/internal/infra/store"
)

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.LoadConfig(r.Context(), h.Store))
}

func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	var cfg store.AppConfig
	if err := decode(w, r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	saved, err := store.SaveConfig(r.Context(), h.Store, cfg, h.now())
	if err != nil {
		// persistence is best effort; the caller keeps working with the old config
		writeError(w, http.StatusServiceUnavailable, "settings could not be saved")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
