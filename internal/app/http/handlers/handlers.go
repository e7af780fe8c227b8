package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"quotemaster/go_backend/internal/app/config"
	"quotemaster/go_backend/internal/infra/store"
	"quotemaster/go_backend/internal/session"
)

type Handlers struct {
	Cfg     config.Config
	Store   store.Store
	Session *session.Session
	now     func() time.Time
}

func New(cfg config.Config, st store.Store, sess *session.Session) *Handlers {
	return &Handlers{
		Cfg:     cfg,
		Store:   st,
		Session: sess,
		now:     time.Now,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return dec.Decode(v)
}
