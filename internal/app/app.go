package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"quotemaster/go_backend/internal/app/config"
	apphttp "quotemaster/go_backend/internal/app/http"
	"quotemaster/go_backend/internal/app/http/handlers"
	"quotemaster/go_backend/internal/domain/quote/pdf/gofpdf"
	"quotemaster/go_backend/internal/infra/db/postgres"
	"quotemaster/go_backend/internal/infra/sheets"
	"quotemaster/go_backend/internal/infra/store"
	"quotemaster/go_backend/internal/infra/upload"
	"quotemaster/go_backend/internal/session"
)

func Run() {
	cfg := config.MustLoad()
	ctx := context.Background()

	st, closeStore := openStore(ctx, cfg)
	defer closeStore()
	seedConfig(ctx, st, cfg)

	client := &http.Client{Timeout: cfg.HTTPClientTimeout}
	sess := session.New(st,
		sheets.New(client, cfg.SheetsBaseURL, sheets.Format(cfg.CatalogFormat)),
		gofpdf.New(gofpdf.Options{FontDir: cfg.PDFFontDir, Footer: cfg.PDFFooter}),
		upload.New(client),
	)

	if n, err := sess.RefreshCatalog(ctx); err != nil {
		log.Printf("catalog: initial load skipped: %v", err)
	} else {
		log.Printf("catalog: %d items", n)
	}

	router := apphttp.NewRouter(handlers.New(cfg, st, sess))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

// openStore prefers Postgres and falls back to memory, so a missing or
// unreachable database never stops the service.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func()) {
	if cfg.DatabaseURL == "" {
		log.Printf("store: DATABASE_URL not set, settings kept in memory")
		return store.NewMemory(), func() {}
	}
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("store: db unavailable, settings kept in memory: %v", err)
		return store.NewMemory(), func() {}
	}
	pg := store.NewPostgres(db)
	if err := pg.Migrate(ctx); err != nil {
		log.Printf("store: migrate failed, settings kept in memory: %v", err)
		db.Close()
		return store.NewMemory(), func() {}
	}
	return pg, db.Close
}

// seedConfig writes URLs from the environment when nothing is stored yet.
func seedConfig(ctx context.Context, st store.Store, cfg config.Config) {
	if cfg.CatalogURL == "" && cfg.UploadEndpointURL == "" {
		return
	}
	current := store.LoadConfig(ctx, st)
	if current.CatalogURL != "" || current.UploadEndpointURL != "" {
		return
	}
	current.CatalogURL = cfg.CatalogURL
	current.UploadEndpointURL = cfg.UploadEndpointURL
	if _, err := store.SaveConfig(ctx, st, current, time.Now()); err != nil {
		log.Printf("store: seed config: %v", err)
	}
}
