package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	InternalToken     string
	CORSAllowOrigin   string
	SheetsBaseURL     string
	CatalogFormat     string
	CatalogURL        string
	UploadEndpointURL string
	PDFFontDir        string
	PDFFooter         string
	HTTPClientTimeout time.Duration
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file, using process environment")
	}
	return Config{
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		DatabaseURL:       env("DATABASE_URL", ""),
		InternalToken:     mustEnv("INTERNAL_TOKEN"),
		CORSAllowOrigin:   env("CORS_ALLOW_ORIGIN", "*"),
		SheetsBaseURL:     env("SHEETS_BASE_URL", "https://docs.google.com"),
		CatalogFormat:     env("CATALOG_FORMAT", "csv"),
		CatalogURL:        env("CATALOG_URL", ""),
		UploadEndpointURL: env("UPLOAD_ENDPOINT_URL", ""),
		PDFFontDir:        env("PDF_FONT_DIR", ""),
		PDFFooter:         env("PDF_FOOTER", ""),
		HTTPClientTimeout: duration("HTTP_CLIENT_TIMEOUT", 15*time.Second),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: bad %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
