package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"quotemaster/go_backend/internal/app/http/handlers"
	"quotemaster/go_backend/internal/app/http/middleware"
)

func NewRouter(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(h.Cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", h.Catalog)
		r.Post("/catalog/refresh", h.RefreshCatalog)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{id}", h.UpdateCartItem)
			r.Delete("/items/{id}", h.RemoveCartItem)
			r.Put("/discount", h.SetDiscount)
		})

		r.Post("/quotes", h.CreateQuote)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(h.Cfg.InternalToken))

			r.Get("/config", h.GetSettings)
			r.Put("/config", h.PutSettings)
		})
	})

	return r
}
