package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/stride-commerce/stride/internal/assistant"
	"github.com/stride-commerce/stride/internal/auth"
	"github.com/stride-commerce/stride/internal/catalog"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	AuthHandler      *auth.Handler
	CatalogHandler   *catalog.Handler
	AssistantHandler *assistant.Handler
	RequireAuth      func(http.Handler) http.Handler
}

// NewRouter constructs the chi.Router with Stride defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/users", params.AuthHandler.MountRoutes)
	r.Route("/api/products", func(r chi.Router) {
		params.CatalogHandler.MountRoutes(r, params.RequireAuth)
	})
	r.Route("/api/ai", params.AssistantHandler.MountRoutes)

	// Uploaded product images are served straight off disk, read-only.
	uploadsDir := "uploads"
	if params.Config != nil && params.Config.UploadDir != "" {
		uploadsDir = params.Config.UploadDir
	}
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Handle("/uploads/*", staticCacheHandler(fileServer))

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
