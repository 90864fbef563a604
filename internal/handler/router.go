package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"resultsvc/internal/mw"
)

type RouterConfig struct {
	Results        ResultService
	Public         fs.FS
	AllowedOrigins []string
	// Metrics is optional; when set requests are instrumented and
	// exposed on /metrics.
	Metrics *mw.Metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.GetHead)

	r.Get("/user", PageHandler(cfg.Public, ViewerPage))
	r.Get("/admin", PageHandler(cfg.Public, UploaderPage))

	r.Get("/getResults", GetResultsHandler(cfg.Results))
	r.Post("/uploadResult", UploadResultHandler(cfg.Results))
	r.Delete("/deleteResult/{id}", DeleteResultHandler(cfg.Results))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	static := StaticHandler(cfg.Public)
	r.Get("/", static)
	r.Get("/*", static)

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(NotFoundHandler)

	return r
}
