package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"sitecopy/internal/ports/input"
	"sitecopy/internal/ports/output"
)

// Server exposes locale tables to rendering layers over HTTP.
type Server struct {
	locales    input.LocaleUseCase
	translator output.T
	adminToken string
}

func New(locales input.LocaleUseCase, translator output.T) *Server {
	return &Server{locales: locales, translator: translator}
}

// WithAdminToken enables the /api/admin routes, guarded by a bearer token.
func (s *Server) WithAdminToken(token string) *Server {
	s.adminToken = token
	return s
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/locales", s.handleLocales)
		r.Get("/locales/{locale}", s.handleTable)
		r.Get("/locales/{locale}/value", s.handleValue)
		r.Get("/copy", s.handleCopy)
		r.Put("/active/{locale}", s.handleSwitch)

		if s.adminToken != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/publish", s.handlePublishAll)
				r.Post("/locales/{locale}/publish", s.handlePublish)
				r.Post("/sync", s.handleSync)
				r.Get("/store/{locale}", s.handleStored)
				r.Delete("/store/{locale}", s.handleUnpublish)
			})
		}
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("sys", "http").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Request served")
	})
}
