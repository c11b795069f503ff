package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "admin token required", Code: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handlePublishAll(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.PublishAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.locales.Locales())
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.Publish(r.Context(), chi.URLParam(r, "locale")); err != nil {
		writeError(w, err)
		return
	}
	s.handleStored(w, r)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.Sync(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.locales.Locales())
}

type storedResponse struct {
	Locale    string    `json:"locale"`
	Format    string    `json:"format"`
	Checksum  string    `json:"checksum"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Server) handleStored(w http.ResponseWriter, r *http.Request) {
	doc, err := s.locales.Stored(r.Context(), chi.URLParam(r, "locale"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, storedResponse{
		Locale:    doc.Locale,
		Format:    doc.Format,
		Checksum:  doc.Checksum,
		Size:      len(doc.Body),
		UpdatedAt: doc.UpdatedAt,
	})
}

func (s *Server) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.Unpublish(r.Context(), chi.URLParam(r, "locale")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
