package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/keypath"
)

// LangParam is the query parameter carrying a preferred locale.
const LangParam = "lang"

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.locales.Locales())
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	table, err := s.locales.All(chi.URLParam(r, "locale"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

type valueResponse struct {
	Locale string `json:"locale"`
	Key    string `json:"key"`
	Value  any    `json:"value"`
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	key := r.URL.Query().Get("key")
	if strings.TrimSpace(key) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter key is required", Code: "bad_request"})
		return
	}
	v, err := s.locales.Get(locale, key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, valueResponse{Locale: locale, Key: key, Value: v})
}

// handleCopy renders one string with fallback, for surfaces that must never
// show an error to the visitor.
func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if strings.TrimSpace(key) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter key is required", Code: "bad_request"})
		return
	}
	if _, err := keypath.Parse(key); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	locale := s.locales.Resolve(r.URL.Query().Get(LangParam), r.Header.Get("Accept-Language"))
	w.Header().Set("Content-Language", locale)
	writeJSON(w, http.StatusOK, valueResponse{Locale: locale, Key: key, Value: s.translator.T(locale, key, nil)})
}

func (s *Server) handleSwitch(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.SwitchActive(chi.URLParam(r, "locale")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.locales.Locales())
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMissingKey), errors.Is(err, domain.ErrLocaleNotSupported),
		errors.Is(err, domain.ErrDocumentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidLocale):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrReferenceLocale):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStructuralMismatch), errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrLocaleDocumentEmpty):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRepositoryNotWired):
		status = http.StatusServiceUnavailable
	}
	code := domain.Code(err)
	if code == "" {
		code = "internal"
		log.Error().Str("sys", "http").Err(err).Msg("Unhandled error")
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
