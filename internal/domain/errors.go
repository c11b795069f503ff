package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrMissingKey          = errors.New("missing locale key")
	ErrStructuralMismatch  = errors.New("locale table shape differs from reference")
	ErrInvalidValue        = errors.New("invalid locale value")
	ErrLocaleNotSupported  = errors.New("locale not supported")
	ErrInvalidLocale       = errors.New("invalid locale identifier")
	ErrUnsupportedFormat   = errors.New("unsupported locale file format")
	ErrRepositoryNotWired  = errors.New("no locale repository configured")
	ErrLocaleDocumentEmpty = errors.New("locale document is empty")
	ErrDocumentNotFound    = errors.New("locale document not found")
	ErrReferenceLocale     = errors.New("reference locale cannot be removed")
)

// MissingKeyError reports a key path absent from a locale table. It signals
// an authoring bug in the table, not a condition the table can recover from.
type MissingKeyError struct {
	Locale string
	Path   string
	Reason string
}

func (e *MissingKeyError) Error() string {
	msg := fmt.Sprintf("locale %s: missing key %q", e.Locale, e.Path)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// MismatchKind classifies one structural difference between two tables.
type MismatchKind string

const (
	MismatchMissing    MismatchKind = "missing"
	MismatchUnexpected MismatchKind = "unexpected"
	MismatchLength     MismatchKind = "length"
	MismatchType       MismatchKind = "type"
)

// Mismatch is a single structural difference at Path.
type Mismatch struct {
	Path   string
	Kind   MismatchKind
	Detail string
}

func (m Mismatch) String() string {
	if m.Detail == "" {
		return fmt.Sprintf("%s: %s", m.Kind, m.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", m.Kind, m.Path, m.Detail)
}

// StructuralMismatchError rejects a table whose shape diverges from the
// reference locale.
type StructuralMismatchError struct {
	Locale     string
	Reference  string
	Mismatches []Mismatch
}

func (e *StructuralMismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("locale %s does not match %s: %s", e.Locale, e.Reference, strings.Join(parts, "; "))
}

func (e *StructuralMismatchError) Is(target error) bool { return target == ErrStructuralMismatch }

// InvalidValueError reports a leaf that is present but unusable.
type InvalidValueError struct {
	Locale string
	Path   string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("locale %s: invalid value at %q: %s", e.Locale, e.Path, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// Code returns a stable code for a domain error, or "" when err is not one.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingKey):
		return "missing_key"
	case errors.Is(err, ErrStructuralMismatch):
		return "structural_mismatch"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrLocaleNotSupported):
		return "locale_not_supported"
	case errors.Is(err, ErrInvalidLocale):
		return "invalid_locale"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrRepositoryNotWired):
		return "repository_not_configured"
	case errors.Is(err, ErrLocaleDocumentEmpty):
		return "empty_document"
	case errors.Is(err, ErrDocumentNotFound):
		return "document_not_found"
	case errors.Is(err, ErrReferenceLocale):
		return "reference_locale"
	default:
		return ""
	}
}
