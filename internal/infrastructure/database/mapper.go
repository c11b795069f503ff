package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"sitecopy/internal/ports/output"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// localeDocumentRow mirrors one row of locale_documents.
type localeDocumentRow struct {
	Locale    string
	Format    string
	Body      []byte
	Checksum  string
	UpdatedAt pgtype.Timestamptz
}

func localeDocumentToDomain(r localeDocumentRow) output.LocaleDocument {
	return output.LocaleDocument{
		Locale:    r.Locale,
		Format:    r.Format,
		Body:      r.Body,
		Checksum:  r.Checksum,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
