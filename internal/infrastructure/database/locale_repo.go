package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sitecopy/internal/domain"
	"sitecopy/internal/ports/output"
)

var _ output.LocaleRepository = (*LocaleRepository)(nil)

const (
	upsertLocaleDocument = `
INSERT INTO locale_documents (locale, format, body, checksum, updated_at)
VALUES ($1, $2, $3, $4, COALESCE($5, now()))
ON CONFLICT (locale) DO UPDATE
SET format = EXCLUDED.format,
    body = EXCLUDED.body,
    checksum = EXCLUDED.checksum,
    updated_at = EXCLUDED.updated_at
RETURNING updated_at`

	selectLocaleDocument = `
SELECT locale, format, body, checksum, updated_at
FROM locale_documents
WHERE locale = $1`

	listLocaleDocuments = `
SELECT locale, format, body, checksum, updated_at
FROM locale_documents
ORDER BY locale`

	deleteLocaleDocument = `DELETE FROM locale_documents WHERE locale = $1`
)

type LocaleRepository struct {
	pool *pgxpool.Pool
}

func NewLocaleRepository(pool *pgxpool.Pool) *LocaleRepository {
	return &LocaleRepository{pool: pool}
}

func (r *LocaleRepository) Save(ctx context.Context, doc *output.LocaleDocument) error {
	var updatedAt = timeToPgtypeTimestamptz(doc.UpdatedAt)
	err := r.pool.QueryRow(ctx, upsertLocaleDocument,
		doc.Locale, doc.Format, doc.Body, doc.Checksum, updatedAt,
	).Scan(&updatedAt)
	if err != nil {
		return fmt.Errorf("save locale document: %w", err)
	}
	doc.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *LocaleRepository) FindByLocale(ctx context.Context, locale string) (*output.LocaleDocument, error) {
	var row localeDocumentRow
	err := r.pool.QueryRow(ctx, selectLocaleDocument, locale).
		Scan(&row.Locale, &row.Format, &row.Body, &row.Checksum, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get locale document %s: %w", locale, domain.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get locale document: %w", err)
	}
	doc := localeDocumentToDomain(row)
	return &doc, nil
}

func (r *LocaleRepository) List(ctx context.Context) ([]output.LocaleDocument, error) {
	rows, err := r.pool.Query(ctx, listLocaleDocuments)
	if err != nil {
		return nil, fmt.Errorf("list locale documents: %w", err)
	}
	defer rows.Close()

	var out []output.LocaleDocument
	for rows.Next() {
		var row localeDocumentRow
		if err := rows.Scan(&row.Locale, &row.Format, &row.Body, &row.Checksum, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan locale document: %w", err)
		}
		out = append(out, localeDocumentToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locale documents: %w", err)
	}
	return out, nil
}

func (r *LocaleRepository) Delete(ctx context.Context, locale string) error {
	if _, err := r.pool.Exec(ctx, deleteLocaleDocument, locale); err != nil {
		return fmt.Errorf("delete locale document: %w", err)
	}
	return nil
}
