package output

import (
	"context"
	"time"
)

// LocaleDocument is one encoded locale table as stored.
type LocaleDocument struct {
	Locale    string
	Format    string
	Body      []byte
	Checksum  string
	UpdatedAt time.Time
}

type LocaleRepository interface {
	Save(ctx context.Context, doc *LocaleDocument) error
	FindByLocale(ctx context.Context, locale string) (*LocaleDocument, error)
	List(ctx context.Context) ([]LocaleDocument, error)
	Delete(ctx context.Context, locale string) error
}
