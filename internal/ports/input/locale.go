package input

import (
	"context"

	"sitecopy/internal/domain/entities"
	"sitecopy/internal/ports/output"
)

// LocaleInfo summarises the supported locales.
type LocaleInfo struct {
	Reference string   `json:"reference"`
	Active    string   `json:"active"`
	Locales   []string `json:"locales"`
}

type LocaleUseCase interface {
	Get(locale, keyPath string) (any, error)
	All(locale string) (entities.LocaleTable, error)
	Locales() LocaleInfo
	Active() string
	SwitchActive(locale string) error
	Resolve(prefs ...string) string
	Publish(ctx context.Context, locale string) error
	PublishAll(ctx context.Context) error
	Sync(ctx context.Context) error
	Stored(ctx context.Context, locale string) (*output.LocaleDocument, error)
	Unpublish(ctx context.Context, locale string) error
}
