package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
	"sitecopy/internal/infrastructure/i18n"
	"sitecopy/internal/ports/input"
	"sitecopy/internal/ports/output"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

type LocaleService struct {
	catalogs  *i18n.Holder
	repo      output.LocaleRepository
	reference string
	now       func() time.Time
}

// NewLocaleService serves tables from catalogs. repo may be nil, in which
// case Publish and Sync report domain.ErrRepositoryNotWired.
func NewLocaleService(catalogs *i18n.Holder, repo output.LocaleRepository, reference string) *LocaleService {
	return &LocaleService{
		catalogs:  catalogs,
		repo:      repo,
		reference: reference,
		now:       time.Now,
	}
}

func (s *LocaleService) Get(locale, keyPath string) (any, error) {
	t, err := s.catalogs.Load().Lookup(locale)
	if err != nil {
		return nil, err
	}
	return t.Get(keyPath)
}

func (s *LocaleService) All(locale string) (entities.LocaleTable, error) {
	t, err := s.catalogs.Load().Lookup(locale)
	if err != nil {
		return entities.LocaleTable{}, err
	}
	return t.All(), nil
}

func (s *LocaleService) Locales() input.LocaleInfo {
	c := s.catalogs.Load()
	return input.LocaleInfo{
		Reference: c.Reference().Locale().String(),
		Active:    c.Active().Locale().String(),
		Locales:   c.Locales(),
	}
}

func (s *LocaleService) Active() string {
	return s.catalogs.Load().Active().Locale().String()
}

func (s *LocaleService) SwitchActive(locale string) error {
	t, err := s.catalogs.Switch(locale)
	if err != nil {
		return err
	}
	log.Info().Str("sys", "locale").Str("locale", t.Locale().String()).Msg("Active locale switched")
	return nil
}

func (s *LocaleService) Resolve(prefs ...string) string {
	return s.catalogs.Load().Match(prefs...).Locale().String()
}

// Publish stores the current table for locale in the repository.
func (s *LocaleService) Publish(ctx context.Context, locale string) error {
	if s.repo == nil {
		return domain.ErrRepositoryNotWired
	}
	t, err := s.catalogs.Load().Lookup(locale)
	if err != nil {
		return err
	}
	return s.publish(ctx, t)
}

// PublishAll stores every supported table.
func (s *LocaleService) PublishAll(ctx context.Context) error {
	if s.repo == nil {
		return domain.ErrRepositoryNotWired
	}
	for _, t := range s.catalogs.Load().Tables() {
		if err := s.publish(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *LocaleService) publish(ctx context.Context, t *i18n.Table) error {
	codec, err := i18n.CodecFor(i18n.DefaultFormat)
	if err != nil {
		return err
	}
	body, err := i18n.Encode(codec, t)
	if err != nil {
		return err
	}
	doc := &output.LocaleDocument{
		Locale:    t.Locale().String(),
		Format:    codec.Format,
		Body:      body,
		Checksum:  checksum(body),
		UpdatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("publish %s: %w", doc.Locale, err)
	}
	log.Info().Str("sys", "locale").Str("locale", doc.Locale).Str("checksum", doc.Checksum[:12]).Msg("Published locale table")
	return nil
}

// Stored returns the persisted document for locale.
func (s *LocaleService) Stored(ctx context.Context, locale string) (*output.LocaleDocument, error) {
	if s.repo == nil {
		return nil, domain.ErrRepositoryNotWired
	}
	tag, err := i18n.ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByLocale(ctx, tag.String())
}

// Unpublish removes a locale from the store. The next Sync stops serving
// it. The reference locale cannot be removed.
func (s *LocaleService) Unpublish(ctx context.Context, locale string) error {
	if s.repo == nil {
		return domain.ErrRepositoryNotWired
	}
	tag, err := i18n.ParseLocale(locale)
	if err != nil {
		return err
	}
	ref, err := i18n.ParseLocale(s.reference)
	if err != nil {
		return err
	}
	if tag == ref {
		return fmt.Errorf("unpublish %s: %w", tag, domain.ErrReferenceLocale)
	}
	if _, err := s.repo.FindByLocale(ctx, tag.String()); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tag.String()); err != nil {
		return fmt.Errorf("unpublish %s: %w", tag, err)
	}
	log.Info().Str("sys", "locale").Str("locale", tag.String()).Msg("Unpublished locale table")
	return nil
}

// Sync replaces the served catalog with the tables stored in the repository.
// An empty repository is seeded with the current tables instead. Any invalid
// document aborts the sync and the current catalog stays in place.
func (s *LocaleService) Sync(ctx context.Context) error {
	if s.repo == nil {
		return domain.ErrRepositoryNotWired
	}
	docs, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("sync: list documents: %w", err)
	}
	if len(docs) == 0 {
		log.Info().Str("sys", "locale").Msg("Locale store empty, seeding from loaded tables")
		return s.PublishAll(ctx)
	}

	tables := make([]*i18n.Table, 0, len(docs))
	for _, doc := range docs {
		t, err := decodeDocument(doc)
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		tables = append(tables, t)
	}
	next, err := i18n.NewCatalog(s.reference, tables...)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	s.catalogs.Replace(next)
	log.Info().Str("sys", "locale").Strs("locales", next.Locales()).Msg("Locale catalog synced from store")
	return nil
}

func decodeDocument(doc output.LocaleDocument) (*i18n.Table, error) {
	if doc.Checksum != "" && doc.Checksum != checksum(doc.Body) {
		return nil, fmt.Errorf("document %s: checksum mismatch", doc.Locale)
	}
	codec, err := i18n.CodecFor(doc.Format)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", doc.Locale, err)
	}
	locale, err := i18n.ParseLocale(doc.Locale)
	if err != nil {
		return nil, err
	}
	return i18n.Decode(codec, locale, doc.Body)
}

func checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
