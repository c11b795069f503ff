package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecopy/internal/domain"
	"sitecopy/internal/infrastructure/i18n"
	"sitecopy/internal/ports/output"
)

type memoryRepo struct {
	mu      sync.Mutex
	docs    map[string]output.LocaleDocument
	listErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: map[string]output.LocaleDocument{}}
}

func (r *memoryRepo) Save(_ context.Context, doc *output.LocaleDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.Locale] = *doc
	return nil
}

func (r *memoryRepo) FindByLocale(_ context.Context, locale string) (*output.LocaleDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[locale]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return &doc, nil
}

func (r *memoryRepo) List(context.Context) ([]output.LocaleDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]output.LocaleDocument, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *memoryRepo) Delete(_ context.Context, locale string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, locale)
	return nil
}

func newService(t *testing.T, repo output.LocaleRepository) *LocaleService {
	t.Helper()
	tables, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	c, err := i18n.NewCatalog(i18n.DefaultReference, tables...)
	require.NoError(t, err)
	return NewLocaleService(i18n.NewHolder(c), repo, i18n.DefaultReference)
}

func TestLocaleService_Get(t *testing.T) {
	s := newService(t, nil)

	v, err := s.Get("en-US", "hero.title")
	require.NoError(t, err)
	assert.Equal(t, "AI Architecture Design", v)

	_, err = s.Get("en-US", "hero.nonexistent")
	assert.ErrorIs(t, err, domain.ErrMissingKey)

	_, err = s.Get("ja-JP", "hero.title")
	assert.ErrorIs(t, err, domain.ErrLocaleNotSupported)
}

func TestLocaleService_All(t *testing.T) {
	s := newService(t, nil)
	all, err := s.All("zh-CN")
	require.NoError(t, err)
	assert.Equal(t, "AI Blueprint", all.Site.Name)
	assert.Len(t, all.Features.Items, 3)
}

func TestLocaleService_SwitchActive(t *testing.T) {
	s := newService(t, nil)
	assert.Equal(t, "en-US", s.Active())

	require.NoError(t, s.SwitchActive("zh-CN"))
	assert.Equal(t, "zh-CN", s.Active())
	assert.Equal(t, "zh-CN", s.Locales().Active)

	assert.ErrorIs(t, s.SwitchActive("xx-YY"), domain.ErrLocaleNotSupported)
	assert.Equal(t, "zh-CN", s.Active())
}

func TestLocaleService_Resolve(t *testing.T) {
	s := newService(t, nil)
	assert.Equal(t, "zh-CN", s.Resolve("zh-CN,zh;q=0.9"))
	assert.Equal(t, "en-US", s.Resolve("fr"))
	assert.Equal(t, []string{"en-US", "zh-CN"}, s.Locales().Locales)
	assert.Equal(t, "en-US", s.Locales().Reference)
}

func TestLocaleService_NoRepository(t *testing.T) {
	s := newService(t, nil)
	ctx := context.Background()
	assert.ErrorIs(t, s.Publish(ctx, "en-US"), domain.ErrRepositoryNotWired)
	assert.ErrorIs(t, s.PublishAll(ctx), domain.ErrRepositoryNotWired)
	assert.ErrorIs(t, s.Sync(ctx), domain.ErrRepositoryNotWired)
	_, err := s.Stored(ctx, "en-US")
	assert.ErrorIs(t, err, domain.ErrRepositoryNotWired)
	assert.ErrorIs(t, s.Unpublish(ctx, "zh-CN"), domain.ErrRepositoryNotWired)
}

func TestLocaleService_Publish(t *testing.T) {
	repo := newMemoryRepo()
	s := newService(t, repo)

	require.NoError(t, s.Publish(context.Background(), "zh_CN"))
	doc, err := repo.FindByLocale(context.Background(), "zh-CN")
	require.NoError(t, err)
	assert.Equal(t, "toml", doc.Format)
	assert.Equal(t, checksum(doc.Body), doc.Checksum)
	assert.False(t, doc.UpdatedAt.IsZero())

	assert.ErrorIs(t, s.Publish(context.Background(), "de"), domain.ErrLocaleNotSupported)
}

func TestLocaleService_SyncSeedsEmptyStore(t *testing.T) {
	repo := newMemoryRepo()
	s := newService(t, repo)

	require.NoError(t, s.Sync(context.Background()))
	assert.Len(t, repo.docs, 2)
}

func TestLocaleService_SyncLoadsStoredTables(t *testing.T) {
	repo := newMemoryRepo()
	s := newService(t, repo)
	ctx := context.Background()
	require.NoError(t, s.PublishAll(ctx))
	require.NoError(t, s.SwitchActive("zh-CN"))

	// Edit the stored English copy; Sync must serve the stored version.
	doc := repo.docs["en-US"]
	doc.Body = []byte(strings.Replace(string(doc.Body), "AI Architecture Design", "Visual AI Design", -1))
	doc.Checksum = checksum(doc.Body)
	repo.docs["en-US"] = doc

	require.NoError(t, s.Sync(ctx))
	v, err := s.Get("en-US", "hero.title")
	require.NoError(t, err)
	assert.Equal(t, "Visual AI Design", v)
	assert.Equal(t, "zh-CN", s.Active())
}

func TestLocaleService_SyncRejectsBadDocuments(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(doc *output.LocaleDocument)
		is     error
	}{
		{
			name: "checksum",
			mutate: func(doc *output.LocaleDocument) {
				doc.Body = append(doc.Body, '\n', '#')
			},
		},
		{
			name: "format",
			mutate: func(doc *output.LocaleDocument) {
				doc.Format = "po"
				doc.Checksum = ""
			},
			is: domain.ErrUnsupportedFormat,
		},
		{
			name: "shape",
			mutate: func(doc *output.LocaleDocument) {
				doc.Body = []byte(strings.Replace(string(doc.Body), "badge =", "teaser =", 1))
				doc.Checksum = checksum(doc.Body)
			},
			is: domain.ErrStructuralMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			s := newService(t, repo)
			require.NoError(t, s.PublishAll(ctx))

			doc := repo.docs["zh-CN"]
			tt.mutate(&doc)
			repo.docs["zh-CN"] = doc

			err := s.Sync(ctx)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}

			v, err := s.Get("zh-CN", "hero.title")
			require.NoError(t, err)
			assert.Equal(t, "AI 架构设计", v)
		})
	}
}

func TestLocaleService_SyncListError(t *testing.T) {
	repo := newMemoryRepo()
	repo.listErr = errors.New("connection refused")
	s := newService(t, repo)
	assert.ErrorContains(t, s.Sync(context.Background()), "connection refused")
}

func TestLocaleService_Stored(t *testing.T) {
	repo := newMemoryRepo()
	s := newService(t, repo)
	ctx := context.Background()

	_, err := s.Stored(ctx, "zh-CN")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	require.NoError(t, s.Publish(ctx, "zh-CN"))
	doc, err := s.Stored(ctx, "zh_CN")
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", doc.Locale)
	assert.Equal(t, checksum(doc.Body), doc.Checksum)

	_, err = s.Stored(ctx, "!!")
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestLocaleService_Unpublish(t *testing.T) {
	repo := newMemoryRepo()
	s := newService(t, repo)
	ctx := context.Background()
	require.NoError(t, s.PublishAll(ctx))

	assert.ErrorIs(t, s.Unpublish(ctx, "en-US"), domain.ErrReferenceLocale)
	assert.ErrorIs(t, s.Unpublish(ctx, "de-DE"), domain.ErrDocumentNotFound)

	require.NoError(t, s.Unpublish(ctx, "zh-CN"))
	assert.NotContains(t, repo.docs, "zh-CN")

	require.NoError(t, s.Sync(ctx))
	assert.Equal(t, []string{"en-US"}, s.Locales().Locales)
	_, err := s.Get("zh-CN", "hero.title")
	assert.ErrorIs(t, err, domain.ErrLocaleNotSupported)
}
