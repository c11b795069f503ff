package i18n

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
)

// PlaceholderURL marks a link whose target is not published yet.
const PlaceholderURL = "#"

func validateValues(locale string, data entities.LocaleTable) error {
	var errs []error
	if strings.TrimSpace(data.Site.Name) == "" {
		errs = append(errs, &domain.InvalidValueError{Locale: locale, Path: "site.name", Reason: "must not be empty"})
	}
	for _, section := range data.Footer.Links.Sections() {
		for i, link := range section.Items {
			if !ValidLinkURL(link.URL) {
				errs = append(errs, &domain.InvalidValueError{
					Locale: locale,
					Path:   "footer.links." + section.Key + ".items[" + strconv.Itoa(i) + "].url",
					Reason: "not a valid URL or " + PlaceholderURL,
				})
			}
		}
	}
	return errors.Join(errs...)
}

// ValidLinkURL accepts the placeholder, absolute URLs with a scheme, and
// site-relative paths.
func ValidLinkURL(s string) bool {
	if s == PlaceholderURL {
		return true
	}
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "" {
		return u.Host != "" || u.Opaque != ""
	}
	return strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")
}

// Compare lists every structural difference of candidate against reference.
func Compare(reference, candidate *Table) []domain.Mismatch {
	var out []domain.Mismatch
	diff(reference.tree, candidate.tree, nil, &out)
	return out
}

// CheckStructure returns a *domain.StructuralMismatchError when candidate's
// shape diverges from reference.
func CheckStructure(reference, candidate *Table) error {
	if mm := Compare(reference, candidate); len(mm) > 0 {
		return &domain.StructuralMismatchError{
			Locale:     candidate.locale.String(),
			Reference:  reference.locale.String(),
			Mismatches: mm,
		}
	}
	return nil
}
