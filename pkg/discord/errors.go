package discord

import "sitecopy/internal/domain"

// TranslateDomainError maps a domain error code to a user-facing message.
func TranslateDomainError(code string) string {
	switch code {
	case "missing_key":
		return "That key does not exist in this locale table."
	case "locale_not_supported":
		return "That locale is not supported."
	case "invalid_locale":
		return "That is not a valid locale identifier (try `en-US` or `zh-CN`)."
	case "structural_mismatch":
		return "The locale tables are out of sync with the reference locale."
	case "invalid_value":
		return "The locale table contains an invalid value."
	case "repository_not_configured":
		return "No locale store is configured."
	default:
		return "Something went wrong."
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(domain.Code(err))
}
