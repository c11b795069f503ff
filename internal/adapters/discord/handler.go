package discord

import (
	"sitecopy/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	locales input.LocaleUseCase
}

// NewHandler creates a Handler.
func NewHandler(locales input.LocaleUseCase) *Handler {
	return &Handler{locales: locales}
}
