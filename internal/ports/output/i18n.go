package output

// T resolves site copy for rendering surfaces. Unlike a locale table lookup it
// never fails: implementations fall back to the reference locale, then to key.
type T interface {
	// T renders the leaf at key for locale. data is passed to the
	// implementation's templating and may be nil.
	T(locale, key string, data map[string]any) string
}
