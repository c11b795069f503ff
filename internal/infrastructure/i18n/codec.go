package i18n

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"sitecopy/internal/domain"
)

// Codec reads and writes one locale file format.
type Codec struct {
	Format    string
	Unmarshal func(data []byte, v any) error
	Marshal   func(v any) ([]byte, error)
}

// DefaultFormat is the storage format for embedded and persisted tables.
const DefaultFormat = "toml"

var codecs = map[string]Codec{
	"toml": {Format: "toml", Unmarshal: toml.Unmarshal, Marshal: toml.Marshal},
	"yaml": {Format: "yaml", Unmarshal: yaml.Unmarshal, Marshal: yaml.Marshal},
	"json": {Format: "json", Unmarshal: json.Unmarshal, Marshal: func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	}},
}

func init() {
	codecs["yml"] = codecs["yaml"]
}

// CodecFor returns the codec registered for format, which may be given as a
// bare name ("toml") or a file extension (".toml").
func CodecFor(format string) (Codec, error) {
	c, ok := codecs[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return c, nil
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// codecForFile picks a codec from a file name's extension.
func codecForFile(name string) (Codec, error) {
	return CodecFor(filepath.Ext(name))
}
