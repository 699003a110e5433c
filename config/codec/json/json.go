package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultIndent is the per-level indentation of encoded documents.
const DefaultIndent = "  "

// ErrEmptyData is returned when the input data is empty or whitespace only.
var ErrEmptyData = errors.New("empty data")

// ErrSectionNotFound is returned when the requested section is not present in the document.
var ErrSectionNotFound = errors.New("section not found")

// ErrTrailingData is returned when more data follows the top-level JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Codec implements config.Parser and config.Encoder for JSON data.
type Codec struct {
	indent string
	strict bool
}

// Option defines a function type for configuring a Codec.
type Option func(*Codec)

// WithIndent sets the indentation used by Encode. An empty indent keeps DefaultIndent.
func WithIndent(indent string) Option {
	return func(c *Codec) {
		if indent != "" {
			c.indent = indent
		}
	}
}

// WithStrict makes Parse reject object keys that do not map to a field of the target.
func WithStrict() Option {
	return func(c *Codec) {
		c.strict = true
	}
}

// NewCodec creates a new JSON codec instance.
func NewCodec(opts ...Option) *Codec {
	codec := &Codec{
		indent: DefaultIndent,
		strict: false,
	}

	for _, apply := range opts {
		apply(codec)
	}

	return codec
}

// Parse decodes JSON data into target.
// The section parameter specifies a navigation path using colon (:) as separator.
// Empty section parses the entire document.
func (c *Codec) Parse(data []byte, target any, section string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if section != "" {
		extracted, err := extractSection(data, section)
		if err != nil {
			return err
		}

		data = extracted
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if c.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}

// Encode returns the indented JSON encoding of value followed by a newline.
// HTML characters are written as is.
func (c *Codec) Encode(value any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", c.indent)

	err := encoder.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return buf.Bytes(), nil
}

// extractSection returns the raw JSON text of the value found at section.
// The section is checked with the goccy/go-yaml path parser and then resolved one
// object key at a time over json.RawMessage, so the located value keeps its exact
// source text (number spelling included).
func extractSection(data []byte, section string) ([]byte, error) {
	_, err := yaml.PathString(convertToYAMLPath(section))
	if err != nil {
		return nil, fmt.Errorf("invalid section %q: %w", section, err)
	}

	var current json.RawMessage

	err = json.Unmarshal(data, &current)
	if err != nil {
		return nil, fmt.Errorf("reading section %q: %w", section, err)
	}

	for _, key := range strings.Split(section, ":") {
		var object map[string]json.RawMessage

		err = json.Unmarshal(current, &object)
		if err != nil || object == nil {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		value, found := object[key]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		current = value
	}

	return current, nil
}

// convertToYAMLPath converts a colon-separated section to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(section string) string {
	parts := strings.Split(section, ":")

	return "$." + strings.Join(parts, ".")
}
