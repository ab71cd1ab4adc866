// Package parse defines the parser capability: extracting structured
// content from a byte stream of a known media type.
package parse

import (
	"context"
	"errors"
	"io"

	"github.com/mediakit-labs/mediakit/mediatype"
)

// ErrUnsupportedType is returned when no parser claims the input type.
var ErrUnsupportedType = errors.New("parse: unsupported media type")

// Content carries the structured output of a parse: extracted text
// plus free-form metadata.
type Content struct {
	Text     string
	Metadata map[string]string
}

// NewContent returns an empty Content ready to be filled.
func NewContent() *Content {
	return &Content{Metadata: make(map[string]string)}
}

// Set records a metadata key, allocating the map on first use.
func (c *Content) Set(key, value string) {
	if c.Metadata == nil {
		c.Metadata = make(map[string]string)
	}
	c.Metadata[key] = value
}

// Parser extracts content from a byte stream.
type Parser interface {
	// SupportedTypes returns the media types this parser advertises.
	SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType

	// Parse reads r, which holds content of type mt, into out.
	Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error
}

// MultiParser is the multi-parser dispatch capability: a parser that
// routes each media type to one of an ordered list of child parsers.
type MultiParser interface {
	Parser

	// Parsers returns the dispatch table from media type to the child
	// responsible for it.
	Parsers() map[mediatype.MediaType]Parser
}

// Wrapper is the type-narrowing decorator capability: a parser that
// wraps exactly one inner parser, altering only the advertised types.
type Wrapper interface {
	Parser

	// Inner returns the wrapped parser.
	Inner() Parser
}
