package parse

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mediakit-labs/mediakit/mediatype"
)

// maxContent bounds how much input the built-in parsers will read.
const maxContent = 4 << 20

// TextParser extracts plain text verbatim.
type TextParser struct{}

// SupportedTypes implements Parser.
func (TextParser) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.PlainText}
}

// Parse implements Parser.
func (TextParser) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(io.LimitReader(r, maxContent))
	if err != nil {
		return fmt.Errorf("reading text content: %w", err)
	}
	out.Text = string(data)
	out.Set("content-type", mt.String())
	return nil
}

// XMLParser extracts the character data of an XML document.
type XMLParser struct{}

// SupportedTypes implements Parser.
func (XMLParser) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.XML}
}

// Parse implements Parser.
func (XMLParser) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dec := xml.NewDecoder(io.LimitReader(r, maxContent))
	var sb strings.Builder
	var root string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("parsing XML content: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root == "" {
				root = t.Name.Local
			}
		case xml.CharData:
			sb.Write(t)
		}
	}
	out.Text = strings.TrimSpace(sb.String())
	out.Set("content-type", mt.String())
	if root != "" {
		out.Set("xml:root", root)
	}
	return nil
}

// EmptyParser claims no types and extracts nothing. It is the inert
// placeholder used when a configuration wants a registered name that
// deliberately does nothing.
type EmptyParser struct{}

// SupportedTypes implements Parser.
func (EmptyParser) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	return nil
}

// Parse implements Parser.
func (EmptyParser) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	return nil
}
