// Package mediatype defines media type identifiers and the registry of
// known types, their aliases, and their supertype relationships.
package mediatype

import (
	"fmt"
	"strings"
)

// MediaType identifies a content type such as "application/pdf".
// The zero value is not a valid media type; use Parse or New.
type MediaType struct {
	typ string
	sub string
}

// Well-known media types.
var (
	OctetStream = MediaType{"application", "octet-stream"}
	PlainText   = MediaType{"text", "plain"}
	HTML        = MediaType{"text", "html"}
	CSV         = MediaType{"text", "csv"}
	XML         = MediaType{"application", "xml"}
	JSON        = MediaType{"application", "json"}
	PDF         = MediaType{"application", "pdf"}
	Zip         = MediaType{"application", "zip"}
	GZip        = MediaType{"application", "gzip"}
	PNG         = MediaType{"image", "png"}
	JPEG        = MediaType{"image", "jpeg"}
	GIF         = MediaType{"image", "gif"}
)

// New builds a media type from an already-normalized type and subtype.
func New(typ, subtype string) MediaType {
	return MediaType{strings.ToLower(typ), strings.ToLower(subtype)}
}

// Parse parses a "type/subtype" string into a MediaType. Parameters
// after a ";" are dropped. It returns an error for anything that does
// not have exactly one slash with non-empty halves.
func Parse(s string) (MediaType, error) {
	base := s
	if i := strings.IndexByte(base, ';'); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(strings.ToLower(base))

	typ, sub, ok := strings.Cut(base, "/")
	if !ok || typ == "" || sub == "" || strings.ContainsAny(sub, "/ \t") {
		return MediaType{}, fmt.Errorf("invalid media type name %q", s)
	}
	return MediaType{typ, sub}, nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) MediaType {
	mt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// Type returns the primary type, e.g. "application".
func (mt MediaType) Type() string { return mt.typ }

// Subtype returns the subtype, e.g. "pdf".
func (mt MediaType) Subtype() string { return mt.sub }

// IsZero reports whether mt is the zero value.
func (mt MediaType) IsZero() bool { return mt.typ == "" && mt.sub == "" }

// String returns the normalized "type/subtype" form.
func (mt MediaType) String() string { return mt.typ + "/" + mt.sub }
