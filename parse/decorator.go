package parse

import (
	"context"
	"io"

	"github.com/mediakit-labs/mediakit/mediatype"
)

// typeFilter narrows the advertised types of an inner parser without
// touching its parse logic. Exactly one of include or exclude is set.
type typeFilter struct {
	inner   Parser
	include []mediatype.MediaType
	exclude []mediatype.MediaType
}

// WithTypes wraps p so it advertises exactly the given types.
func WithTypes(p Parser, types []mediatype.MediaType) Parser {
	return &typeFilter{inner: p, include: types}
}

// WithoutTypes wraps p so it advertises its own types minus the given
// ones.
func WithoutTypes(p Parser, types []mediatype.MediaType) Parser {
	return &typeFilter{inner: p, exclude: types}
}

// Inner implements Wrapper.
func (f *typeFilter) Inner() Parser {
	return f.inner
}

// SupportedTypes implements Parser.
func (f *typeFilter) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	if f.include != nil {
		types := make([]mediatype.MediaType, 0, len(f.include))
		for _, mt := range f.include {
			types = append(types, reg.Normalize(mt))
		}
		return types
	}

	dropped := make(map[mediatype.MediaType]bool, len(f.exclude))
	for _, mt := range f.exclude {
		dropped[reg.Normalize(mt)] = true
	}
	var types []mediatype.MediaType
	for _, mt := range f.inner.SupportedTypes(reg) {
		if !dropped[reg.Normalize(mt)] {
			types = append(types, mt)
		}
	}
	return types
}

// Parse implements Parser by delegating to the inner parser.
func (f *typeFilter) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	return f.inner.Parse(ctx, r, mt, out)
}
