package service

import (
	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/parse"
	"github.com/mediakit-labs/mediakit/translate"
)

// Resolver bundles the per-family catalogs handed to the
// configuration loader. A Resolver is populated before loading and
// treated as read-only afterwards.
type Resolver struct {
	Detectors   *Catalog[detect.Detector]
	Parsers     *Catalog[parse.Parser]
	Translators *Catalog[translate.Translator]
}

// NewResolver returns a resolver with empty catalogs.
func NewResolver() *Resolver {
	return &Resolver{
		Detectors:   NewCatalog[detect.Detector]("detector"),
		Parsers:     NewCatalog[parse.Parser]("parser"),
		Translators: NewCatalog[translate.Translator]("translator"),
	}
}

// NewDefaultResolver returns a resolver pre-populated with all
// built-in implementations.
func NewDefaultResolver() *Resolver {
	r := NewResolver()
	registerBuiltins(r)
	return r
}

// DefaultDetector assembles the built-in detector: a composite of the
// default-flagged detector services in registration order, minus the
// excluded names.
func (r *Resolver) DefaultDetector(reg *mediatype.Registry, excluded NameSet) (detect.Detector, error) {
	children, err := r.Detectors.Defaults(excluded)
	if err != nil {
		return nil, err
	}
	return detect.NewComposite(reg, children), nil
}

// DefaultParser assembles the built-in parser: a composite of the
// default-flagged parser services in registration order, minus the
// excluded names.
func (r *Resolver) DefaultParser(reg *mediatype.Registry, excluded NameSet) (parse.Parser, error) {
	children, err := r.Parsers.Defaults(excluded)
	if err != nil {
		return nil, err
	}
	return parse.NewComposite(reg, children), nil
}

// DefaultTranslator returns the first default-flagged translator
// service, or the built-in placeholder when none is registered.
func (r *Resolver) DefaultTranslator() (translate.Translator, error) {
	defaults, err := r.Translators.Defaults(nil)
	if err != nil {
		return nil, err
	}
	if len(defaults) > 0 {
		return defaults[0], nil
	}
	return translate.Default{}, nil
}
