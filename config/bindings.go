package config

import (
	"strings"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/parse"
	"github.com/mediakit-labs/mediakit/service"
)

// detectorBinding drives the generic loader for the detector family.
// Detectors have no decoration step.
func detectorBinding() binding[detect.Detector] {
	return binding[detect.Detector]{
		parentTag: "detectors",
		itemTag:   "detector",
		catalog: func(res *service.Resolver) *service.Catalog[detect.Detector] {
			return res.Detectors
		},
		isComposite: func(d detect.Detector) bool {
			_, ok := d.(detect.MultiDetector)
			return ok
		},
		createDefault: func(reg *mediatype.Registry, res *service.Resolver) (detect.Detector, error) {
			return res.DefaultDetector(reg, nil)
		},
		createComposite: func(reg *mediatype.Registry, res *service.Resolver, children []detect.Detector) (detect.Detector, error) {
			return detect.NewComposite(reg, children), nil
		},
		decorate: func(d detect.Detector, n *Node) (detect.Detector, error) {
			return d, nil
		},
	}
}

// parserBinding drives the generic loader for the parser family. A
// parser counts as composite when it either dispatches to multiple
// children or is a type-narrowing wrapper; decoration applies the
// element's <mime> and <mime-exclude> lists.
func parserBinding() binding[parse.Parser] {
	return binding[parse.Parser]{
		parentTag: "parsers",
		itemTag:   "parser",
		catalog: func(res *service.Resolver) *service.Catalog[parse.Parser] {
			return res.Parsers
		},
		isComposite: func(p parse.Parser) bool {
			if _, ok := p.(parse.MultiParser); ok {
				return true
			}
			_, ok := p.(parse.Wrapper)
			return ok
		},
		createDefault: func(reg *mediatype.Registry, res *service.Resolver) (parse.Parser, error) {
			return res.DefaultParser(reg, nil)
		},
		createComposite: func(reg *mediatype.Registry, res *service.Resolver, children []parse.Parser) (parse.Parser, error) {
			return parse.NewComposite(reg, children), nil
		},
		decorate: decorateParser,
	}
}

// decorateParser wraps p according to the element's explicit media
// type lists: an inclusion list narrows the advertised types to
// exactly that list, then an exclusion list subtracts further.
func decorateParser(p parse.Parser, n *Node) (parse.Parser, error) {
	include, err := mediaTypeList(n, "mime")
	if err != nil {
		return nil, err
	}
	exclude, err := mediaTypeList(n, "mime-exclude")
	if err != nil {
		return nil, err
	}
	if len(include) > 0 {
		p = parse.WithTypes(p, include)
	}
	if len(exclude) > 0 {
		p = parse.WithoutTypes(p, exclude)
	}
	return p, nil
}

// mediaTypeList parses the text content of n's direct children with
// the given tag into media types. Malformed names are fatal.
func mediaTypeList(n *Node, tag string) ([]mediatype.MediaType, error) {
	var types []mediatype.MediaType
	for _, child := range n.directChildren(tag) {
		text := strings.TrimSpace(child.Text)
		mt, err := mediatype.Parse(text)
		if err != nil {
			return nil, loadErrorf(err, "invalid media type in <%s>", tag)
		}
		types = append(types, mt)
	}
	return types, nil
}
