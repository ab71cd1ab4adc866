package service

import (
	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/parse"
	"github.com/mediakit-labs/mediakit/translate"
)

// Built-in service names.
const (
	MagicDetectorName     = "detect.magic"
	ExtensionDetectorName = "detect.extension"
	TextDetectorName      = "detect.text"
	CompositeDetectorName = "detect.composite"
	DefaultDetectorName   = "detect.default"

	TextParserName       = "parse.text"
	XMLParserName        = "parse.xml"
	EmptyParserName      = "parse.empty"
	CompositeParserName  = "parse.composite"
	DefaultParserName    = "parse.default"
	AutoDetectParserName = "parse.autodetect"

	DefaultTranslatorName    = "translate.default"
	DictionaryTranslatorName = "translate.dictionary"
)

// registerBuiltins populates r with every built-in implementation.
// Registration order decides default composition order.
func registerBuiltins(r *Resolver) {
	mustRegister := func(err error) {
		if err != nil {
			// Built-in names are fixed; a collision is a programming error.
			panic(err)
		}
	}

	mustRegister(r.Detectors.Register(Entry[detect.Detector]{
		Name:    MagicDetectorName,
		Default: true,
		New:     func() (detect.Detector, error) { return detect.MagicDetector{}, nil },
	}))
	mustRegister(r.Detectors.Register(Entry[detect.Detector]{
		Name:    ExtensionDetectorName,
		Default: true,
		New:     func() (detect.Detector, error) { return detect.ExtensionDetector{}, nil },
	}))
	mustRegister(r.Detectors.Register(Entry[detect.Detector]{
		Name:    TextDetectorName,
		Default: true,
		New:     func() (detect.Detector, error) { return detect.TextDetector{}, nil },
	}))
	mustRegister(r.Detectors.Register(Entry[detect.Detector]{
		Name: CompositeDetectorName,
		New:  func() (detect.Detector, error) { return detect.NewComposite(nil, nil), nil },
		Composite: &CompositeSpec[detect.Detector]{
			Children: func(reg *mediatype.Registry, children []detect.Detector) (detect.Detector, error) {
				return detect.NewComposite(reg, children), nil
			},
			List: func(children []detect.Detector) (detect.Detector, error) {
				return detect.NewComposite(nil, children), nil
			},
		},
	}))
	mustRegister(r.Detectors.Register(Entry[detect.Detector]{
		Name: DefaultDetectorName,
		New:  func() (detect.Detector, error) { return detect.NewComposite(nil, nil), nil },
		Composite: &CompositeSpec[detect.Detector]{
			FullRegistry: func(reg *mediatype.Registry, res *Resolver, excluded NameSet) (detect.Detector, error) {
				return res.DefaultDetector(reg, excluded)
			},
		},
	}))

	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name:    TextParserName,
		Default: true,
		New:     func() (parse.Parser, error) { return parse.TextParser{}, nil },
	}))
	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name:    XMLParserName,
		Default: true,
		New:     func() (parse.Parser, error) { return parse.XMLParser{}, nil },
	}))
	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name: EmptyParserName,
		New:  func() (parse.Parser, error) { return parse.EmptyParser{}, nil },
	}))
	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name: CompositeParserName,
		New:  func() (parse.Parser, error) { return parse.NewComposite(nil, nil), nil },
		Composite: &CompositeSpec[parse.Parser]{
			Children: func(reg *mediatype.Registry, children []parse.Parser) (parse.Parser, error) {
				return parse.NewComposite(reg, children), nil
			},
		},
	}))
	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name: DefaultParserName,
		New:  func() (parse.Parser, error) { return parse.NewComposite(nil, nil), nil },
		Composite: &CompositeSpec[parse.Parser]{
			FullRegistry: func(reg *mediatype.Registry, res *Resolver, excluded NameSet) (parse.Parser, error) {
				return res.DefaultParser(reg, excluded)
			},
		},
	}))
	mustRegister(r.Parsers.Register(Entry[parse.Parser]{
		Name:          AutoDetectParserName,
		BootstrapOnly: true,
		New: func() (parse.Parser, error) {
			reg := mediatype.NewDefaultRegistry()
			det := detect.NewComposite(reg, []detect.Detector{
				detect.MagicDetector{}, detect.ExtensionDetector{}, detect.TextDetector{},
			})
			p := parse.NewComposite(reg, []parse.Parser{
				parse.TextParser{}, parse.XMLParser{},
			})
			return parse.NewAutoDetect(reg, det, p), nil
		},
	}))

	mustRegister(r.Translators.Register(Entry[translate.Translator]{
		Name:    DefaultTranslatorName,
		Default: true,
		New:     func() (translate.Translator, error) { return translate.Default{}, nil },
	}))
	mustRegister(r.Translators.Register(Entry[translate.Translator]{
		Name: DictionaryTranslatorName,
		New:  func() (translate.Translator, error) { return translate.NewDictionary(), nil },
	}))
}
