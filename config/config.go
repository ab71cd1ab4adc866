// Package config assembles a runtime object graph of detectors,
// parsers, and a translator from a declarative XML configuration
// document, resolving declared service names through an explicit
// service resolver.
//
// The recognized document shape is:
//
//	<config>
//	  <mimeTypeRepository resource="types.yaml"/>
//	  <detectors>
//	    <detector class="detect.composite">
//	      <detector class="detect.magic"/>
//	      <detector-exclude class="detect.text"/>
//	    </detector>
//	  </detectors>
//	  <parsers>
//	    <parser class="parse.text">
//	      <mime>text/plain</mime>
//	      <mime-exclude>text/html</mime-exclude>
//	    </parser>
//	  </parsers>
//	  <translator class="translate.default"/>
//	</config>
//
// Loading is fail-fast: any structure, resolution, or construction
// failure aborts the whole load with a *Error and no partial result.
package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/parse"
	"github.com/mediakit-labs/mediakit/service"
	"github.com/mediakit-labs/mediakit/translate"
)

// Config is the finished, immutable configuration: a type registry,
// one detector, one parser, and one translator. Once built it is safe
// for concurrent use.
type Config struct {
	registry   *mediatype.Registry
	detector   detect.Detector
	parser     parse.Parser
	translator translate.Translator
}

// Registry returns the configured media type registry.
func (c *Config) Registry() *mediatype.Registry { return c.registry }

// Detector returns the configured detector instance.
func (c *Config) Detector() detect.Detector { return c.detector }

// Parser returns the configured parser instance.
func (c *Config) Parser() parse.Parser { return c.parser }

// Translator returns the configured translator instance.
func (c *Config) Translator() translate.Translator { return c.translator }

// Options adjusts how a configuration document is loaded.
type Options struct {
	// Resolver supplies the service name lookups. Defaults to the
	// built-in resolver.
	Resolver *service.Resolver

	// BaseDir anchors relative resource paths such as the media type
	// repository. LoadFile fills it from the document's directory.
	BaseDir string
}

func (o *Options) normalized() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Resolver == nil {
		opts.Resolver = service.NewDefaultResolver()
	}
	return opts
}

// Load reads and assembles a configuration document from r.
func Load(r io.Reader, opts *Options) (*Config, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, loadErrorf(err, "configuration has syntax errors")
	}
	return FromNode(root, opts)
}

// LoadFile reads and assembles the configuration document at path.
// Relative resource references resolve against the file's directory.
func LoadFile(path string, opts *Options) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErrorf(err, "unable to read configuration %q", path)
	}
	defer f.Close()

	o := opts.normalized()
	if o.BaseDir == "" {
		o.BaseDir = filepath.Dir(path)
	}
	return Load(f, &o)
}

// LoadURL fetches and assembles a configuration document over HTTP.
func LoadURL(url string, opts *Options) (*Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, loadErrorf(err, "unable to fetch configuration %q", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, loadErrorf(nil, "unable to fetch configuration %q: %s", url, resp.Status)
	}
	return Load(resp.Body, opts)
}

// FromNode assembles a configuration from an already-parsed root
// element.
func FromNode(root *Node, opts *Options) (*Config, error) {
	o := opts.normalized()
	res := o.Resolver

	registry, err := registryFromNode(root, o.BaseDir)
	if err != nil {
		return nil, err
	}
	detector, err := loadOverall(root, registry, res, detectorBinding())
	if err != nil {
		return nil, err
	}
	parser, err := loadOverall(root, registry, res, parserBinding())
	if err != nil {
		return nil, err
	}
	translator, err := translatorFromNode(root, res)
	if err != nil {
		return nil, err
	}

	return &Config{
		registry:   registry,
		detector:   detector,
		parser:     parser,
		translator: translator,
	}, nil
}

// NewDefault assembles the all-defaults configuration without a
// document: built-in registry, default detector and parser composites,
// and the default translator.
func NewDefault(res *service.Resolver) (*Config, error) {
	if res == nil {
		res = service.NewDefaultResolver()
	}
	registry := mediatype.NewDefaultRegistry()
	detector, err := res.DefaultDetector(registry, nil)
	if err != nil {
		return nil, loadErrorf(err, "unable to build the default detector")
	}
	parser, err := res.DefaultParser(registry, nil)
	if err != nil {
		return nil, loadErrorf(err, "unable to build the default parser")
	}
	translator, err := res.DefaultTranslator()
	if err != nil {
		return nil, loadErrorf(err, "unable to build the default translator")
	}
	return &Config{
		registry:   registry,
		detector:   detector,
		parser:     parser,
		translator: translator,
	}, nil
}

// registryFromNode extracts the media type registry: a custom YAML
// repository when <mimeTypeRepository resource="..."/> is present,
// the built-in table otherwise.
func registryFromNode(root *Node, baseDir string) (*mediatype.Registry, error) {
	mtr := root.child("mimeTypeRepository")
	if mtr == nil || mtr.Resource == "" {
		return mediatype.NewDefaultRegistry(), nil
	}
	path := mtr.Resource
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	registry, err := mediatype.LoadRepository(path)
	if err != nil {
		return nil, loadErrorf(err, "unable to load media type repository %q", mtr.Resource)
	}
	return registry, nil
}

// translatorFromNode resolves the <translator> declarations. Every
// declared name must resolve and construct, but only the first in
// document order is used; later ones are accepted and ignored. That
// asymmetry with the strict duplicate checking of <parsers> and
// <detectors> is preserved for compatibility.
func translatorFromNode(root *Node, res *service.Resolver) (translate.Translator, error) {
	var first translate.Translator
	for _, n := range root.descendants("translator") {
		tr, err := res.Translators.New(n.Class)
		if err != nil {
			return nil, loadErrorf(err, "unable to create a translator service %q", n.Class)
		}
		if first == nil {
			first = tr
		}
	}
	if first == nil {
		tr, err := res.DefaultTranslator()
		if err != nil {
			return nil, loadErrorf(err, "unable to build the default translator")
		}
		return tr, nil
	}
	return first, nil
}

// String summarizes the configuration for diagnostics.
func (c *Config) String() string {
	return fmt.Sprintf("config{types=%d, detector=%T, parser=%T, translator=%T}",
		len(c.registry.Types()), c.detector, c.parser, c.translator)
}
