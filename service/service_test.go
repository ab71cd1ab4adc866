package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/parse"
)

func TestCatalogLookupAndAliases(t *testing.T) {
	c := NewCatalog[detect.Detector]("detector")
	err := c.Register(Entry[detect.Detector]{
		Name:    "detect.magic",
		Aliases: []string{"magic"},
		New:     func() (detect.Detector, error) { return detect.MagicDetector{}, nil },
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, name := range []string{"detect.magic", "magic"} {
		e, err := c.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if e.Name != "detect.magic" {
			t.Errorf("Lookup(%q).Name = %q, want detect.magic", name, e.Name)
		}
	}
}

func TestCatalogUnknownName(t *testing.T) {
	c := NewCatalog[detect.Detector]("detector")
	_, err := c.Lookup("com.example.Unknown")
	if !errors.Is(err, ErrUnknownService) {
		t.Errorf("Lookup error = %v, want ErrUnknownService", err)
	}
}

func TestCatalogNotConstructible(t *testing.T) {
	c := NewCatalog[detect.Detector]("detector")
	if err := c.Register(Entry[detect.Detector]{
		Name: "detect.broken",
		New:  func() (detect.Detector, error) { return nil, fmt.Errorf("boom") },
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := c.New("detect.broken")
	if !errors.Is(err, ErrNotConstructible) {
		t.Errorf("New error = %v, want ErrNotConstructible", err)
	}
	if errors.Is(err, ErrUnknownService) {
		t.Error("construction failure must stay distinct from unknown name")
	}
}

func TestCatalogDuplicateRegistration(t *testing.T) {
	c := NewCatalog[detect.Detector]("detector")
	e := Entry[detect.Detector]{
		Name: "detect.magic",
		New:  func() (detect.Detector, error) { return detect.MagicDetector{}, nil },
	}
	if err := c.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Register(e); !errors.Is(err, ErrDuplicateService) {
		t.Errorf("second Register error = %v, want ErrDuplicateService", err)
	}
}

func TestDefaultsOrderAndExclusion(t *testing.T) {
	r := NewDefaultResolver()
	reg := mediatype.NewDefaultRegistry()

	d, err := r.DefaultDetector(reg, nil)
	if err != nil {
		t.Fatalf("DefaultDetector: %v", err)
	}
	composite, ok := d.(*detect.CompositeDetector)
	if !ok {
		t.Fatalf("DefaultDetector returned %T, want *detect.CompositeDetector", d)
	}
	if got := len(composite.Detectors()); got != 3 {
		t.Fatalf("default detector children = %d, want 3", got)
	}
	if _, ok := composite.Detectors()[0].(detect.MagicDetector); !ok {
		t.Errorf("first default child = %T, want MagicDetector", composite.Detectors()[0])
	}

	d, err = r.DefaultDetector(reg, NewNameSet(MagicDetectorName))
	if err != nil {
		t.Fatalf("DefaultDetector(excluded): %v", err)
	}
	composite = d.(*detect.CompositeDetector)
	if got := len(composite.Detectors()); got != 2 {
		t.Fatalf("excluded default detector children = %d, want 2", got)
	}
	for _, child := range composite.Detectors() {
		if _, ok := child.(detect.MagicDetector); ok {
			t.Error("excluded detector still present in defaults")
		}
	}
}

func TestDefaultParserComposition(t *testing.T) {
	r := NewDefaultResolver()
	reg := mediatype.NewDefaultRegistry()

	p, err := r.DefaultParser(reg, nil)
	if err != nil {
		t.Fatalf("DefaultParser: %v", err)
	}
	composite, ok := p.(*parse.CompositeParser)
	if !ok {
		t.Fatalf("DefaultParser returned %T, want *parse.CompositeParser", p)
	}
	table := composite.Parsers()
	if _, ok := table[mediatype.PlainText]; !ok {
		t.Error("default parser should claim text/plain")
	}
	if _, ok := table[mediatype.XML]; !ok {
		t.Error("default parser should claim application/xml")
	}
}

func TestAutoDetectEntryIsBootstrapOnly(t *testing.T) {
	r := NewDefaultResolver()
	e, err := r.Parsers.Lookup(AutoDetectParserName)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !e.BootstrapOnly {
		t.Error("auto-detect parser entry must be bootstrap-only")
	}
	if _, err := e.New(); err != nil {
		t.Errorf("auto-detect bootstrap construction failed: %v", err)
	}
}

func TestManifestApply(t *testing.T) {
	r := NewDefaultResolver()
	m, err := ParseManifest([]byte(`
requires: ">= 0.5.0"
services:
  detector:
    - name: detect.text
      default: false
  parser:
    - name: parse.xml
      enabled: false
    - name: parse.empty
      default: true
`))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if err := m.Apply(r, "1.0.0"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := r.Parsers.Lookup("parse.xml"); !errors.Is(err, ErrUnknownService) {
		t.Error("disabled parser should be removed from the catalog")
	}
	defaults, err := r.Detectors.Defaults(nil)
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if len(defaults) != 2 {
		t.Errorf("detector defaults = %d, want 2 after demoting detect.text", len(defaults))
	}
	e, _ := r.Parsers.Lookup("parse.empty")
	if !e.Default {
		t.Error("parse.empty should be promoted to default")
	}
}

func TestManifestRequiresRejectsOldToolkit(t *testing.T) {
	m, err := ParseManifest([]byte("requires: \">= 2.0.0\"\n"))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if err := m.Apply(NewDefaultResolver(), "1.3.0"); err == nil {
		t.Error("Apply accepted a toolkit older than the requires constraint")
	}
}

func TestManifestSchemaRejectsUnknownFields(t *testing.T) {
	_, err := ParseManifest([]byte("services:\n  parser:\n    - name: parse.text\n      priority: 3\n"))
	if err == nil {
		t.Error("ParseManifest accepted a rule with an unknown field")
	}
}
