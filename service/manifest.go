package service

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

//go:embed schema/services.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// Manifest declares startup adjustments to a resolver: which services
// are enabled and which participate in the default composites. It is
// the declarative counterpart of calling Remove and SetDefault by
// hand.
type Manifest struct {
	// Requires is an optional semver constraint on the toolkit
	// version, e.g. ">= 1.2".
	Requires string `yaml:"requires"`

	// Services maps a capability family ("detector", "parser",
	// "translator") to its rules, applied in order.
	Services map[string][]ServiceRule `yaml:"services"`
}

// ServiceRule adjusts one registered service.
type ServiceRule struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"`
	Default *bool  `yaml:"default"`
}

// getSchema compiles the embedded manifest schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("services.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("services.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ParseManifest validates raw YAML manifest bytes against the embedded
// schema and decodes them.
func ParseManifest(data []byte) (*Manifest, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading manifest schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing service manifest: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting manifest to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing manifest for validation: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("invalid service manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing service manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads, validates, and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading service manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// Apply checks the manifest's version constraint against
// toolkitVersion and applies its rules to r. A rule with
// enabled: false removes the service; a default flag flips its
// participation in the built-in default composite.
func (m *Manifest) Apply(r *Resolver, toolkitVersion string) error {
	if m.Requires != "" {
		constraint, err := semver.NewConstraint(m.Requires)
		if err != nil {
			return fmt.Errorf("manifest requires %q: %w", m.Requires, err)
		}
		v, err := semver.NewVersion(toolkitVersion)
		if err != nil {
			return fmt.Errorf("parsing toolkit version %q: %w", toolkitVersion, err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("manifest requires toolkit %q, running %s", m.Requires, v)
		}
	}

	for family, rules := range m.Services {
		for _, rule := range rules {
			var err error
			switch family {
			case "detector":
				err = applyRule(r.Detectors, rule)
			case "parser":
				err = applyRule(r.Parsers, rule)
			case "translator":
				err = applyRule(r.Translators, rule)
			default:
				err = fmt.Errorf("unknown capability family %q", family)
			}
			if err != nil {
				return fmt.Errorf("applying manifest rule for %s %q: %w", family, rule.Name, err)
			}
		}
	}
	return nil
}

func applyRule[T any](c *Catalog[T], rule ServiceRule) error {
	if rule.Enabled != nil && !*rule.Enabled {
		return c.Remove(rule.Name)
	}
	if rule.Default != nil {
		return c.SetDefault(rule.Name, *rule.Default)
	}
	return nil
}
