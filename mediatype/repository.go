package mediatype

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// repositoryFile is the on-disk YAML shape of a custom type repository.
type repositoryFile struct {
	Types []typeDecl `yaml:"types"`
}

type typeDecl struct {
	Type    string   `yaml:"type"`
	Aliases []string `yaml:"aliases"`
	Super   string   `yaml:"super"`
}

// LoadRepository reads a YAML type-repository file and builds a
// Registry from it. The declared types replace the built-in table;
// only the structural roots (application/octet-stream, text/plain)
// are always present.
func LoadRepository(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading type repository %s: %w", path, err)
	}
	return ParseRepository(data)
}

// ParseRepository builds a Registry from raw YAML repository bytes.
func ParseRepository(data []byte) (*Registry, error) {
	var file repositoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing type repository: %w", err)
	}

	r := NewRegistry()
	r.AddType(OctetStream)
	r.AddType(PlainText)
	for _, decl := range file.Types {
		mt, err := Parse(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("type repository: %w", err)
		}
		r.AddType(mt)
		for _, alias := range decl.Aliases {
			a, err := Parse(alias)
			if err != nil {
				return nil, fmt.Errorf("type repository: alias of %s: %w", mt, err)
			}
			r.AddAlias(a, mt)
		}
		if decl.Super != "" {
			super, err := Parse(decl.Super)
			if err != nil {
				return nil, fmt.Errorf("type repository: super of %s: %w", mt, err)
			}
			r.AddSupertype(mt, super)
		}
	}
	return r, nil
}
