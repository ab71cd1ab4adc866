// Package service implements the resolver that maps declared service
// names to constructible detector, parser, and translator
// implementations. The mapping is an explicit registry populated at
// startup, not a reflective lookup: each entry names the construction
// shapes its implementation supports, and the configuration loader
// queries them in a fixed priority order.
package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mediakit-labs/mediakit/mediatype"
)

var (
	// ErrUnknownService is returned when a declared name is not
	// registered for the capability family it was looked up in.
	ErrUnknownService = errors.New("service: unknown service name")

	// ErrNotConstructible is returned when a name resolves to an entry
	// that cannot produce an instance.
	ErrNotConstructible = errors.New("service: service cannot be constructed")

	// ErrDuplicateService is returned when a name or alias is
	// registered twice within one family.
	ErrDuplicateService = errors.New("service: duplicate service name")
)

// NameSet is a set of service names, used for composition exclusions.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name.
func (s NameSet) Add(name string) { s[name] = struct{}{} }

// Has reports membership.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Entry describes one registered implementation of a capability family.
type Entry[T any] struct {
	// Name is the canonical service name declared in configuration
	// documents, e.g. "detect.magic".
	Name string

	// Aliases are alternate names resolving to this entry.
	Aliases []string

	// Default marks the entry as part of the family's built-in default
	// composite.
	Default bool

	// BootstrapOnly marks an entry that exists as a bootstrap
	// convenience and may never be declared in a configuration
	// document. Loading a document that names it fails.
	BootstrapOnly bool

	// New constructs an instance with no arguments. Required.
	New func() (T, error)

	// Composite, when non-nil, marks the implementation as a composite
	// or decorator and carries its richer construction shapes.
	Composite *CompositeSpec[T]
}

// CompositeSpec lists the construction shapes a composite or decorator
// implementation supports. The loader tries the non-nil shapes in
// field order and uses the first one; when none is set it falls back
// to the entry's plain New.
type CompositeSpec[T any] struct {
	// FullRegistry builds the composite from the whole resolver,
	// subtracting the excluded names.
	FullRegistry func(reg *mediatype.Registry, res *Resolver, excluded NameSet) (T, error)

	// ChildrenExcluded builds the composite from explicit children.
	// The excluded set is passed along for implementations that also
	// fold in defaults.
	ChildrenExcluded func(reg *mediatype.Registry, children []T, excluded NameSet) (T, error)

	// Children builds the composite from explicit children only.
	Children func(reg *mediatype.Registry, children []T) (T, error)

	// List builds the composite from a bare child list. Only the
	// detector family uses this shape.
	List func(children []T) (T, error)

	// Decorator marks an implementation wrapping exactly one inner
	// instance; Wrap performs that wrapping. Used only when none of
	// the shapes above apply.
	Decorator bool
	Wrap      func(inner T) (T, error)
}

// Catalog is the ordered name registry for one capability family.
type Catalog[T any] struct {
	family  string
	order   []string
	entries map[string]*Entry[T] // canonical names and aliases
}

// NewCatalog returns an empty catalog for the named family
// ("detector", "parser", "translator").
func NewCatalog[T any](family string) *Catalog[T] {
	return &Catalog[T]{family: family, entries: make(map[string]*Entry[T])}
}

// Family returns the capability family name.
func (c *Catalog[T]) Family() string { return c.family }

// Register adds an entry. Every name and alias must be unique within
// the catalog, and New must be set.
func (c *Catalog[T]) Register(e Entry[T]) error {
	if e.Name == "" {
		return fmt.Errorf("registering %s service: empty name", c.family)
	}
	if e.New == nil {
		return fmt.Errorf("registering %s service %q: nil constructor", c.family, e.Name)
	}
	for _, name := range append([]string{e.Name}, e.Aliases...) {
		if _, exists := c.entries[name]; exists {
			return fmt.Errorf("registering %s service %q: %w", c.family, name, ErrDuplicateService)
		}
	}
	entry := e
	c.entries[e.Name] = &entry
	for _, alias := range e.Aliases {
		c.entries[alias] = &entry
	}
	c.order = append(c.order, e.Name)
	return nil
}

// Lookup resolves a declared name (or alias) to its entry.
func (c *Catalog[T]) Lookup(name string) (*Entry[T], error) {
	if e, ok := c.entries[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s %q", ErrUnknownService, c.family, name)
}

// New resolves a name and constructs a plain instance of it.
func (c *Catalog[T]) New(name string) (T, error) {
	var zero T
	e, err := c.Lookup(name)
	if err != nil {
		return zero, err
	}
	inst, err := e.New()
	if err != nil {
		return zero, fmt.Errorf("%w: %s %q: %v", ErrNotConstructible, c.family, e.Name, err)
	}
	return inst, nil
}

// Defaults constructs the default-flagged entries in registration
// order, skipping the excluded names.
func (c *Catalog[T]) Defaults(excluded NameSet) ([]T, error) {
	var out []T
	for _, name := range c.order {
		e := c.entries[name]
		if !e.Default || excluded.Has(e.Name) {
			continue
		}
		inst, err := e.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %v", ErrNotConstructible, c.family, e.Name, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

// Names returns the canonical registered names in sorted order.
func (c *Catalog[T]) Names() []string {
	names := append([]string(nil), c.order...)
	sort.Strings(names)
	return names
}

// SetDefault flips the Default flag on a registered entry.
func (c *Catalog[T]) SetDefault(name string, isDefault bool) error {
	e, err := c.Lookup(name)
	if err != nil {
		return err
	}
	e.Default = isDefault
	return nil
}

// Remove unregisters an entry and its aliases.
func (c *Catalog[T]) Remove(name string) error {
	e, err := c.Lookup(name)
	if err != nil {
		return err
	}
	delete(c.entries, e.Name)
	for _, alias := range e.Aliases {
		delete(c.entries, alias)
	}
	for i, n := range c.order {
		if n == e.Name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
