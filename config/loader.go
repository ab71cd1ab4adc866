package config

import (
	"github.com/mediakit-labs/mediakit/mediatype"
	"github.com/mediakit-labs/mediakit/service"
)

// binding adapts the generic composite loader to one capability
// family. The loader algorithm is identical for detectors and
// parsers; only the tag names, the composite predicates, and the
// construction hooks differ.
type binding[T any] struct {
	parentTag string // e.g. "parsers"
	itemTag   string // e.g. "parser"

	// catalog picks this family's catalog out of the resolver.
	catalog func(*service.Resolver) *service.Catalog[T]

	// isComposite reports whether an instance already behaves as a
	// composite (or decorator) and so must not be re-wrapped.
	isComposite func(T) bool

	// createDefault builds the family's built-in default composite.
	createDefault func(*mediatype.Registry, *service.Resolver) (T, error)

	// createComposite wraps explicit children in a plain composite.
	createComposite func(*mediatype.Registry, *service.Resolver, []T) (T, error)

	// decorate post-processes a freshly built instance from its
	// configuration element, e.g. explicit media type lists.
	decorate func(T, *Node) (T, error)
}

// loadedItem pairs an instance with the canonical service name it was
// resolved from. The name survives decoration, which keeps exclusion
// matching exact even for wrapped instances.
type loadedItem[T any] struct {
	name string
	inst T
}

// loadOverall resolves a capability family's section of the
// configuration document into exactly one instance: the built-in
// default when nothing is declared, a declared composite passed
// through unwrapped, or a plain composite over the declared items in
// document order.
func loadOverall[T any](root *Node, reg *mediatype.Registry, res *service.Resolver, b binding[T]) (T, error) {
	var zero T

	parents := root.descendants(b.parentTag)
	if len(parents) > 1 {
		return zero, loadErrorf(nil, "configuration may not contain multiple <%s> entries", b.parentTag)
	}
	var items []*Node
	if len(parents) == 1 {
		items = parents[0].directChildren(b.itemTag)
	}

	if len(items) == 0 {
		inst, err := b.createDefault(reg, res)
		if err != nil {
			return zero, loadErrorf(err, "unable to build the default %s", b.itemTag)
		}
		return inst, nil
	}

	children := make([]loadedItem[T], 0, len(items))
	for _, item := range items {
		child, err := loadOne(item, reg, res, b)
		if err != nil {
			return zero, err
		}
		children = append(children, child)
	}

	// A single declared composite is used as-is, never re-wrapped.
	if len(children) == 1 && b.isComposite(children[0].inst) {
		return children[0].inst, nil
	}

	inst, err := b.createComposite(reg, res, instances(children))
	if err != nil {
		return zero, loadErrorf(err, "unable to build the %s composite", b.itemTag)
	}
	return inst, nil
}

// loadOne resolves a single declared item, recursing into nested
// declarations when the resolved service is a composite or decorator.
func loadOne[T any](n *Node, reg *mediatype.Registry, res *service.Resolver, b binding[T]) (loadedItem[T], error) {
	var zero loadedItem[T]
	cat := b.catalog(res)
	name := n.Class

	entry, err := cat.Lookup(name)
	if err != nil {
		return zero, loadErrorf(err, "unable to find a %s service %q", b.itemTag, name)
	}
	if entry.BootstrapOnly {
		return zero, loadErrorf(nil, "%s service %q is a bootstrap default and not supported in a <%s> configuration element", b.itemTag, name, b.itemTag)
	}

	var inst T
	if entry.Composite != nil {
		var children []loadedItem[T]
		for _, childNode := range n.descendants(b.itemTag) {
			child, err := loadOne(childNode, reg, res, b)
			if err != nil {
				return zero, err
			}
			children = append(children, child)
		}

		excluded := service.NameSet{}
		for _, exclNode := range n.descendants(b.itemTag + "-exclude") {
			exclEntry, err := cat.Lookup(exclNode.Class)
			if err != nil {
				return zero, loadErrorf(err, "unable to find an excluded %s service %q", b.itemTag, exclNode.Class)
			}
			excluded.Add(exclEntry.Name)
		}

		built, ok, err := buildDeclared(entry, children, excluded, reg, res, b)
		if err != nil {
			return zero, loadErrorf(err, "unable to create a %s service %q", b.itemTag, name)
		}
		if ok {
			inst = built
		} else {
			// No matching construction shape; plain construction.
			inst, err = entry.New()
			if err != nil {
				return zero, loadErrorf(err, "unable to instantiate a %s service %q", b.itemTag, name)
			}
		}
	} else {
		inst, err = entry.New()
		if err != nil {
			return zero, loadErrorf(err, "unable to instantiate a %s service %q", b.itemTag, name)
		}
	}

	inst, err = b.decorate(inst, n)
	if err != nil {
		return zero, err
	}
	return loadedItem[T]{name: entry.Name, inst: inst}, nil
}

// buildDeclared constructs a declared composite or decorator through
// the first supported construction shape, in fixed priority order:
// full-registry, children+exclusions, children, bare list, decorator
// wrap. It reports ok=false when the entry supports none of them.
//
// Exclusion wins over an explicit child listing: children whose
// resolved name is excluded are dropped before any shape runs.
func buildDeclared[T any](entry *service.Entry[T], children []loadedItem[T], excluded service.NameSet, reg *mediatype.Registry, res *service.Resolver, b binding[T]) (T, bool, error) {
	var zero T
	cs := entry.Composite

	kept := make([]T, 0, len(children))
	for _, child := range children {
		if !excluded.Has(child.name) {
			kept = append(kept, child.inst)
		}
	}

	switch {
	case cs.FullRegistry != nil:
		inst, err := cs.FullRegistry(reg, res, excluded)
		return inst, true, err
	case cs.ChildrenExcluded != nil:
		inst, err := cs.ChildrenExcluded(reg, kept, excluded)
		return inst, true, err
	case cs.Children != nil:
		inst, err := cs.Children(reg, kept)
		return inst, true, err
	case cs.List != nil:
		inst, err := cs.List(kept)
		return inst, true, err
	case cs.Decorator && cs.Wrap != nil:
		// A lone composite child becomes the inner instance directly;
		// anything else is first wrapped in a plain composite.
		var inner T
		if len(kept) == 1 && len(excluded) == 0 && b.isComposite(kept[0]) {
			inner = kept[0]
		} else {
			var err error
			inner, err = b.createComposite(reg, res, kept)
			if err != nil {
				return zero, false, err
			}
		}
		inst, err := cs.Wrap(inner)
		return inst, true, err
	}
	return zero, false, nil
}

func instances[T any](items []loadedItem[T]) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.inst
	}
	return out
}
