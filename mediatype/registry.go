package mediatype

import "sort"

// Registry holds the universe of recognized media types together with
// their alias and supertype links. It owns no detector or parser
// implementations. A Registry is populated during construction and
// treated as read-only afterwards; all read methods tolerate a nil
// receiver and fall back to structural defaults.
type Registry struct {
	aliases map[MediaType]MediaType // alias -> canonical
	supers  map[MediaType]MediaType // type -> declared supertype
	known   map[MediaType]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		aliases: make(map[MediaType]MediaType),
		supers:  make(map[MediaType]MediaType),
		known:   make(map[MediaType]bool),
	}
}

// NewDefaultRegistry returns the built-in registry of common types.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, mt := range []MediaType{
		OctetStream, PlainText, HTML, CSV, XML, JSON,
		PDF, Zip, GZip, PNG, JPEG, GIF,
	} {
		r.AddType(mt)
	}
	r.AddAlias(MustParse("application/x-pdf"), PDF)
	r.AddAlias(MustParse("text/xml"), XML)
	r.AddAlias(MustParse("application/x-gzip"), GZip)
	r.AddAlias(MustParse("image/jpg"), JPEG)
	r.AddSupertype(HTML, PlainText)
	r.AddSupertype(CSV, PlainText)
	r.AddSupertype(XML, PlainText)
	r.AddSupertype(JSON, PlainText)
	return r
}

// AddType records mt as a recognized type.
func (r *Registry) AddType(mt MediaType) {
	r.known[mt] = true
}

// AddAlias records alias as an alternate name for canonical.
func (r *Registry) AddAlias(alias, canonical MediaType) {
	r.aliases[alias] = canonical
	r.known[canonical] = true
}

// AddSupertype declares super as the parent of child in the type
// hierarchy, overriding the structural default.
func (r *Registry) AddSupertype(child, super MediaType) {
	r.supers[child] = super
	r.known[child] = true
	r.known[super] = true
}

// Normalize resolves aliases to the canonical form of mt.
func (r *Registry) Normalize(mt MediaType) MediaType {
	if r == nil {
		return mt
	}
	for i := 0; i < len(r.aliases); i++ {
		c, ok := r.aliases[mt]
		if !ok {
			break
		}
		mt = c
	}
	return mt
}

// SupertypeOf returns the parent of mt in the type hierarchy. Every
// text type falls back to text/plain and everything else to
// application/octet-stream, which itself has no supertype.
func (r *Registry) SupertypeOf(mt MediaType) (MediaType, bool) {
	mt = r.Normalize(mt)
	if r != nil {
		if super, ok := r.supers[mt]; ok {
			return super, true
		}
	}
	switch {
	case mt == OctetStream:
		return MediaType{}, false
	case mt == PlainText:
		return OctetStream, true
	case mt.Type() == "text":
		return PlainText, true
	default:
		return OctetStream, true
	}
}

// IsSpecializationOf reports whether mt is a (possibly transitive)
// subtype of super. A type is not a specialization of itself.
func (r *Registry) IsSpecializationOf(mt, super MediaType) bool {
	mt = r.Normalize(mt)
	super = r.Normalize(super)
	for {
		parent, ok := r.SupertypeOf(mt)
		if !ok {
			return false
		}
		if parent == super {
			return true
		}
		mt = parent
	}
}

// Contains reports whether mt (or an alias of it) is a recognized type.
func (r *Registry) Contains(mt MediaType) bool {
	if r == nil {
		return false
	}
	return r.known[r.Normalize(mt)]
}

// Types returns all recognized canonical types in sorted order.
func (r *Registry) Types() []MediaType {
	if r == nil {
		return nil
	}
	types := make([]MediaType, 0, len(r.known))
	for mt := range r.known {
		types = append(types, mt)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}
