package parse

import (
	"context"
	"fmt"
	"io"

	"github.com/mediakit-labs/mediakit/mediatype"
)

// CompositeParser routes each media type to the child parser that
// claims it. The dispatch table is built from the children in order,
// with a later child overriding an earlier one for a contested type.
type CompositeParser struct {
	reg      *mediatype.Registry
	children []Parser
	table    map[mediatype.MediaType]Parser
}

// NewComposite builds a composite over children in the given order.
func NewComposite(reg *mediatype.Registry, children []Parser) *CompositeParser {
	table := make(map[mediatype.MediaType]Parser)
	for _, child := range children {
		for _, mt := range child.SupportedTypes(reg) {
			table[reg.Normalize(mt)] = child
		}
	}
	return &CompositeParser{reg: reg, children: children, table: table}
}

// Children returns the child parsers in declaration order.
func (p *CompositeParser) Children() []Parser {
	return p.children
}

// Parsers returns the dispatch table from media type to child.
func (p *CompositeParser) Parsers() map[mediatype.MediaType]Parser {
	return p.table
}

// SupportedTypes implements Parser.
func (p *CompositeParser) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	types := make([]mediatype.MediaType, 0, len(p.table))
	for mt := range p.table {
		types = append(types, mt)
	}
	return types
}

// parserFor finds the child for mt, walking up the supertype chain
// when no child claims the exact type.
func (p *CompositeParser) parserFor(mt mediatype.MediaType) (Parser, bool) {
	mt = p.reg.Normalize(mt)
	for {
		if child, ok := p.table[mt]; ok {
			return child, true
		}
		super, ok := p.reg.SupertypeOf(mt)
		if !ok {
			return nil, false
		}
		mt = super
	}
}

// Parse implements Parser, dispatching by the declared media type.
func (p *CompositeParser) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	child, ok := p.parserFor(mt)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, mt)
	}
	return child.Parse(ctx, r, mt, out)
}
