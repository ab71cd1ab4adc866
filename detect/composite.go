package detect

import "github.com/mediakit-labs/mediakit/mediatype"

// CompositeDetector runs an ordered list of child detectors and keeps
// the most specific answer. Earlier children take priority: a later
// child's answer is only adopted when it is a specialization of the
// current best.
type CompositeDetector struct {
	reg      *mediatype.Registry
	children []Detector
}

// NewComposite builds a composite over children in the given order.
func NewComposite(reg *mediatype.Registry, children []Detector) *CompositeDetector {
	return &CompositeDetector{reg: reg, children: children}
}

// Detectors returns the child detectors in dispatch order.
func (d *CompositeDetector) Detectors() []Detector {
	return d.children
}

// Detect implements Detector.
func (d *CompositeDetector) Detect(input []byte, name string, reg *mediatype.Registry) mediatype.MediaType {
	if reg == nil {
		reg = d.reg
	}
	best := mediatype.OctetStream
	for _, child := range d.children {
		mt := reg.Normalize(child.Detect(input, name, reg))
		if best == mediatype.OctetStream || reg.IsSpecializationOf(mt, best) {
			if mt != mediatype.OctetStream {
				best = mt
			}
		}
	}
	return best
}
