// Package detect defines the detector capability: classifying a byte
// stream into a media type. Detectors inspect a bounded prefix of the
// input plus an optional resource name hint.
package detect

import "github.com/mediakit-labs/mediakit/mediatype"

// Detector classifies content. Implementations return
// application/octet-stream when they cannot decide; they never fail.
type Detector interface {
	// Detect examines the input prefix and the resource name hint and
	// returns the most specific media type it can claim.
	Detect(input []byte, name string, reg *mediatype.Registry) mediatype.MediaType
}

// MultiDetector is the multi-detector dispatch capability: a detector
// that aggregates an ordered list of child detectors.
type MultiDetector interface {
	Detector

	// Detectors returns the child detectors in dispatch order.
	Detectors() []Detector
}
