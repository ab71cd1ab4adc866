package parse

import (
	"bytes"
	"context"
	"io"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
)

// detectPrefix is how much of the stream the auto-detecting parser
// buffers for detection before parsing.
const detectPrefix = 64 << 10

// AutoDetectParser detects the media type of the input and then
// delegates to a parser for the detected type. It exists only as a
// bootstrap convenience: declaring it inside a configuration document
// is rejected, because it would recursively contain the configured
// parser chain.
type AutoDetectParser struct {
	reg      *mediatype.Registry
	detector detect.Detector
	parser   Parser
}

// NewAutoDetect bundles a detector with the parser it dispatches to.
func NewAutoDetect(reg *mediatype.Registry, d detect.Detector, p Parser) *AutoDetectParser {
	return &AutoDetectParser{reg: reg, detector: d, parser: p}
}

// Detector returns the detector used to classify input.
func (p *AutoDetectParser) Detector() detect.Detector {
	return p.detector
}

// SupportedTypes implements Parser.
func (p *AutoDetectParser) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	return p.parser.SupportedTypes(reg)
}

// Parse implements Parser. The mt argument is a hint only; detection
// runs on a buffered prefix of the stream and its answer wins unless
// it is undecided.
func (p *AutoDetectParser) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	prefix, err := io.ReadAll(io.LimitReader(r, detectPrefix))
	if err != nil {
		return err
	}
	name := ""
	if out != nil {
		name = out.Metadata["resource-name"]
	}
	detected := p.detector.Detect(prefix, name, p.reg)
	if detected != mediatype.OctetStream || mt.IsZero() {
		mt = detected
	}
	return p.parser.Parse(ctx, io.MultiReader(bytes.NewReader(prefix), r), mt, out)
}
