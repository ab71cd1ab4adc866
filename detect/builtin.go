package detect

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mediakit-labs/mediakit/mediatype"
)

// magicRule matches a byte pattern at a fixed offset.
type magicRule struct {
	offset  int
	pattern []byte
	mt      mediatype.MediaType
}

var magicRules = []magicRule{
	{0, []byte("%PDF-"), mediatype.PDF},
	{0, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, mediatype.PNG},
	{0, []byte{0xff, 0xd8, 0xff}, mediatype.JPEG},
	{0, []byte("GIF87a"), mediatype.GIF},
	{0, []byte("GIF89a"), mediatype.GIF},
	{0, []byte("PK\x03\x04"), mediatype.Zip},
	{0, []byte{0x1f, 0x8b}, mediatype.GZip},
	{0, []byte("<?xml"), mediatype.XML},
	{0, []byte("<!DOCTYPE html"), mediatype.HTML},
	{0, []byte("<html"), mediatype.HTML},
}

// MagicDetector classifies content by well-known byte signatures.
type MagicDetector struct{}

// Detect implements Detector.
func (MagicDetector) Detect(input []byte, name string, reg *mediatype.Registry) mediatype.MediaType {
	for _, rule := range magicRules {
		end := rule.offset + len(rule.pattern)
		if len(input) >= end && bytes.Equal(input[rule.offset:end], rule.pattern) {
			return rule.mt
		}
	}
	return mediatype.OctetStream
}

var extensionTable = map[string]mediatype.MediaType{
	".txt":  mediatype.PlainText,
	".text": mediatype.PlainText,
	".html": mediatype.HTML,
	".htm":  mediatype.HTML,
	".csv":  mediatype.CSV,
	".xml":  mediatype.XML,
	".json": mediatype.JSON,
	".pdf":  mediatype.PDF,
	".zip":  mediatype.Zip,
	".gz":   mediatype.GZip,
	".png":  mediatype.PNG,
	".jpg":  mediatype.JPEG,
	".jpeg": mediatype.JPEG,
	".gif":  mediatype.GIF,
}

// ExtensionDetector classifies content by the resource name suffix.
type ExtensionDetector struct{}

// Detect implements Detector.
func (ExtensionDetector) Detect(input []byte, name string, reg *mediatype.Registry) mediatype.MediaType {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := extensionTable[ext]; ok {
		return mt
	}
	return mediatype.OctetStream
}

// textSample bounds how much input the text heuristic examines.
const textSample = 512

// TextDetector classifies content as text/plain when the sampled
// prefix is valid UTF-8 without bare control bytes.
type TextDetector struct{}

// Detect implements Detector.
func (TextDetector) Detect(input []byte, name string, reg *mediatype.Registry) mediatype.MediaType {
	if len(input) == 0 {
		return mediatype.OctetStream
	}
	sample := input
	if len(sample) > textSample {
		sample = sample[:textSample]
		// Avoid judging a rune cut off by the sample boundary.
		for i := 0; i < utf8.UTFMax-1 && len(sample) > 0 && !utf8.Valid(sample); i++ {
			sample = sample[:len(sample)-1]
		}
	}
	if !utf8.Valid(sample) {
		return mediatype.OctetStream
	}
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return mediatype.OctetStream
		}
	}
	return mediatype.PlainText
}
