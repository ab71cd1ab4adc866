package parse

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mediakit-labs/mediakit/detect"
	"github.com/mediakit-labs/mediakit/mediatype"
)

// stub claims a fixed set of types and records which instance parsed.
type stub struct {
	types []mediatype.MediaType
	tag   string
}

func (s stub) SupportedTypes(reg *mediatype.Registry) []mediatype.MediaType {
	return s.types
}

func (s stub) Parse(ctx context.Context, r io.Reader, mt mediatype.MediaType, out *Content) error {
	out.Set("parsed-by", s.tag)
	return nil
}

func typeSet(p Parser, reg *mediatype.Registry) map[mediatype.MediaType]bool {
	set := make(map[mediatype.MediaType]bool)
	for _, mt := range p.SupportedTypes(reg) {
		set[reg.Normalize(mt)] = true
	}
	return set
}

func TestTextParser(t *testing.T) {
	out := NewContent()
	err := TextParser{}.Parse(context.Background(), strings.NewReader("hello"), mediatype.PlainText, out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Text != "hello" {
		t.Errorf("Text = %q, want %q", out.Text, "hello")
	}
	if out.Metadata["content-type"] != "text/plain" {
		t.Errorf("content-type = %q, want text/plain", out.Metadata["content-type"])
	}
}

func TestXMLParser(t *testing.T) {
	out := NewContent()
	doc := `<note><to>amy</to><body>see you</body></note>`
	err := XMLParser{}.Parse(context.Background(), strings.NewReader(doc), mediatype.XML, out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Text != "amysee you" {
		t.Errorf("Text = %q, want %q", out.Text, "amysee you")
	}
	if out.Metadata["xml:root"] != "note" {
		t.Errorf("xml:root = %q, want note", out.Metadata["xml:root"])
	}
}

func TestCompositeDispatch(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	p := NewComposite(reg, []Parser{
		stub{[]mediatype.MediaType{mediatype.PlainText}, "text"},
		stub{[]mediatype.MediaType{mediatype.PDF}, "pdf"},
	})

	out := NewContent()
	if err := p.Parse(context.Background(), strings.NewReader(""), mediatype.PDF, out); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Metadata["parsed-by"] != "pdf" {
		t.Errorf("parsed-by = %q, want pdf", out.Metadata["parsed-by"])
	}
}

func TestCompositeLaterChildWinsContestedType(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	p := NewComposite(reg, []Parser{
		stub{[]mediatype.MediaType{mediatype.PlainText}, "first"},
		stub{[]mediatype.MediaType{mediatype.PlainText}, "second"},
	})

	out := NewContent()
	if err := p.Parse(context.Background(), strings.NewReader(""), mediatype.PlainText, out); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Metadata["parsed-by"] != "second" {
		t.Errorf("parsed-by = %q, want second", out.Metadata["parsed-by"])
	}
}

func TestCompositeSupertypeFallback(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	p := NewComposite(reg, []Parser{
		stub{[]mediatype.MediaType{mediatype.PlainText}, "text"},
	})

	// text/html has no direct entry but specializes text/plain.
	out := NewContent()
	if err := p.Parse(context.Background(), strings.NewReader(""), mediatype.HTML, out); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Metadata["parsed-by"] != "text" {
		t.Errorf("parsed-by = %q, want text", out.Metadata["parsed-by"])
	}
}

func TestCompositeUnsupportedType(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	p := NewComposite(reg, []Parser{
		stub{[]mediatype.MediaType{mediatype.PNG}, "png"},
	})
	err := p.Parse(context.Background(), strings.NewReader(""), mediatype.PDF, NewContent())
	if err == nil {
		t.Fatal("Parse of unclaimed type succeeded, want ErrUnsupportedType")
	}
}

func TestWithTypesAdvertisesExactly(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	inner := stub{[]mediatype.MediaType{mediatype.PlainText, mediatype.HTML}, "inner"}
	p := WithTypes(inner, []mediatype.MediaType{mediatype.CSV})

	set := typeSet(p, reg)
	if len(set) != 1 || !set[mediatype.CSV] {
		t.Errorf("advertised set = %v, want {text/csv}", set)
	}
	if _, ok := p.(Wrapper); !ok {
		t.Error("WithTypes result should implement Wrapper")
	}
}

func TestWithoutTypesSubtracts(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	inner := stub{[]mediatype.MediaType{mediatype.PlainText, mediatype.HTML}, "inner"}
	p := WithoutTypes(inner, []mediatype.MediaType{mediatype.HTML})

	set := typeSet(p, reg)
	if len(set) != 1 || !set[mediatype.PlainText] {
		t.Errorf("advertised set = %v, want {text/plain}", set)
	}
}

func TestDecorationIdempotence(t *testing.T) {
	// An inclusion list followed by an exclusion list that removes none
	// of the included types advertises the inclusion list exactly.
	reg := mediatype.NewDefaultRegistry()
	inner := stub{[]mediatype.MediaType{mediatype.PlainText}, "inner"}
	p := WithTypes(inner, []mediatype.MediaType{mediatype.CSV, mediatype.HTML})
	p = WithoutTypes(p, []mediatype.MediaType{mediatype.PNG})

	set := typeSet(p, reg)
	want := map[mediatype.MediaType]bool{mediatype.CSV: true, mediatype.HTML: true}
	if len(set) != len(want) {
		t.Fatalf("advertised set = %v, want %v", set, want)
	}
	for mt := range want {
		if !set[mt] {
			t.Errorf("advertised set missing %v", mt)
		}
	}
}

func TestAutoDetectParserRoutesByDetection(t *testing.T) {
	reg := mediatype.NewDefaultRegistry()
	composite := NewComposite(reg, []Parser{
		stub{[]mediatype.MediaType{mediatype.XML}, "xml"},
		stub{[]mediatype.MediaType{mediatype.PlainText}, "text"},
	})
	auto := NewAutoDetect(reg, detect.MagicDetector{}, composite)

	out := NewContent()
	err := auto.Parse(context.Background(), strings.NewReader("<?xml version=\"1.0\"?><a/>"), mediatype.MediaType{}, out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Metadata["parsed-by"] != "xml" {
		t.Errorf("parsed-by = %q, want xml", out.Metadata["parsed-by"])
	}
}
