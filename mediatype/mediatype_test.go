package mediatype

import "testing"

func TestParseNormalizes(t *testing.T) {
	mt, err := Parse("  Application/PDF ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mt.String() != "application/pdf" {
		t.Errorf("String() = %q, want %q", mt.String(), "application/pdf")
	}
	if mt != PDF {
		t.Errorf("parsed type != PDF constant")
	}
}

func TestParseDropsParameters(t *testing.T) {
	mt, err := Parse("text/plain; charset=UTF-8")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mt != PlainText {
		t.Errorf("Parse = %v, want %v", mt, PlainText)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "noslash", "/empty", "empty/", "a/b/c", "a/b c"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestRegistryNormalizeAliases(t *testing.T) {
	r := NewDefaultRegistry()
	if got := r.Normalize(MustParse("application/x-pdf")); got != PDF {
		t.Errorf("Normalize(application/x-pdf) = %v, want %v", got, PDF)
	}
	if got := r.Normalize(PDF); got != PDF {
		t.Errorf("Normalize(application/pdf) = %v, want identity", got)
	}
}

func TestRegistrySupertypeChain(t *testing.T) {
	r := NewDefaultRegistry()

	super, ok := r.SupertypeOf(HTML)
	if !ok || super != PlainText {
		t.Errorf("SupertypeOf(text/html) = %v, %v; want text/plain", super, ok)
	}
	super, ok = r.SupertypeOf(PlainText)
	if !ok || super != OctetStream {
		t.Errorf("SupertypeOf(text/plain) = %v, %v; want octet-stream", super, ok)
	}
	if _, ok := r.SupertypeOf(OctetStream); ok {
		t.Error("octet-stream should have no supertype")
	}
}

func TestRegistryIsSpecializationOf(t *testing.T) {
	r := NewDefaultRegistry()
	if !r.IsSpecializationOf(HTML, PlainText) {
		t.Error("text/html should specialize text/plain")
	}
	if !r.IsSpecializationOf(HTML, OctetStream) {
		t.Error("text/html should transitively specialize octet-stream")
	}
	if r.IsSpecializationOf(PlainText, HTML) {
		t.Error("text/plain should not specialize text/html")
	}
	if r.IsSpecializationOf(PDF, PDF) {
		t.Error("a type should not specialize itself")
	}
}

func TestNilRegistryFallsBackToStructure(t *testing.T) {
	var r *Registry
	if got := r.Normalize(PDF); got != PDF {
		t.Errorf("nil registry Normalize = %v, want %v", got, PDF)
	}
	if !r.IsSpecializationOf(PlainText, OctetStream) {
		t.Error("nil registry should still know text/plain < octet-stream")
	}
}

func TestParseRepository(t *testing.T) {
	data := []byte(`
types:
  - type: application/x-custom
    aliases: [application/custom]
    super: application/octet-stream
  - type: text/x-note
    super: text/plain
`)
	r, err := ParseRepository(data)
	if err != nil {
		t.Fatalf("ParseRepository: %v", err)
	}
	custom := MustParse("application/x-custom")
	if got := r.Normalize(MustParse("application/custom")); got != custom {
		t.Errorf("alias lookup = %v, want %v", got, custom)
	}
	if !r.IsSpecializationOf(MustParse("text/x-note"), PlainText) {
		t.Error("text/x-note should specialize text/plain")
	}
	if !r.Contains(custom) {
		t.Error("repository registry should contain declared types")
	}
}

func TestParseRepositoryRejectsBadType(t *testing.T) {
	if _, err := ParseRepository([]byte("types:\n  - type: notatype\n")); err == nil {
		t.Error("ParseRepository accepted a malformed type name")
	}
}
