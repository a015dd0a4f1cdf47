package export

import (
	"strings"
	"testing"
)

func TestForFormat_AllSupported(t *testing.T) {
	for _, f := range Formats() {
		enc, err := ForFormat(f)
		if err != nil {
			t.Errorf("ForFormat(%q) error: %v", f, err)
			continue
		}
		if enc.ContentType() == "" || enc.Extension() == "" {
			t.Errorf("ForFormat(%q) incomplete encoder: %q %q", f, enc.ContentType(), enc.Extension())
		}
	}
}

func TestForFormat_Aliases(t *testing.T) {
	for _, f := range []string{"TXT", "text", "Markdown", "md"} {
		if _, err := ForFormat(f); err != nil {
			t.Errorf("ForFormat(%q) error: %v", f, err)
		}
	}
}

func TestForFormat_Unknown(t *testing.T) {
	if _, err := ForFormat("xlsx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTextEncode_Passthrough(t *testing.T) {
	enc, _ := ForFormat("txt")
	out, err := enc.Encode("hello\nworld")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello\nworld" {
		t.Errorf("out = %q", out)
	}
	if enc.Extension() != ".txt" {
		t.Errorf("ext = %q", enc.Extension())
	}
}

func TestHTMLEncode_EscapesAndBreaks(t *testing.T) {
	enc, _ := ForFormat("html")
	out, err := enc.Encode("a < b\nc & d")
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "a &lt; b<br>\nc &amp; d") {
		t.Errorf("escaped body missing:\n%s", s)
	}
	if !strings.HasPrefix(s, "<!DOCTYPE html>") {
		t.Errorf("missing doctype:\n%s", s)
	}
}

func TestMediaTypeEncoders(t *testing.T) {
	pdf, _ := ForFormat("pdf")
	if pdf.ContentType() != "application/pdf" || pdf.Extension() != ".pdf" {
		t.Errorf("pdf encoder = %q %q", pdf.ContentType(), pdf.Extension())
	}
	doc, _ := ForFormat("doc")
	if doc.ContentType() != "application/msword" || doc.Extension() != ".doc" {
		t.Errorf("doc encoder = %q %q", doc.ContentType(), doc.Extension())
	}
}
