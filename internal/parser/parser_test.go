package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/refnote/internal/footnote"
	"github.com/dgallion1/refnote/internal/textenc"
)

func TestTextParser_Passthrough(t *testing.T) {
	input := "First paragraph.\n\nSecond (http://example.com) paragraph.\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != input {
		t.Errorf("expected text to pass through unchanged, got %q", doc.Text)
	}
	if doc.Mode != footnote.ModePlaintext {
		t.Errorf("expected plaintext mode, got %q", doc.Mode)
	}
}

func TestTextParser_StripsBOM(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("\uFEFFhello"), "bom.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "hello" {
		t.Errorf("expected BOM stripped, got %q", doc.Text)
	}
}

func TestTextParser_InvalidEncoding(t *testing.T) {
	p := &TextParser{}
	_, err := p.Parse(strings.NewReader("bad \xff\xfe bytes"), "bad.txt")
	if !errors.Is(err, textenc.ErrInputDecoding) {
		t.Fatalf("expected ErrInputDecoding, got %v", err)
	}
}

func TestHTMLParser_KeepsMarkupAndSetsMode(t *testing.T) {
	input := `<p>See <a href="http://x.com">here</a>.</p>`
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != input {
		t.Errorf("expected raw markup preserved, got %q", doc.Text)
	}
	if doc.Mode != footnote.ModeHTML {
		t.Errorf("expected html mode, got %q", doc.Mode)
	}
}

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		wantErr  bool
	}{
		{"a.txt", false},
		{"a.text", false},
		{"a.HTML", false},
		{"a.htm", false},
		{"a.pdf", false},
		{"a.docx", false},
		{"a.md", true}, // markdown is not supported
		{"a.csv", true},
		{"a", true},
	}
	for _, c := range cases {
		_, err := ForFile(c.filename)
		if c.wantErr && err == nil {
			t.Errorf("ForFile(%q): expected error", c.filename)
		}
		if !c.wantErr && err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", c.filename, err)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("doc.txt") {
		t.Error("expected .txt to be supported")
	}
	if IsSupportedExtension("doc.md") {
		t.Error("expected .md to be unsupported")
	}
}
