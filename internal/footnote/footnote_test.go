package footnote

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/dgallion1/refnote/internal/textenc"
)

func TestConvert_URLAndSquareReference(t *testing.T) {
	input := "See (http://example.com/page) for details [a critical note]."
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "See[1] for details[2].\n\n___\n[1] http://example.com/page\n[2] a critical note\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestConvert_QuotedSquareBracketIgnored(t *testing.T) {
	input := `"Could you tell the [other dwarves] I said goodbye?"`
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("expected unchanged output, got %q", out)
	}
}

func TestConvert_SicIgnored(t *testing.T) {
	input := "He said it was [sic] fine."
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("expected unchanged output, got %q", out)
	}
}

func TestConvert_AsideIgnored(t *testing.T) {
	input := "(this is just an aside)"
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("expected unchanged output, got %q", out)
	}
}

func TestConvert_HTMLAnchorCollapse(t *testing.T) {
	input := `<a href="http://x.com">http://x.com</a> text`
	out, err := Convert(input, ModeHTML, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[1] text\n\n___\n[1] http://x.com\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestConvert_NumberingIsSequentialByAppearance(t *testing.T) {
	input := "a [one] b (http://two.example) c [three] d"
	res, err := ConvertDocument(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(res.Entries))
	}
	wantContents := []string{"one", "http://two.example", "three"}
	for i, e := range res.Entries {
		if e.Number != i+1 {
			t.Errorf("entry %d: expected number %d, got %d", i, i+1, e.Number)
		}
		if e.Content != wantContents[i] {
			t.Errorf("entry %d: expected content %q, got %q", i, wantContents[i], e.Content)
		}
	}

	// Marker count in the running text matches the entry count.
	running, _, ok := strings.Cut(res.Text, "\n\n___\n")
	if !ok {
		t.Fatalf("expected separator in output, got %q", res.Text)
	}
	markers := regexp.MustCompile(`\[\d+\]`).FindAllString(running, -1)
	if len(markers) != len(res.Entries) {
		t.Errorf("expected %d markers, got %d (%v)", len(res.Entries), len(markers), markers)
	}
	for i, m := range markers {
		if want := "[" + string(rune('1'+i)) + "]"; m != want {
			t.Errorf("marker %d: expected %q, got %q", i, want, m)
		}
	}
}

func TestConvert_Idempotent(t *testing.T) {
	input := "Read (http://example.com) and [the appendix].\n"
	once, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := Convert(once, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if twice != once {
		t.Errorf("expected second conversion to be a no-op,\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestConvert_AppendixBeforeSignature(t *testing.T) {
	input := "Check (http://a.example) out.\nCheers\n--\nBob\n"
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Check[1] out.\nCheers\n___\n[1] http://a.example\n\n--\nBob\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestConvert_NoFootnotesNoAppendix(t *testing.T) {
	input := "Nothing to see here.\n"
	out, err := Convert(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("expected unchanged output, got %q", out)
	}
}

func TestConvert_OptionOverrides(t *testing.T) {
	opts := Options{
		URLSchemes: []string{"gopher://"},
		Separator:  "---",
	}
	input := "a (gopher://hole) b (http://ignored.example)"
	out, err := Convert(input, ModePlaintext, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a[1] b (http://ignored.example)\n\n---\n[1] gopher://hole\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestConvert_InvalidUTF8(t *testing.T) {
	_, err := Convert("bad \xff\xfe bytes", ModePlaintext, Options{})
	if !errors.Is(err, textenc.ErrInputDecoding) {
		t.Fatalf("expected ErrInputDecoding, got %v", err)
	}
}

func TestConvert_UnknownMode(t *testing.T) {
	_, err := Convert("text", Mode("pdf"), Options{})
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModePlaintext, false},
		{"plaintext", ModePlaintext, false},
		{"text", ModePlaintext, false},
		{"HTML", ModeHTML, false},
		{"htm", ModeHTML, false},
		{"markdown", "", true},
	}
	for _, c := range cases {
		got, err := ParseMode(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMode(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestConvert_ContentPreserved(t *testing.T) {
	// Stripping the markers from the running text and re-inserting entry
	// contents in order reconstructs every footnote-worthy bracket plus
	// all surrounding text.
	input := "alpha (http://one.example) beta [two] gamma"
	res, err := ConvertDocument(input, ModePlaintext, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	running, _, _ := strings.Cut(res.Text, "\n\n___\n")
	stripped := regexp.MustCompile(`\[\d+\]`).ReplaceAllString(running, "")
	if stripped != "alpha beta gamma" {
		t.Errorf("expected running text %q, got %q", "alpha beta gamma", stripped)
	}
	if res.Entries[0].Content != "http://one.example" || res.Entries[1].Content != "two" {
		t.Errorf("unexpected entry contents: %+v", res.Entries)
	}
}
