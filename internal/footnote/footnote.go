// Package footnote converts in-text references (URLs in round brackets,
// citations in square brackets) into sequentially numbered footnotes
// appended after the running text.
package footnote

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/refnote/internal/normalize"
	"github.com/dgallion1/refnote/internal/textenc"
)

// Mode selects how input is interpreted before bracket scanning.
type Mode string

const (
	ModePlaintext Mode = "plaintext"
	ModeHTML      Mode = "html"
)

// ParseMode maps a user-supplied mode string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePlaintext, "", "text", "txt":
		return ModePlaintext, nil
	case ModeHTML, "htm":
		return ModeHTML, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Options configure the conversion. The zero value takes defaults for
// every field, so callers can override selectively.
type Options struct {
	// URLSchemes are the prefixes that qualify round-bracket content as a
	// reference, matched case-insensitively after trimming leading
	// whitespace.
	URLSchemes []string

	// SicTokens are square-bracket contents left in place as error
	// annotations, matched case-insensitively and exactly.
	SicTokens []string

	// Separator is the line written between the running text and the
	// footnote list.
	Separator string
}

// DefaultOptions returns the stock configuration. The separator uses
// underscores rather than dashes because "--" marks a signature for
// e-mail clients.
func DefaultOptions() Options {
	return Options{
		URLSchemes: []string{"http://", "https://", "ftp://", "ftps://", "mailto:", "www."},
		SicTokens:  []string{"sic", "sic!"},
		Separator:  "___",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.URLSchemes == nil {
		o.URLSchemes = def.URLSchemes
	}
	if o.SicTokens == nil {
		o.SicTokens = def.SicTokens
	}
	if o.Separator == "" {
		o.Separator = def.Separator
	}
	return o
}

// Entry is one numbered footnote in the appendix.
type Entry struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// Result is the converted document plus its footnote list.
type Result struct {
	Text    string
	Entries []Entry
}

// Convert rewrites references in input as numbered footnotes and returns
// the final document text. It is a pure function of its arguments: no
// I/O, no shared state, safe to call concurrently.
func Convert(input string, mode Mode, opts Options) (string, error) {
	res, err := ConvertDocument(input, mode, opts)
	return res.Text, err
}

// ConvertDocument is Convert with the footnote entries exposed.
func ConvertDocument(input string, mode Mode, opts Options) (Result, error) {
	if !utf8.ValidString(input) {
		return Result{}, textenc.ErrInputDecoding
	}

	text := input
	switch mode {
	case ModePlaintext, "":
	case ModeHTML:
		text = normalize.Flatten(text)
	default:
		return Result{}, fmt.Errorf("unknown mode %q", mode)
	}

	opts = opts.withDefaults()
	out, entries := render(text, scanSpans(text), opts)
	return Result{Text: out, Entries: entries}, nil
}
