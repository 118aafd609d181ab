package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/refnote/internal/footnote"
	"github.com/dgallion1/refnote/internal/textenc"
)

// TextParser handles plain text files. The text passes through untouched
// beyond decoding; paragraph structure is the author's own.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	text, err := textenc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return &Document{Text: text, Mode: footnote.ModePlaintext}, nil
}
