package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/refnote/internal/footnote"
	"github.com/dgallion1/refnote/internal/textenc"
)

// HTMLParser handles HTML files. The markup is kept intact here; the
// core runs the normalizer when it sees ModeHTML, so tag stripping and
// anchor linearization happen in one place.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	raw, err := textenc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return &Document{Text: raw, Mode: footnote.ModeHTML}, nil
}
