package footnote

import (
	"fmt"
	"strconv"
	"strings"
)

// render rewrites the document, replacing accepted spans with [N] markers
// in order of appearance, then attaches the appendix. Ignored spans and
// all other text pass through byte-for-byte; spaces immediately before an
// accepted span are absorbed by its marker.
func render(text string, spans []span, opts Options) (string, []Entry) {
	var b strings.Builder
	var entries []Entry
	last := 0
	for _, sp := range spans {
		if classify(text, sp, opts) != verdictFootnote {
			continue
		}
		cut := sp.start
		for cut > last && text[cut-1] == ' ' {
			cut--
		}
		b.WriteString(text[last:cut])
		entries = append(entries, Entry{Number: len(entries) + 1, Content: strings.TrimSpace(sp.content)})
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(len(entries)))
		b.WriteByte(']')
		last = sp.end
	}
	b.WriteString(text[last:])
	return withAppendix(b.String(), entries, opts.Separator), entries
}

// withAppendix appends the footnote list after a separator line. When the
// document carries an e-mail signature marker ("--" on its own line) the
// appendix is inserted in front of it so mail clients keep the footnotes
// above the signature.
func withAppendix(text string, entries []Entry, sep string) string {
	if len(entries) == 0 {
		return text
	}

	var app strings.Builder
	app.WriteString(sep)
	app.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&app, "[%d] %s\n", e.Number, e.Content)
	}

	if off, ok := signatureOffset(text); ok {
		return text[:off] + app.String() + "\n" + text[off:]
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + "\n" + app.String()
}

// signatureOffset returns the byte offset of the first line that is
// exactly "--".
func signatureOffset(text string) (int, bool) {
	off := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "--\n" {
			return off, true
		}
		off += len(line)
	}
	return 0, false
}
