package footnote

import "strings"

type verdict int

const (
	verdictIgnore verdict = iota
	verdictFootnote
)

// classify decides whether a span becomes a footnote or stays in the
// running text. Round brackets qualify only when URL-led; square brackets
// qualify unless they are an error annotation, an existing numeric
// marker, or sit inside a quotation.
func classify(text string, sp span, opts Options) verdict {
	switch sp.kind {
	case roundBracket:
		if hasSchemePrefix(sp.content, opts.URLSchemes) {
			return verdictFootnote
		}
		return verdictIgnore
	case squareBracket:
		if isSicToken(sp.content, opts.SicTokens) {
			return verdictIgnore
		}
		if isMarker(sp.content) {
			return verdictIgnore
		}
		if insideQuotes(text, sp.start, sp.end) {
			return verdictIgnore
		}
		return verdictFootnote
	}
	return verdictIgnore
}

func hasSchemePrefix(content string, schemes []string) bool {
	c := strings.ToLower(strings.TrimLeft(content, " \t"))
	for _, s := range schemes {
		if s != "" && strings.HasPrefix(c, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func isSicToken(content string, tokens []string) bool {
	for _, t := range tokens {
		if strings.EqualFold(content, t) {
			return true
		}
	}
	return false
}

// isMarker reports whether content looks like an already-assigned
// footnote marker ([12] etc). Markers are kept inert so that converting
// a document twice does not renumber its own output.
func isMarker(content string) bool {
	if content == "" {
		return false
	}
	for i := 0; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return false
		}
	}
	return true
}

// insideQuotes reports whether the region [start,end) sits inside a pair
// of double quotation marks. Straight quotes are tracked by counting
// parity up to the opening bracket; typographic quotes by the nearest
// boundary on either side.
func insideQuotes(text string, start, end int) bool {
	if strings.Count(text[:start], `"`)%2 == 1 && strings.Contains(text[end:], `"`) {
		return true
	}
	openIdx := strings.LastIndex(text[:start], "“")
	closeIdx := strings.LastIndex(text[:start], "”")
	if openIdx > closeIdx && strings.Contains(text[end:], "”") {
		return true
	}
	return false
}
