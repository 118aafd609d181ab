package footnote

type bracketKind int

const (
	roundBracket bracketKind = iota
	squareBracket
)

// span is one top-level bracketed region of the document. start is the
// offset of the opening bracket, end is one past the closing bracket,
// content excludes the brackets themselves.
type span struct {
	kind    bracketKind
	start   int
	end     int
	content string
}

// scanSpans walks the document once and returns every top-level bracket
// span in order of appearance. Nested round brackets are swallowed by
// their outer span, the interior of a consumed span is never re-scanned,
// and unmatched brackets are left as inert text.
func scanSpans(text string) []span {
	var spans []span
	for i := 0; i < len(text); {
		switch text[i] {
		case '(':
			end, ok := matchRound(text, i)
			if !ok {
				i++
				continue
			}
			spans = append(spans, span{kind: roundBracket, start: i, end: end, content: text[i+1 : end-1]})
			i = end
		case '[':
			end, ok := matchSquare(text, i)
			if !ok {
				i++
				continue
			}
			spans = append(spans, span{kind: squareBracket, start: i, end: end, content: text[i+1 : end-1]})
			i = end
		default:
			i++
		}
	}
	return spans
}

// matchRound finds the matching close for the round bracket at open,
// tracking nesting depth with a counter. Returns one past the close.
func matchRound(text string, open int) (int, bool) {
	depth := 1
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1, true
			}
		}
	}
	return 0, false
}

// matchSquare finds the close for the square bracket at open. Square
// brackets do not nest; a second opening bracket makes the first one
// inert, so "[a [b]" produces a span only for "[b]".
func matchSquare(text string, open int) (int, bool) {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '[':
			return 0, false
		case ']':
			return j + 1, true
		}
	}
	return 0, false
}
