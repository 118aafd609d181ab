package textenc

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInputDecoding is returned when input bytes cannot be decoded as UTF-8
// text. Callers decide whether to abort or skip the document.
var ErrInputDecoding = errors.New("input is not valid UTF-8 text")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw document bytes to a string suitable for conversion.
// It strips a leading UTF-8 BOM and normalizes to NFC so that quote and
// bracket scanning sees composed characters.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInputDecoding
	}
	return norm.NFC.String(string(data)), nil
}
