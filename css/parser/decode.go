package parser

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var charsetPrefix = []byte(`@charset "`)

// DecodeStylesheet converts the bytes of a stylesheet to UTF-8 text,
// following https://www.w3.org/TR/css-syntax-3/#input-byte-stream :
// a byte order mark wins, then a @charset rule, then the `fallback` label
// (which may be empty). Without any hint the input is assumed to be UTF-8.
func DecodeStylesheet(css []byte, fallback string) string {
	switch {
	case bytes.HasPrefix(css, []byte{0xEF, 0xBB, 0xBF}):
		return string(css[3:])
	case bytes.HasPrefix(css, []byte{0xFE, 0xFF}):
		return decode(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), css[2:])
	case bytes.HasPrefix(css, []byte{0xFF, 0xFE}):
		return decode(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), css[2:])
	}

	if bytes.HasPrefix(css, charsetPrefix) {
		rest := css[len(charsetPrefix):]
		if end := bytes.Index(rest, []byte(`";`)); end != -1 {
			if enc := lookupEncoding(string(rest[:end])); enc != nil {
				return decode(enc, css)
			}
		}
	}
	if enc := lookupEncoding(fallback); enc != nil {
		return decode(enc, css)
	}
	return string(css)
}

// lookupEncoding resolves a label, returning nil for unknown labels and UTF-8.
// A @charset rule may not select UTF-16, since it is itself ASCII encoded.
func lookupEncoding(label string) encoding.Encoding {
	if label == "" {
		return nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil
	}
	name, _ := htmlindex.Name(enc)
	switch name {
	case "utf-8", "utf-16be", "utf-16le":
		return nil
	}
	return enc
}

func decode(enc encoding.Encoding, b []byte) string {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
