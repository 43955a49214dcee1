package parser

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUndecodable indicates that none of the candidate encodings could decode the input.
var ErrUndecodable = errors.New("no candidate encoding could decode the input")

// DefaultEncodings lists the candidate encodings in the order they are tried.
var DefaultEncodings = []string{"UTF-8", "windows-1252", "ISO-8859-1"}

// cp1252Undefined holds the bytes windows-1252 leaves unassigned.
var cp1252Undefined = []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Candidate is a resolved text encoding that strictly rejects input it
// cannot represent.
type Candidate struct {
	// Name is the canonical IANA name.
	Name string
	enc  encoding.Encoding
}

// ResolveEncoding looks up an encoding by IANA name or alias.
func ResolveEncoding(name string) (Candidate, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return Candidate{}, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return Candidate{}, fmt.Errorf("unsupported encoding %q", name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return Candidate{Name: canonical, enc: enc}, nil
}

// Decode converts data to UTF-8 text.
func (c Candidate) Decode(data []byte) (string, error) {
	switch c.enc {
	case unicode.UTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 sequence")
		}
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	case charmap.Windows1252:
		for i, b := range data {
			if bytes.IndexByte(cp1252Undefined, b) >= 0 {
				return "", fmt.Errorf("byte 0x%02X at offset %d is undefined in windows-1252", b, i)
			}
		}
	}

	out, _, err := transform.Bytes(c.enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("input contains bytes not representable in %s", c.Name)
	}
	return string(out), nil
}

// ResolveEncodings resolves every name in order.
func ResolveEncodings(names []string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		c, err := ResolveEncoding(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
