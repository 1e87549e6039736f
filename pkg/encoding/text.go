// Package encoding converts mesh text to UTF-8.
package encoding

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lookup resolves a WHATWG encoding label ("utf-8", "euc-kr", "windows-1252", "shift_jis", ...).
// An empty label means UTF-8.
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q", label)
	}
	return enc, nil
}

// CanonicalName returns the canonical name of the encoding for label.
func CanonicalName(label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}
	return htmlindex.Name(enc)
}

// ToUTF8 decodes data to UTF-8. A UTF-8 or UTF-16 byte order mark takes precedence
// over fallback and is stripped. A nil fallback means UTF-8.
func ToUTF8(data []byte, fallback encoding.Encoding) ([]byte, error) {
	if fallback == nil {
		fallback = unicode.UTF8
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback.NewDecoder()), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LabelToUTF8 is ToUTF8 with the fallback given as a label.
func LabelToUTF8(data []byte, label string) ([]byte, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	return ToUTF8(data, enc)
}
