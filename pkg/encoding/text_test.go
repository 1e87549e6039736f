package encoding

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

func TestToUTF8(t *testing.T) {
	const text = "v 1 2 3\n# café\n"

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding utf16: %v", err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding utf16: %v", err)
	}
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding windows-1252: %v", err)
	}

	tests := []struct {
		name  string
		data  []byte
		label string
	}{
		{"plain utf8", []byte(text), ""},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...), ""},
		{"utf16le bom", utf16le, ""},
		{"utf16be bom", utf16be, "windows-1252"},
		{"windows-1252", latin1, "windows-1252"},
		{"latin1 label", latin1, "latin1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LabelToUTF8(tt.data, tt.label)
			if err != nil {
				t.Fatalf("LabelToUTF8 failed: %v", err)
			}
			if !bytes.Equal(got, []byte(text)) {
				t.Errorf("got %q, want %q", got, text)
			}
		})
	}
}

func TestToUTF8_EUCKR(t *testing.T) {
	const text = "g 프론테라"

	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding euc-kr: %v", err)
	}

	got, err := ToUTF8(encoded, korean.EUCKR)
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if string(got) != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		label   string
		want    string
		wantErr bool
	}{
		{"", "utf-8", false},
		{"UTF-8", "utf-8", false},
		{"euc-kr", "euc-kr", false},
		{"cp1252", "windows-1252", false},
		{"klingon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := CanonicalName(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanonicalName(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CanonicalName(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}

	if _, err := LabelToUTF8([]byte("v 0 0 0"), "klingon"); err == nil {
		t.Error("expected error for unknown label")
	}
}
