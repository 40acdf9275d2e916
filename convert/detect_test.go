package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{name: "UTF-8 BOM", buf: []byte{0xEF, 0xBB, 0xBF, 0x7B}, want: encUTF8},
		{name: "UTF-16 Big Endian BOM", buf: []byte{0xFE, 0xFF, 0x00, 0x7B}, want: encUTF16BigEndian},
		{name: "UTF-16 Little Endian BOM", buf: []byte{0xFF, 0xFE, 0x7B, 0x00}, want: encUTF16LittleEndian},
		{name: "UTF-32 Big Endian BOM", buf: []byte{0x00, 0x00, 0xFE, 0xFF}, want: encUTF32BigEndian},
		{name: "UTF-32 Little Endian BOM", buf: []byte{0xFF, 0xFE, 0x00, 0x00}, want: encUTF32LittleEndian},
		{name: "No BOM", buf: []byte(`{"a": 1}`), want: encUnknown},
		{name: "Short", buf: []byte{0xEF}, want: encUnknown},
		{name: "Empty", buf: nil, want: encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectReader(t *testing.T) {
	const text = `{"bullet": "•"}`

	encode := func(enc interface{ Bytes([]byte) ([]byte, error) }) []byte {
		t.Helper()
		b, err := enc.Bytes([]byte(text))
		if err != nil {
			t.Fatalf("encode sample: %v", err)
		}
		return b
	}

	tests := []struct {
		name string
		enc  srcEncoding
		data []byte
	}{
		{"unknown", encUnknown, []byte(text)},
		{"utf8", encUTF8, append([]byte{0xEF, 0xBB, 0xBF}, text...)},
		{"utf16be", encUTF16BigEndian, encode(unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder())},
		{"utf16le", encUTF16LittleEndian, encode(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())},
		{"utf32be", encUTF32BigEndian, encode(utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder())},
		{"utf32le", encUTF32LittleEndian, encode(utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.data); got != tt.enc {
				t.Fatalf("detectUTF() = %v, want %v", got, tt.enc)
			}
			out, err := io.ReadAll(selectReader(bytes.NewReader(tt.data), tt.enc))
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if string(out) != text {
				t.Errorf("selectReader() produced %q, want %q", out, text)
			}
		})
	}
}

func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding, but didn't panic")
		}
	}()
	selectReader(bytes.NewReader([]byte("test")), srcEncoding(999))
}

func TestToUTF8(t *testing.T) {
	cp1251, err := charmap.Windows1251.NewEncoder().Bytes([]byte(`{"bullet": "Ж"}`))
	if err != nil {
		t.Fatalf("encode sample: %v", err)
	}

	t.Run("code page", func(t *testing.T) {
		out, err := toUTF8(cp1251, charmap.Windows1251)
		if err != nil {
			t.Fatalf("toUTF8() error = %v", err)
		}
		if string(out) != `{"bullet": "Ж"}` {
			t.Errorf("toUTF8() = %q", out)
		}
	})

	t.Run("no code page", func(t *testing.T) {
		out, err := toUTF8(cp1251, nil)
		if err != nil {
			t.Fatalf("toUTF8() error = %v", err)
		}
		if !bytes.Equal(out, cp1251) {
			t.Errorf("toUTF8() changed data without code page: %q", out)
		}
	})

	t.Run("BOM wins over code page", func(t *testing.T) {
		out, err := toUTF8(append([]byte{0xEF, 0xBB, 0xBF}, "Ж"...), charmap.Windows1251)
		if err != nil {
			t.Fatalf("toUTF8() error = %v", err)
		}
		if string(out) != "Ж" {
			t.Errorf("toUTF8() = %q, want Ж", out)
		}
	})

	t.Run("binary ion", func(t *testing.T) {
		bin := []byte{0xE0, 0x01, 0x00, 0xEA, 0xC6}
		out, err := toUTF8(bin, charmap.Windows1251)
		if err != nil {
			t.Fatalf("toUTF8() error = %v", err)
		}
		if !bytes.Equal(out, bin) {
			t.Errorf("toUTF8() changed binary Ion: %x", out)
		}
	})
}

func TestCheckNotBinary(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	if err := checkNotBinary(png); err == nil || !strings.Contains(err.Error(), "PNG") {
		t.Errorf("checkNotBinary(png) error = %v", err)
	}

	for _, text := range []string{`{"kind": "document"}`, "kind: document\n", "", "\xE0\x01\x00\xEA"} {
		if err := checkNotBinary([]byte(text)); err != nil {
			t.Errorf("checkNotBinary(%q) error = %v", text, err)
		}
	}
}

func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name string, data []byte) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		return path
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("doc.json")
	if err != nil {
		t.Fatalf("Failed to create file in zip: %v", err)
	}
	f.Write([]byte(`{"kind": "document"}`))
	w.Close()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"zip", write("styles.zip", buf.Bytes()), true},
		{"zip upper case extension", write("STYLES.ZIP", buf.Bytes()), true},
		{"zip content with other extension", write("styles.json", buf.Bytes()), false},
		{"zip extension but invalid content", write("fake.zip", []byte("not a real zip file")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isArchiveFile(tt.path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := isArchiveFile("/nonexistent/file.zip"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestIsDocumentName(t *testing.T) {
	for name, want := range map[string]bool{
		"doc.json":      true,
		"a/b/doc.yml":   true,
		"doc.HCL":       true,
		"doc.10n":       true,
		"readme.txt":    false,
		"no_extension":  false,
		"styles/.json/": false,
	} {
		if got := isDocumentName(name); got != want {
			t.Errorf("isDocumentName(%q) = %v, want %v", name, got, want)
		}
	}
}
