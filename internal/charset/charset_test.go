package charset

import (
	"bytes"
	"io"
	"testing"
)

func TestNewReaderUTF8Passthrough(t *testing.T) {
	src := bytes.NewReader([]byte("héllo"))
	r, err := NewReader("UTF-8", src)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r != src {
		t.Error("UTF-8 input should pass through unwrapped")
	}
}

func TestNewReaderLatin1(t *testing.T) {
	r, err := NewReader("ISO-8859-1", bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestNewReaderWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252, undefined in Latin-1.
	r, err := NewReader("windows-1252", bytes.NewReader([]byte{0x93, 'o', 'k', 0x94}))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "“ok”" {
		t.Errorf("got %q, want %q", got, "“ok”")
	}
}

func TestNewReaderUTF16(t *testing.T) {
	// "hi" as UTF-16LE with BOM.
	src := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	r, err := NewReader("UTF-16", bytes.NewReader(src))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestNewReaderLabelSpelling(t *testing.T) {
	for _, label := range []string{"iso-8859-1", "ISO-8859-1", " latin1 ", "UTF8", "us-ascii"} {
		if _, err := NewReader(label, bytes.NewReader(nil)); err != nil {
			t.Errorf("NewReader(%q): %v", label, err)
		}
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	if _, err := NewReader("EBCDIC", bytes.NewReader(nil)); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}
