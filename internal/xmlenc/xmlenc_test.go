package xmlenc

import (
	"strings"
	"testing"
)

func TestWriterEvents(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	if err := w.Start("Point"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Start("coordinates"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Text("1,2,3"); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if err := w.End("coordinates"); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := w.End("Point"); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "<Point><coordinates>1,2,3</coordinates></Point>"
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterEmptyElementNotSelfClosed(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	if err := w.Start("Folder"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.End("Folder"); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got, want := sb.String(), "<Folder></Folder>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterAttrOrderPreserved(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	attrs := []Attr{
		{Key: "x", Value: "0.5"},
		{Key: "y", Value: "20"},
		{Key: "xunits", Value: "fraction"},
	}
	if err := w.Start("hotSpot", attrs...); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.End("hotSpot"); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := `<hotSpot x="0.5" y="20" xunits="fraction"></hotSpot>`
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{"line1\nline2", "line1\nline2"},
		{`quotes " stay`, `quotes " stay`},
	}
	for _, tt := range tests {
		var sb strings.Builder
		w := NewWriter(&sb)
		if err := w.Text(tt.in); err != nil {
			t.Fatalf("Text(%q): %v", tt.in, err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		if got := sb.String(); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAttrEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`say "hi"`, `say &quot;hi&quot;`},
		{"a\nb", "a&#xA;b"},
		{"a\tb", "a&#x9;b"},
		{"a\rb", "a&#xD;b"},
		{"a & <b>", "a &amp; &lt;b&gt;"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		w := NewWriter(&sb)
		if err := w.Start("e", Attr{Key: "v", Value: tt.in}); err != nil {
			t.Fatalf("Start: %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		want := `<e v="` + tt.want + `">`
		if got := sb.String(); got != want {
			t.Errorf("attr %q: got %q, want %q", tt.in, got, want)
		}
	}
}
