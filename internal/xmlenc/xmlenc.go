// Package xmlenc is a minimal push-style XML event writer.
//
// encoding/xml's Encoder entity-escapes newlines inside character data,
// which would corrupt the newline-joined coordinate text the KML schema
// fixes, so the encoder drives this writer instead. It owns tag syntax and
// entity escaping only; element ordering and schema structure are the
// caller's concern. Elements are never self-closed: an empty element is an
// open tag immediately followed by its close tag.
package xmlenc

import (
	"bufio"
	"io"
	"strings"
)

// Attr is a single attribute on an opening tag, written in the order given.
type Attr struct {
	Key   string
	Value string
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#xA;",
		"\t", "&#x9;",
		"\r", "&#xD;",
	)
)

// Writer emits XML events through an internal buffer. Callers must Flush
// after the final event.
type Writer struct {
	b *bufio.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{b: bufio.NewWriter(w)}
}

// Start writes an opening tag.
func (w *Writer) Start(name string, attrs ...Attr) error {
	if err := w.b.WriteByte('<'); err != nil {
		return err
	}
	if _, err := w.b.WriteString(name); err != nil {
		return err
	}
	for _, a := range attrs {
		if err := w.b.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.b.WriteString(a.Key); err != nil {
			return err
		}
		if _, err := w.b.WriteString(`="`); err != nil {
			return err
		}
		if _, err := attrEscaper.WriteString(w.b, a.Value); err != nil {
			return err
		}
		if err := w.b.WriteByte('"'); err != nil {
			return err
		}
	}
	return w.b.WriteByte('>')
}

// Text writes escaped character data. Newlines pass through literally.
func (w *Writer) Text(s string) error {
	_, err := textEscaper.WriteString(w.b, s)
	return err
}

// End writes a closing tag.
func (w *Writer) End(name string) error {
	if _, err := w.b.WriteString("</"); err != nil {
		return err
	}
	if _, err := w.b.WriteString(name); err != nil {
		return err
	}
	return w.b.WriteByte('>')
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.b.Flush()
}
