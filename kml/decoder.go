package kml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/joshuapare/kmlkit/internal/charset"
)

// Decoder builds a document tree from an XML token stream. The type
// parameter selects the precision coordinate text is parsed at. Each Decode
// call yields an independent tree; the decoder retains nothing across calls.
type Decoder[T CoordValue] struct {
	d *xml.Decoder
}

// NewDecoder returns a Decoder reading from r. Inputs declaring a non-UTF-8
// charset in the XML prolog (ISO-8859-1, Windows-1252, UTF-16) are
// transcoded transparently.
func NewDecoder[T CoordValue](r io.Reader) *Decoder[T] {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReader
	return &Decoder[T]{d: d}
}

// Read decodes one KML document from r at float64 precision.
func Read(r io.Reader) (Node, error) {
	return NewDecoder[float64](r).Decode()
}

// Unmarshal decodes one KML document from b at T's precision.
func Unmarshal[T CoordValue](b []byte) (Node, error) {
	return NewDecoder[T](bytes.NewReader(b)).Decode()
}

// Parse decodes one KML document from a string at float64 precision.
func Parse(s string) (Node, error) {
	return NewDecoder[float64](strings.NewReader(s)).Decode()
}

// Decode consumes tokens through the close of the first root element and
// returns the typed tree. It maintains an explicit stack of in-progress
// element builders: Start pushes a builder seeded with the tag's attributes,
// CharData accumulates on the top builder, End pops and finalizes the top
// builder into a concrete node, folding it into the new top or yielding it
// as the result. The first structural or numeric error aborts the decode;
// there is no partial-document recovery.
func (d *Decoder[T]) Decode() (Node, error) {
	var stack []*builder
	for {
		tok, err := d.d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(stack) > 0 {
					return nil, &Error{
						Kind:   KindUnexpectedEOF,
						Msg:    "kml: unterminated element",
						Token:  stack[len(stack)-1].name,
						Offset: d.d.InputOffset(),
					}
				}
				return nil, ErrEmptyDocument
			}
			return nil, d.tokenErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var parent *builder
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, newBuilder(t, parent))
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				// The tokenizer rejects mismatched tags itself; this guards
				// against a stray close outside any element.
				return nil, &Error{
					Kind:   KindMalformedXML,
					Msg:    "kml: unexpected closing tag",
					Token:  t.Name.Local,
					Offset: d.d.InputOffset(),
				}
			}
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n, err := finalize[T](b)
			if err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				return n, nil
			}
			stack[len(stack)-1].children = append(stack[len(stack)-1].children, n)
		}
	}
}

// tokenErr classifies a tokenizer failure, attaching the byte offset.
func (d *Decoder[T]) tokenErr(err error) *Error {
	kind := KindMalformedXML
	var syn *xml.SyntaxError
	if errors.Is(err, io.ErrUnexpectedEOF) || (errors.As(err, &syn) && syn.Msg == "unexpected EOF") {
		kind = KindUnexpectedEOF
	}
	return &Error{Kind: kind, Msg: "kml: malformed XML", Offset: d.d.InputOffset(), Err: err}
}

// builder is the mutable accumulator for one in-progress element: one per
// stack frame, finalized into an immutable node when its end tag is seen.
type builder struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	children []Node
	ns       map[string]string // namespace URI -> declared prefix, innermost declaration wins
}

func newBuilder(t xml.StartElement, parent *builder) *builder {
	b := &builder{}
	if parent != nil {
		b.ns = parent.ns
	}
	copied := false
	for _, a := range t.Attr {
		prefix, ok := nsDecl(a.Name)
		if !ok {
			continue
		}
		if !copied {
			merged := make(map[string]string, len(b.ns)+1)
			for k, v := range b.ns {
				merged[k] = v
			}
			b.ns = merged
			copied = true
		}
		b.ns[a.Value] = prefix
	}
	b.name = b.qualify(t.Name)
	if len(t.Attr) > 0 {
		b.attrs = make(map[string]string, len(t.Attr))
		for _, a := range t.Attr {
			b.attrs[b.attrKey(a.Name)] = a.Value
		}
	}
	return b
}

// nsDecl reports the prefix an xmlns declaration attribute binds; the default
// declaration binds the empty prefix.
func nsDecl(n xml.Name) (string, bool) {
	if n.Space == "xmlns" {
		return n.Local, true
	}
	if n.Space == "" && n.Local == "xmlns" {
		return "", true
	}
	return "", false
}

// qualify reconstructs a literal tag spelling. The tokenizer resolves a
// declared prefix to its URI; the in-scope declarations map it back so the
// spelling survives a round trip. An undeclared prefix passes through as-is.
func (b *builder) qualify(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if prefix, ok := b.ns[n.Space]; ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	return n.Space + ":" + n.Local
}

// attrKey reconstructs a literal attribute name. xmlns declarations keep
// their prefixed spelling.
func (b *builder) attrKey(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return b.qualify(n)
}

// content returns the accumulated text. Surrounding whitespace is trimmed
// only for mixed or whitespace-only content, so a purely textual element
// keeps significant leading and trailing space while indented documents do
// not grow phantom content.
func (b *builder) content() string {
	s := b.text.String()
	if len(b.children) > 0 || strings.TrimSpace(s) == "" {
		return strings.TrimSpace(s)
	}
	return s
}

// genericElement finalizes b as the lossless vendor/unknown fallback.
func (b *builder) genericElement() *Element {
	return &Element{Name: b.name, Attrs: b.attrs, Content: b.content(), Children: b.children}
}
