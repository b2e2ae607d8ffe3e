// Package kml represents OGC KML documents as a strongly typed in-memory
// tree and converts that tree to and from canonical XML text.
//
// # Overview
//
// A KML document is modeled as a tree of Node values, one variant per schema
// element (containers, placemarks, geometries, styles, links, extended data)
// plus a generic Element fallback that captures vendor extensions losslessly.
// The Decoder builds a tree bottom-up from an XML token stream, applying the
// schema's default values to fields the input never mentions; the Encoder
// performs a read-only traversal and emits the schema-ordered canonical form.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Node: the closed set of KML element variants
//   - Geometry: the sub-set of shapes a Placemark may carry
//   - Coord: a generic longitude/latitude/altitude triple, parameterized
//     over float32 or float64 precision
//   - Encoder / Decoder: the two codec halves
//   - Element: the lossless fallback for unrecognized tags
//
// # Reading and writing
//
// Parse and Read decode at float64 precision:
//
//	doc, err := kml.Parse(`<kml><Placemark><name>hi</name></Placemark></kml>`)
//	if err != nil {
//	    return err
//	}
//
// MarshalString is the in-memory counterpart of Encoder.Encode:
//
//	s, err := kml.MarshalString(doc)
//
// Single-precision trees use the generic forms directly:
//
//	dec := kml.NewDecoder[float32](r)
//	out, err := kml.Marshal[float32](tree)
//
// # Guarantees and limits
//
// Encoding an unchanged tree twice yields byte-identical output; attribute
// maps are emitted in sorted key order to keep that property. Decode fails
// fast at the first structural or numeric error and never recovers a partial
// document. Both directions hold the whole tree in memory, and recursion
// depth follows the input's nesting depth, so pathologically deep documents
// can exhaust the stack. Neither call retains references to the tree, so
// concurrent decodes, and concurrent encodes of a shared tree, are safe.
package kml
