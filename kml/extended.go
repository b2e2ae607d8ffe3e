package kml

// SchemaData carries vendor-defined typed metadata attached to a Placemark:
// scalar entries followed by array entries, in document order within each
// group.
type SchemaData struct {
	Data   []SimpleData
	Arrays []SimpleArrayData
	Attrs  map[string]string
}

// SimpleData is one named scalar value of a SchemaData block. The name lives
// in the attribute map, matching the wire form.
type SimpleData struct {
	Value string
	Attrs map[string]string
}

// SimpleArrayData is one named value sequence of a SchemaData block,
// serialized as an ordered run of <value> children.
type SimpleArrayData struct {
	Values []string
	Attrs  map[string]string
}

func (*SchemaData) node()      {}
func (*SimpleData) node()      {}
func (*SimpleArrayData) node() {}
