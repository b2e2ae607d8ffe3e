package kml

// Element is the lossless fallback for vendor and unknown tags: free-form
// name, attribute map, optional text content and ordered children. The
// decoder also uses it to surface simple text children (name, href, x, ...)
// to their parent's finalizer.
type Element struct {
	Name     string
	Attrs    map[string]string
	Content  string // omitted from output when empty
	Children []Node
}

func (*Element) node() {}
