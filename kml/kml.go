package kml

// Node is the closed set of KML element variants. Every schema element the
// codec models implements it; vendor and unknown tags travel as *Element.
// The marker method keeps the set closed to this package.
type Node interface {
	node()
}

// KmlDocument is the root <kml> container: tag attributes plus an ordered
// child sequence.
type KmlDocument struct {
	Attrs    map[string]string
	Children []Node
}

// Document is a <Document> container.
type Document struct {
	Attrs    map[string]string
	Children []Node
}

// Folder is a <Folder> container.
type Folder struct {
	Attrs    map[string]string
	Children []Node
}

func (*KmlDocument) node() {}
func (*Document) node()    {}
func (*Folder) node()      {}
