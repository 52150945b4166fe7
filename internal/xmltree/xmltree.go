// Package xmltree decodes an XML document into a small navigable tree.
//
// Lookups are by local name and never fail: a missing child is a nil *Node,
// every method is safe on a nil receiver, and attributes come back as a
// value plus a presence flag. That keeps "is this property set" checks in
// callers short and explicit.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"

	"golang.org/x/net/html/charset"
)

// NamespaceW is the WordprocessingML main namespace. Attribute lookups
// prefer it when an element carries several attributes with the same local
// name.
const NamespaceW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ErrEmpty is returned by Parse for empty input.
var ErrEmpty = errors.New("xmltree: empty document")

// Node is an element and everything below it.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []Node     `xml:",any"`
	Content string     `xml:",chardata"`
}

// Parse decodes data and returns the root element. Documents that declare
// a non-UTF-8 encoding are transcoded.
func Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	d := xml.NewDecoder(bytes.NewReader(data))
	d.CharsetReader = charset.NewReaderLabel

	var root Node
	if err := d.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Name returns the element's local name, or "" for a nil node.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.XMLName.Local
}

// Is reports whether n is an element with the given local name.
func (n *Node) Is(local string) bool {
	return n != nil && n.XMLName.Local == local
}

// Child returns the first child element with the given local name, or nil.
func (n *Node) Child(local string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// Has reports whether a child element with the given local name exists.
func (n *Node) Has(local string) bool {
	return n.Child(local) != nil
}

// Children returns all child elements with the given local name, in
// document order.
func (n *Node) Children(local string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// Elements returns every child element in document order.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.Nodes))
	for i := range n.Nodes {
		out[i] = &n.Nodes[i]
	}
	return out
}

// Attr returns the value of the attribute with the given local name and
// whether it is present.
func (n *Node) Attr(local string) (string, bool) {
	if n == nil {
		return "", false
	}

	found := -1
	for i, a := range n.Attrs {
		if a.Name.Local != local {
			continue
		}
		if a.Name.Space == NamespaceW {
			return a.Value, true
		}
		if found < 0 {
			found = i
		}
	}
	if found < 0 {
		return "", false
	}
	return n.Attrs[found].Value, true
}

// ChildAttr is shorthand for n.Child(child).Attr(attr).
func (n *Node) ChildAttr(child, attr string) (string, bool) {
	return n.Child(child).Attr(attr)
}

// Text returns the character data directly inside the element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Content
}
