package config

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Node is one element of the parsed configuration document. Child
// elements are kept in document order; attribute and text access is
// limited to what the recognized tags use.
type Node struct {
	XMLName  xml.Name
	Class    string `xml:"class,attr"`
	Resource string `xml:"resource,attr"`
	Text     string `xml:",chardata"`
	Nodes    []Node `xml:",any"`
}

// parseDocument decodes the configuration document's root element.
func parseDocument(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing configuration document: %w", err)
	}
	return &root, nil
}

// tag returns the element's local name.
func (n *Node) tag() string { return n.XMLName.Local }

// child returns the first direct child with the given tag, or nil.
func (n *Node) child(tag string) *Node {
	for i := range n.Nodes {
		if n.Nodes[i].tag() == tag {
			return &n.Nodes[i]
		}
	}
	return nil
}

// directChildren returns the direct children with the given tag in
// document order.
func (n *Node) directChildren(tag string) []*Node {
	var out []*Node
	for i := range n.Nodes {
		if n.Nodes[i].tag() == tag {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// descendants returns every descendant element with the given tag in
// document order, excluding n itself.
func (n *Node) descendants(tag string) []*Node {
	var out []*Node
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.tag() == tag {
			out = append(out, child)
		}
		out = append(out, child.descendants(tag)...)
	}
	return out
}
