package urdf

import "github.com/antchfx/xmlquery"

// attrValue returns the value of the named attribute and whether it is
// present. Presence matters: an empty attribute is not the same as a
// missing one.
func attrValue(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// hasAttr reports whether the named attribute is present.
func hasAttr(n *xmlquery.Node, name string) bool {
	_, ok := attrValue(n, name)
	return ok
}

// childElement returns the first child element with the given tag, or nil.
func childElement(n *xmlquery.Node, tag string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// childElements returns all child elements with the given tag, in
// document order.
func childElements(n *xmlquery.Node, tag string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

// firstChildElement returns the first child element regardless of tag,
// or nil if the node has no element children.
func firstChildElement(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}
