package store

import (
	"github.com/subchen/go-xmldom"
	"github.com/tableauio/jsonsh/node"
)

// MarshalToXML marshals the given node in the XML format. Each value becomes
// an element named by its kind; object members carry their key in the "key"
// attribute:
//
//	<object>
//	  <number key="n">1</number>
//	  <array key="arr">
//	    <string>s</string>
//	  </array>
//	</object>
func MarshalToXML(root *node.Node, pretty bool) []byte {
	doc := xmldom.NewDocument(root.Kind().String())
	fillXMLNode(doc.Root, root)
	if pretty {
		return []byte(doc.XMLPretty())
	}
	return []byte(doc.XML())
}

func fillXMLNode(elem *xmldom.Node, n *node.Node) {
	switch n.Kind() {
	case node.ObjectNode:
		n.Each(func(key string, value *node.Node) {
			child := elem.CreateNode(value.Kind().String())
			child.SetAttributeValue("key", key)
			fillXMLNode(child, value)
		})
	case node.ArrayNode:
		for _, value := range n.Elems() {
			child := elem.CreateNode(value.Kind().String())
			fillXMLNode(child, value)
		}
	case node.StringNode, node.NumberNode:
		elem.Text, _ = n.Text()
	case node.BoolNode:
		if b, _ := n.Bool(); b {
			elem.Text = "true"
		} else {
			elem.Text = "false"
		}
	}
}
