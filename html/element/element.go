// Package element provides the document surface the layout engine
// operates on: a tree of elements wrapping nodes from
// golang.org/x/net/html, carrying computed style and receiving layout
// offsets.
package element

import (
	"strings"

	pr "github.com/uilayout/flexbox/css/properties"
	"golang.org/x/net/html"
)

// Element is one node of the host document tree.
type Element struct {
	// Node is the underlying parsed node; it is never nil.
	Node *html.Node

	// Style is the element's computed style, resolved by the host.
	Style *pr.ComputedValues

	parent   *Element
	children []*Element

	offset       pr.Point // border box position, relative to offsetParent
	offsetParent *Element
}

// New wraps node with the given style. A nil style means the initial
// values.
func New(node *html.Node, style *pr.ComputedValues) *Element {
	if style == nil {
		style = pr.NewComputedValues()
	}
	return &Element{Node: node, Style: style}
}

// NewTag builds a detached element node named tag, with initial style.
func NewTag(tag string) *Element {
	return New(&html.Node{Type: html.ElementNode, Data: tag}, nil)
}

// AppendChild adds child at the end of e's child list, keeping the
// underlying html nodes linked, and returns child.
func (e *Element) AppendChild(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	if child.Node.Parent == nil {
		e.Node.AppendChild(child.Node)
	}
	return child
}

func (e *Element) NumChildren() int { return len(e.children) }

func (e *Element) Child(i int) *Element { return e.children[i] }

func (e *Element) Parent() *Element { return e.parent }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.Node.Data }

// Attribute returns the value of the named attribute, or "".
func (e *Element) Attribute(name string) string {
	for _, attr := range e.Node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// SetOffset positions the element's border box relative to offsetParent.
func (e *Element) SetOffset(offset pr.Point, offsetParent *Element) {
	e.offset = offset
	e.offsetParent = offsetParent
}

// Offset returns the border box position set by the last layout, relative
// to the offset parent.
func (e *Element) Offset() pr.Point { return e.offset }

// AbsoluteOffset returns the border box position relative to the document.
func (e *Element) AbsoluteOffset() pr.Point {
	out := e.offset
	for p := e.offsetParent; p != nil; p = p.offsetParent {
		out.X += p.offset.X
		out.Y += p.offset.Y
	}
	return out
}

// Address returns a short description of the element's position in the
// tree, used in warnings.
func (e *Element) Address() string {
	var parts []string
	for el := e; el != nil; el = el.parent {
		part := el.Tag()
		if id := el.Attribute("id"); id != "" {
			part += "#" + id
		}
		parts = append(parts, part)
	}
	for left, right := 0, len(parts)-1; left < right; left, right = left+1, right-1 {
		parts[left], parts[right] = parts[right], parts[left]
	}
	return strings.Join(parts, " > ")
}

// Parse builds an element tree from an HTML source, keeping only element
// nodes. The returned root is the document body; every element starts
// with a copy of the initial style.
func Parse(source string) (*Element, error) {
	document, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	body := findBody(document)
	root := New(body, nil)
	attachChildren(root)
	return root, nil
}

func findBody(node *html.Node) *html.Node {
	if node.Type == html.ElementNode && node.Data == "body" {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBody(child); found != nil {
			return found
		}
	}
	return nil
}

func attachChildren(e *Element) {
	for node := e.Node.FirstChild; node != nil; node = node.NextSibling {
		if node.Type != html.ElementNode {
			continue
		}
		child := New(node, nil)
		child.parent = e
		e.children = append(e.children, child)
		attachChildren(child)
	}
}
