// Package layout implements the CSS Flexible Box Layout Module Level 1
// algorithm for a flex container: wrapping, flexible length resolution,
// cross sizing, main and cross alignment, and line packing.
//
// The engine determines the size and position of every child of one
// container, and the container's own content size and overflow extent.
// Formatting of each child's own subtree, style computation and
// rendering are delegated to the host through the Formatter interface.
//
// All sizes are in layout units; a negative available size denotes
// infinite space.
package layout

import (
	pr "github.com/uilayout/flexbox/css/properties"
	"github.com/uilayout/flexbox/html/element"
	"github.com/uilayout/flexbox/utils"
)

type Fl = utils.Fl

// Edges stores a length for each of the four physical box edges.
type Edges struct {
	Top, Right, Bottom, Left Fl
}

// Box describes an element's content box: the content size, the position
// of the content box within the border box, and the resolved edge widths.
//
// A negative content size on an axis means the size is not known yet and
// depends on the content.
type Box struct {
	Content  pr.Point
	Position pr.Point

	Margin, Border, Padding Edges
}

// SetContent updates the content size, keeping negative sentinels as is.
func (b *Box) SetContent(size pr.Point) { b.Content = size }

// Size returns the content size.
func (b *Box) Size() pr.Point { return b.Content }

// Formatter is the host side of the layout: it owns style computation
// and the formatting of each child's own subtree. All methods are
// synchronous and must not mutate the container being laid out.
type Formatter interface {
	// BuildBox fills box with the element's margins, borders, paddings
	// and its specified content size, which may be negative on an axis
	// when it depends on the content. inlineElement selects the inline
	// sizing rules.
	BuildBox(box *Box, containingBlock pr.Point, el *element.Element, inlineElement bool)

	// FormatElement lays out the element's whole subtree against box,
	// updating the box content size, and returns the subtree's visible
	// overflow extent.
	FormatElement(el *element.Element, containingBlock pr.Point, box *Box) (overflow pr.Point)

	// ShrinkToFitWidth returns the intrinsic width the element would
	// adopt given unbounded horizontal space.
	ShrinkToFitWidth(el *element.Element, containingBlock pr.Point) Fl
}
