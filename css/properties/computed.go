// Package properties defines the computed style values consumed by the
// flex layout engine. Style computation itself (cascading, inheritance,
// unit conversion down to pixels and percentages) is the host's concern;
// the types here are its output.
package properties

import kw "github.com/uilayout/flexbox/css/properties/keywords"

// ComputedValues is the resolved style of one element, as far as flex
// layout is concerned. Lengths are in pixels, except where a percentage
// is kept to be resolved against a layout-time base value.
type ComputedValues struct {
	Display  Display
	Position Position

	OverflowX, OverflowY Overflow

	// Container properties.
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent kw.Keyword
	AlignItems     kw.Keyword
	AlignContent   kw.Keyword
	RowGap         Dimension
	ColumnGap      Dimension

	// Item properties.
	FlexGrow   Fl
	FlexShrink Fl
	FlexBasis  Value
	AlignSelf  kw.Keyword

	Width, Height       Value
	MinWidth, MinHeight Dimension
	// A negative value means no maximum.
	MaxWidth, MaxHeight Dimension

	MarginLeft, MarginRight, MarginTop, MarginBottom     Value
	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom Dimension
	BorderLeftWidth, BorderRightWidth                    Fl
	BorderTopWidth, BorderBottomWidth                    Fl

	BoxSizing BoxSizing
}

// InitialValues regroups the initial value of every recognized property.
var InitialValues = ComputedValues{
	JustifyContent: kw.FlexStart,
	AlignItems:     kw.Stretch,
	AlignContent:   kw.Stretch,
	AlignSelf:      kw.Auto,
	FlexShrink:     1,
	FlexBasis:      AutoValue,
	Width:          AutoValue,
	Height:         AutoValue,
	MaxWidth:       Dimension{Value: -1},
	MaxHeight:      Dimension{Value: -1},
}

// NewComputedValues returns a style holding the initial values.
func NewComputedValues() *ComputedValues {
	out := InitialValues
	return &out
}

// AxisComputedSize regroups the sizing style of one element along one
// physical axis, the form consumed by the flex item builder.
type AxisComputedSize struct {
	MarginA, MarginB   Value
	PaddingA, PaddingB Dimension
	BorderA, BorderB   Fl
	Size               Value
	MinSize            Dimension
	MaxSize            Dimension // negative value means no maximum
	BoxSizing          BoxSizing
}

// HorizontalSize projects the style on the horizontal axis
// (A is the left edge, B the right one).
func (c *ComputedValues) HorizontalSize() AxisComputedSize {
	return AxisComputedSize{
		MarginA:   c.MarginLeft,
		MarginB:   c.MarginRight,
		PaddingA:  c.PaddingLeft,
		PaddingB:  c.PaddingRight,
		BorderA:   c.BorderLeftWidth,
		BorderB:   c.BorderRightWidth,
		Size:      c.Width,
		MinSize:   c.MinWidth,
		MaxSize:   c.MaxWidth,
		BoxSizing: c.BoxSizing,
	}
}

// VerticalSize projects the style on the vertical axis
// (A is the top edge, B the bottom one).
func (c *ComputedValues) VerticalSize() AxisComputedSize {
	return AxisComputedSize{
		MarginA:   c.MarginTop,
		MarginB:   c.MarginBottom,
		PaddingA:  c.PaddingTop,
		PaddingB:  c.PaddingBottom,
		BorderA:   c.BorderTopWidth,
		BorderB:   c.BorderBottomWidth,
		Size:      c.Height,
		MinSize:   c.MinHeight,
		MaxSize:   c.MaxHeight,
		BoxSizing: c.BoxSizing,
	}
}
