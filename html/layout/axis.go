package layout

import (
	pr "github.com/uilayout/flexbox/css/properties"
)

// axisMapper translates between physical (x, y) and logical
// (main, cross) coordinates for a given flex-direction and flex-wrap.
// All phases of the algorithm work in logical coordinates; physical
// coordinates reappear only when formatting the items.
type axisMapper struct {
	mainHorizontal   bool // the main axis is the horizontal one
	directionReverse bool // items flow from the main end edge
	wrapReverse      bool // lines stack from the cross end edge
	singleLine       bool // no wrapping
}

func newAxisMapper(direction pr.FlexDirection, wrap pr.FlexWrap) axisMapper {
	return axisMapper{
		mainHorizontal:   direction == pr.Row || direction == pr.RowReverse,
		directionReverse: direction == pr.RowReverse || direction == pr.ColumnReverse,
		wrapReverse:      wrap == pr.WrapReverse,
		singleLine:       wrap == pr.Nowrap,
	}
}

// main projects v on the main axis.
func (a axisMapper) main(v pr.Point) Fl {
	if a.mainHorizontal {
		return v.X
	}
	return v.Y
}

// cross projects v on the cross axis.
func (a axisMapper) cross(v pr.Point) Fl {
	if a.mainHorizontal {
		return v.Y
	}
	return v.X
}

// point converts logical (main, cross) coordinates back to a physical
// vector.
func (a axisMapper) point(main, cross Fl) pr.Point {
	if a.mainHorizontal {
		return pr.Point{X: main, Y: cross}
	}
	return pr.Point{X: cross, Y: main}
}
