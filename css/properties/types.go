package properties

import "github.com/uilayout/flexbox/utils"

type Fl = utils.Fl

// Point is a physical (x, y) vector of layout units.
type Point struct {
	X, Y Fl
}

type Unit uint8

const (
	Scalar Unit = iota // means no unit, but a valid value
	Px
	Perc // percentage (%)
)

// Dimension is a length, or a percentage resolved at layout time.
type Dimension struct {
	Value Fl
	Unit  Unit
}

// FToPx builds a pixel dimension.
func FToPx(v Fl) Dimension { return Dimension{Value: v, Unit: Px} }

// PercToD builds a percentage dimension.
func PercToD(v Fl) Dimension { return Dimension{Value: v, Unit: Perc} }

// ZeroPixels is the zero length.
var ZeroPixels = Dimension{Unit: Px}

// Resolve returns the dimension in layout units, resolving a percentage
// against baseValue.
func (d Dimension) Resolve(baseValue Fl) Fl {
	if d.Unit == Perc {
		return d.Value / 100 * baseValue
	}
	return d.Value
}

func (d Dimension) ToValue() Value { return Value{Dimension: d} }

// Value is a dimension which may be replaced by the "auto" keyword.
type Value struct {
	Dimension
	Auto bool
}

// AutoValue is the "auto" keyword.
var AutoValue = Value{Auto: true}

// Resolve returns the value in layout units; "auto" resolves to zero.
func (v Value) Resolve(baseValue Fl) Fl {
	if v.Auto {
		return 0
	}
	return v.Dimension.Resolve(baseValue)
}

type FlexDirection uint8

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

type FlexWrap uint8

const (
	Nowrap FlexWrap = iota
	Wrap
	WrapReverse
)

type BoxSizing uint8

const (
	ContentBox BoxSizing = iota
	BorderBox
)

type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayNone
)

type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)
