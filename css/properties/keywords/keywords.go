package keywords

// Keyword efficiently stores the CSS alignment keywords.
type Keyword uint8

const (
	_ Keyword = iota
	Auto
	Baseline
	Center
	FlexEnd
	FlexStart
	SpaceAround
	SpaceBetween
	Stretch
)

func NewKeyword(s string) Keyword {
	switch s {
	case "auto":
		return Auto
	case "baseline":
		return Baseline
	case "center":
		return Center
	case "flex-end":
		return FlexEnd
	case "flex-start":
		return FlexStart
	case "space-around":
		return SpaceAround
	case "space-between":
		return SpaceBetween
	case "stretch":
		return Stretch
	default:
		return 0
	}
}

func (k Keyword) String() string {
	switch k {
	case Auto:
		return "auto"
	case Baseline:
		return "baseline"
	case Center:
		return "center"
	case FlexEnd:
		return "flex-end"
	case FlexStart:
		return "flex-start"
	case SpaceAround:
		return "space-around"
	case SpaceBetween:
		return "space-between"
	case Stretch:
		return "stretch"
	default:
		return "<invalid keyword>"
	}
}
