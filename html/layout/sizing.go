package layout

import (
	pr "github.com/uilayout/flexbox/css/properties"
	"github.com/uilayout/flexbox/utils"
)

// itemSizing is the resolved sizing of one flex item along one logical
// axis. Sizes are inner (content box) sizes; sumEdges converts them to
// outer (margin box) sizes.
type itemSizing struct {
	autoMarginA, autoMarginB bool
	autoSize                 bool

	marginA, marginB Fl // zero when the margin is auto
	sumEdges         Fl // margins + paddings + borders, on both sides

	minSize, maxSize Fl // inner sizes; maxSize is +Inf when unspecified
}

func resolveEdgeSizes(computed pr.AxisComputedSize, baseValue Fl) (marginA, marginB, paddingBorderA, paddingBorderB Fl) {
	marginA = computed.MarginA.Resolve(baseValue)
	marginB = computed.MarginB.Resolve(baseValue)

	paddingBorderA = utils.MaxF(0, computed.PaddingA.Resolve(baseValue)) + utils.MaxF(0, computed.BorderA)
	paddingBorderB = utils.MaxF(0, computed.PaddingB.Resolve(baseValue)) + utils.MaxF(0, computed.BorderB)
	return
}

// computeItemSizing resolves the computed per-axis style against
// baseValue. With reverse, the A and B edges are swapped, so that A is
// always the edge where the main (or cross) axis starts.
func computeItemSizing(computed pr.AxisComputedSize, baseValue Fl, reverse bool) itemSizing {
	marginA, marginB, paddingBorderA, paddingBorderB := resolveEdgeSizes(computed, baseValue)

	paddingBorder := paddingBorderA + paddingBorderB

	out := itemSizing{
		autoMarginA: computed.MarginA.Auto,
		autoMarginB: computed.MarginB.Auto,
		autoSize:    computed.Size.Auto,
		marginA:     marginA,
		marginB:     marginB,
		sumEdges:    paddingBorder + marginA + marginB,
		minSize:     computed.MinSize.Resolve(baseValue),
	}

	if computed.MaxSize.Value < 0 {
		out.maxSize = utils.Inf
	} else {
		out.maxSize = computed.MaxSize.Resolve(baseValue)
	}

	// Min and max sizes apply to the inner size.
	if computed.BoxSizing == pr.BorderBox {
		out.minSize = utils.MaxF(0, out.minSize-paddingBorder)
		if out.maxSize < utils.Inf {
			out.maxSize = utils.MaxF(0, out.maxSize-paddingBorder)
		}
	}

	if reverse {
		out.autoMarginA, out.autoMarginB = out.autoMarginB, out.autoMarginA
		out.marginA, out.marginB = out.marginB, out.marginA
	}

	return out
}
