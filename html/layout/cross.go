package layout

import (
	pr "github.com/uilayout/flexbox/css/properties"
	kw "github.com/uilayout/flexbox/css/properties/keywords"
	"github.com/uilayout/flexbox/utils"
)

// See https://www.w3.org/TR/css-flexbox-1/#cross-sizing

// determineCrossSizes finds the hypothetical cross size of every item,
// the cross size of every line, and the used cross size of every item.
func (fl *flexLayouter) determineCrossSizes(container flexContainer, axes axisMapper,
	crossAvailableSize, crossMinSize, crossMaxSize Fl, alignContent kw.Keyword,
) {
	// First determine the cross size of each item, formatting it if
	// necessary.
	for _, line := range container.lines {
		for i := range line.items {
			item := &line.items[i]

			var box Box
			fl.ctx.BuildBox(&box, fl.containingBlock, item.element, false)
			contentSize := box.Content
			usedMainSizeInner := item.usedMainSize - item.main.sumEdges

			if axes.mainHorizontal {
				if contentSize.Y < 0 {
					box.SetContent(pr.Point{X: usedMainSizeInner, Y: contentSize.Y})
					fl.ctx.FormatElement(item.element, fl.containingBlock, &box)
					item.hypotheticalCrossSize = box.Content.Y + item.cross.sumEdges
				} else {
					item.hypotheticalCrossSize = contentSize.Y + item.cross.sumEdges
				}
			} else {
				if contentSize.X < 0 || item.cross.autoSize {
					item.hypotheticalCrossSize = fl.ctx.ShrinkToFitWidth(item.element, fl.containingBlock) + item.cross.sumEdges
				} else {
					item.hypotheticalCrossSize = contentSize.X + item.cross.sumEdges
				}
			}
		}
	}

	// Determine the cross size of each line.
	if crossAvailableSize >= 0 && axes.singleLine && len(container.lines) == 1 {
		container.lines[0].crossSize = crossAvailableSize
	} else {
		for i := range container.lines {
			line := &container.lines[i]
			var largestHypotheticalCrossSize Fl
			for j := range line.items {
				largestHypotheticalCrossSize = utils.MaxF(largestHypotheticalCrossSize, line.items[j].hypotheticalCrossSize)
			}
			line.crossSize = utils.MaxF(0, largestHypotheticalCrossSize)

			if axes.singleLine {
				line.crossSize = utils.Clamp(line.crossSize, crossMinSize, crossMaxSize)
			}
		}
	}

	// Stretch out the lines if we have extra space.
	if crossAvailableSize >= 0 && alignContent == kw.Stretch {
		remainingSpace := crossAvailableSize
		for _, line := range container.lines {
			remainingSpace -= line.crossSize
		}
		if remainingSpace > 0 {
			addSpacePerLine := remainingSpace / Fl(len(container.lines))
			for i := range container.lines {
				container.lines[i].crossSize += addSpacePerLine
			}
		}
	}

	// Determine the used cross size of the items.
	for _, line := range container.lines {
		for i := range line.items {
			item := &line.items[i]
			stretchItem := item.alignSelf == kw.Stretch
			if stretchItem && item.cross.autoSize && !item.cross.autoMarginA && !item.cross.autoMarginB {
				item.usedCrossSize = utils.Clamp(line.crossSize-item.cross.sumEdges, item.cross.minSize, item.cross.maxSize) + item.cross.sumEdges
				// The specification asks for the item to be formatted
				// again with its stretched size, so that percentages in
				// its descendants resolve against it; this is skipped
				// for performance and they resolve against the
				// pre-stretch size instead.
			} else {
				item.usedCrossSize = item.hypotheticalCrossSize
			}
		}
	}
}
