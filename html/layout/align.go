package layout

import (
	kw "github.com/uilayout/flexbox/css/properties/keywords"
	"github.com/uilayout/flexbox/logger"
	"github.com/uilayout/flexbox/utils"
)

// Main and cross axis alignment.
// See https://www.w3.org/TR/css-flexbox-1/#alignment

// alignMainAxis distributes the remaining main space of each line to the
// auto margins, or according to justify-content, then computes the main
// offsets and snaps the outer edges to the pixel grid.
func (fl *flexLayouter) alignMainAxis(container flexContainer, axes axisMapper, usedMainSize Fl, justifyContent kw.Keyword) {
	for _, line := range container.lines {
		remainingFreeSpace := usedMainSize
		for i := range line.items {
			remainingFreeSpace -= line.items[i].usedMainSize
		}

		if remainingFreeSpace > 0 {
			numAutoMargins := 0
			for i := range line.items {
				item := &line.items[i]
				if item.main.autoMarginA {
					numAutoMargins++
				}
				if item.main.autoMarginB {
					numAutoMargins++
				}
			}

			if numAutoMargins > 0 {
				// Distribute the remaining space to the auto margins.
				spacePerAutoMargin := remainingFreeSpace / Fl(numAutoMargins)
				for i := range line.items {
					item := &line.items[i]
					if item.main.autoMarginA {
						item.mainAutoMarginSizeA = spacePerAutoMargin
					}
					if item.main.autoMarginB {
						item.mainAutoMarginSizeB = spacePerAutoMargin
					}
				}
			} else {
				// Distribute the remaining space based on justify-content.
				numItems := len(line.items)

				if justifyContent == kw.SpaceBetween && numItems > 1 {
					spacePerEdge := remainingFreeSpace / Fl(2*numItems-2)
					for i := range line.items {
						item := &line.items[i]
						if i > 0 {
							item.mainAutoMarginSizeA = spacePerEdge
						}
						if i < numItems-1 {
							item.mainAutoMarginSizeB = spacePerEdge
						}
					}
				} else {
					switch justifyContent {
					case kw.SpaceBetween, kw.FlexStart:
						// A single item line under space-between behaves
						// as flex-start.
						line.items[numItems-1].mainAutoMarginSizeB = remainingFreeSpace
					case kw.FlexEnd:
						line.items[0].mainAutoMarginSizeA = remainingFreeSpace
					case kw.Center:
						line.items[0].mainAutoMarginSizeA = 0.5 * remainingFreeSpace
						line.items[numItems-1].mainAutoMarginSizeB = 0.5 * remainingFreeSpace
					case kw.SpaceAround:
						spacePerEdge := remainingFreeSpace / Fl(2*numItems)
						for i := range line.items {
							item := &line.items[i]
							item.mainAutoMarginSizeA = spacePerEdge
							item.mainAutoMarginSizeB = spacePerEdge
						}
					}
				}
			}
		}

		// Now find the offsets and snap the outer edges to the pixel grid.
		first := &line.items[0]
		reverseOffset := usedMainSize - first.usedMainSize + first.main.marginA + first.main.marginB
		var cursor Fl
		for i := range line.items {
			item := &line.items[i]
			item.mainOffset = cursor + item.main.marginA + item.mainAutoMarginSizeA
			cursor += item.usedMainSize + item.mainAutoMarginSizeA + item.mainAutoMarginSizeB

			if axes.directionReverse {
				item.mainOffset = reverseOffset - item.mainOffset
			}

			utils.SnapToPixelGrid(&item.mainOffset, &item.usedMainSize)
		}
	}
}

// alignCrossAxis positions the items within their line and the lines
// within the container, and returns the used cross size of the
// container.
func (fl *flexLayouter) alignCrossAxis(container flexContainer, axes axisMapper, crossAvailableSize Fl, alignContent kw.Keyword) Fl {
	for _, line := range container.lines {
		for i := range line.items {
			item := &line.items[i]
			remainingSpace := line.crossSize - item.usedCrossSize

			item.crossOffset = item.cross.marginA

			if remainingSpace > 0 {
				numAutoMargins := 0
				if item.cross.autoMarginA {
					numAutoMargins++
				}
				if item.cross.autoMarginB {
					numAutoMargins++
				}
				if numAutoMargins > 0 {
					spacePerAutoMargin := remainingSpace / Fl(numAutoMargins)
					if item.cross.autoMarginA {
						item.crossOffset = item.cross.marginA + spacePerAutoMargin
					}
				} else {
					switch item.alignSelf {
					case kw.FlexStart:
						// Do nothing.
					case kw.FlexEnd:
						item.crossOffset = item.cross.marginA + remainingSpace
					case kw.Center:
						item.crossOffset = item.cross.marginA + 0.5*remainingSpace
					case kw.Baseline:
						logger.WarningLogger.Printf("flexbox baseline alignment is not implemented, treated as flex-start: %s",
							item.element.Address())
					case kw.Stretch:
						// Handled during cross sizing.
					}
				}
			}

			if axes.wrapReverse {
				reverseOffset := line.crossSize - item.usedCrossSize + item.cross.marginA + item.cross.marginB
				item.crossOffset = reverseOffset - item.crossOffset
			}
		}

		// Snap the outer item cross edges to the pixel grid.
		for i := range line.items {
			item := &line.items[i]
			utils.SnapToPixelGrid(&item.crossOffset, &item.usedCrossSize)
		}
	}

	var accumulatedLinesCrossSize Fl
	for _, line := range container.lines {
		accumulatedLinesCrossSize += line.crossSize
	}

	// If the available cross size is infinite, the used cross size
	// becomes the accumulated line cross size.
	usedCrossSize := crossAvailableSize
	if usedCrossSize < 0 {
		usedCrossSize = accumulatedLinesCrossSize
	}

	// Align the lines along the cross axis.
	remainingFreeSpace := usedCrossSize - accumulatedLinesCrossSize
	numLines := len(container.lines)

	if remainingFreeSpace > 0 {
		if alignContent == kw.SpaceBetween && numLines > 1 {
			spacePerEdge := remainingFreeSpace / Fl(2*numLines-2)
			for i := range container.lines {
				line := &container.lines[i]
				if i > 0 {
					line.crossSpacingA = spacePerEdge
				}
				if i < numLines-1 {
					line.crossSpacingB = spacePerEdge
				}
			}
		}

		switch alignContent {
		case kw.SpaceBetween, kw.FlexStart:
			// Space-between keeps falling through here, overwriting the
			// last line's trailing spacing with the whole remaining
			// space. Kept as is to match the reference behavior.
			container.lines[numLines-1].crossSpacingB = remainingFreeSpace
		case kw.FlexEnd:
			container.lines[0].crossSpacingA = remainingFreeSpace
		case kw.Center:
			container.lines[0].crossSpacingA = 0.5 * remainingFreeSpace
			container.lines[numLines-1].crossSpacingB = 0.5 * remainingFreeSpace
		case kw.SpaceAround:
			spacePerEdge := remainingFreeSpace / Fl(2*numLines)
			for i := range container.lines {
				line := &container.lines[i]
				line.crossSpacingA = spacePerEdge
				line.crossSpacingB = spacePerEdge
			}
		case kw.Stretch:
			// Handled during cross sizing.
		}
	}

	// Now find the line offsets and snap the line edges to the pixel
	// grid.
	reverseOffset := usedCrossSize - container.lines[0].crossSize
	var cursor Fl
	for i := range container.lines {
		line := &container.lines[i]
		line.crossOffset = cursor + line.crossSpacingA
		cursor = line.crossOffset + line.crossSize + line.crossSpacingB

		if axes.wrapReverse {
			line.crossOffset = reverseOffset - line.crossOffset
		}

		utils.SnapToPixelGrid(&line.crossOffset, &line.crossSize)
	}

	return usedCrossSize
}
