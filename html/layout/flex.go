package layout

import (
	pr "github.com/uilayout/flexbox/css/properties"
	kw "github.com/uilayout/flexbox/css/properties/keywords"
	"github.com/uilayout/flexbox/html/element"
	"github.com/uilayout/flexbox/logger"
	"github.com/uilayout/flexbox/utils"
)

// Layout for flex containers and flex items.
// See https://www.w3.org/TR/css-flexbox-1/#layout-algorithm

type violation uint8

const (
	noViolation violation = iota
	minViolation
	maxViolation
)

type flexItem struct {
	element *element.Element

	// Filled during the build step.
	main, cross      itemSizing
	flexShrinkFactor Fl
	flexGrowFactor   Fl
	alignSelf        kw.Keyword // "auto" is replaced by the container's align-items value

	innerFlexBaseSize    Fl // inner size
	flexBaseSize         Fl // outer size
	hypotheticalMainSize Fl // outer size

	// Used when resolving the flexible lengths.
	frozen         bool
	violation      violation
	targetMainSize Fl // outer size
	usedMainSize   Fl // outer size (without auto margins)

	mainAutoMarginSizeA, mainAutoMarginSizeB Fl
	mainOffset                               Fl

	// Used when resolving the cross size.
	hypotheticalCrossSize Fl // outer size
	usedCrossSize         Fl // outer size
	crossOffset           Fl // offset within the line
}

type flexLine struct {
	items []flexItem

	accumulatedHypotheticalMainSize Fl

	crossSize                    Fl
	crossSpacingA, crossSpacingB Fl
	crossOffset                  Fl
}

type flexContainer struct {
	lines []flexLine
}

// Format lays out the children of the flex container el.
//
// On entry the size of box may be negative on either axis, meaning the
// available space is infinite there; on return its content size is set
// to the resulting content size of the container. minSize and maxSize
// clamp the container's own content size, and containingBlock is used to
// resolve percentages which would otherwise resolve against an infinite
// size.
//
// Every laid out child has its offset set relative to el. The returned
// point is the overflow extent: the maximum over the children of their
// right and bottom visible edges within the container's content box.
func Format(ctx Formatter, box *Box, minSize, maxSize, containingBlock pr.Point, el *element.Element) pr.Point {
	computed := el.Style

	if !(computed.OverflowX == pr.OverflowVisible || computed.OverflowX == pr.OverflowHidden) ||
		!(computed.OverflowY == pr.OverflowVisible || computed.OverflowY == pr.OverflowHidden) {
		logger.WarningLogger.Printf("scrolling flex containers are not implemented: %s", el.Address())
		return pr.Point{}
	}

	contentOffset := box.Position
	availableContentSize := box.Content // may be negative for infinite space

	contentContainingBlock := availableContentSize
	if contentContainingBlock.Y < 0 {
		contentContainingBlock.Y = containingBlock.Y
	}

	utils.SnapToPixelGrid(&contentOffset.X, &availableContentSize.X)
	utils.SnapToPixelGrid(&contentOffset.Y, &availableContentSize.Y)

	fl := flexLayouter{
		ctx:                  ctx,
		element:              el,
		availableContentSize: availableContentSize,
		containingBlock:      contentContainingBlock,
		contentOffset:        contentOffset,
		minSize:              minSize,
		maxSize:              maxSize,
		// The gaps are resolved here but not yet incorporated in line
		// accumulation and main offsets.
		gap: pr.Point{
			X: resolveGap(computed.ColumnGap, availableContentSize.X),
			Y: resolveGap(computed.RowGap, availableContentSize.Y),
		},
	}

	fl.format()

	box.SetContent(fl.resultingContentSize)

	return fl.overflowSize
}

// resolveGap resolves a gap property, treating an infinite base value as
// zero rather than dividing by it.
func resolveGap(gap pr.Dimension, availableSize Fl) Fl {
	if availableSize < 0 {
		availableSize = 0
	}
	return gap.Resolve(availableSize)
}

type flexLayouter struct {
	ctx     Formatter
	element *element.Element

	availableContentSize pr.Point // negative axes mean infinite space
	containingBlock      pr.Point
	contentOffset        pr.Point
	minSize, maxSize     pr.Point
	gap                  pr.Point

	resultingContentSize pr.Point
	overflowSize         pr.Point
}

func (fl *flexLayouter) format() {
	computed := fl.element.Style
	axes := newAxisMapper(computed.FlexDirection, computed.FlexWrap)

	mainAvailableSize := axes.main(fl.availableContentSize)
	crossAvailableSize := axes.cross(fl.availableContentSize)

	mainMinSize, mainMaxSize := axes.main(fl.minSize), axes.main(fl.maxSize)
	crossMinSize, crossMaxSize := axes.cross(fl.minSize), axes.cross(fl.maxSize)

	// For the purpose of placing items, infinite size becomes a big value.
	mainWrapSize := mainAvailableSize
	if mainWrapSize < 0 {
		mainWrapSize = utils.Inf
	}
	mainWrapSize = utils.Clamp(mainWrapSize, mainMinSize, mainMaxSize)

	// For the purpose of resolving lengths, infinite size becomes zero.
	mainSizeBaseValue := utils.MaxF(0, mainAvailableSize)
	crossSizeBaseValue := utils.MaxF(0, crossAvailableSize)

	items := fl.buildItems(axes, mainSizeBaseValue, crossSizeBaseValue)
	if len(items) == 0 {
		return
	}

	container := collectLines(items, axes.singleLine, mainWrapSize)

	// If the available main size is infinite, the used main size becomes
	// the accumulated outer size of all items of the widest line.
	usedMainSize := mainAvailableSize
	if usedMainSize < 0 {
		for _, line := range container.lines {
			usedMainSize = utils.MaxF(usedMainSize, line.accumulatedHypotheticalMainSize)
		}
	}

	for i := range container.lines {
		resolveFlexibleLengths(&container.lines[i], usedMainSize)
	}

	// Main alignment comes before cross sizing: rounding to the pixel
	// grid can change the main size slightly, and the cross size depends
	// on the main size.
	fl.alignMainAxis(container, axes, usedMainSize, computed.JustifyContent)

	fl.determineCrossSizes(container, axes, crossAvailableSize, crossMinSize, crossMaxSize, computed.AlignContent)

	usedCrossSize := fl.alignCrossAxis(container, axes, crossAvailableSize, computed.AlignContent)

	fl.formatItems(container, axes)

	fl.resultingContentSize = axes.point(usedMainSize, usedCrossSize)
}

// buildItems creates one flex item per laid out child, with its base
// size information.
func (fl *flexLayouter) buildItems(axes axisMapper, mainSizeBaseValue, crossSizeBaseValue Fl) []flexItem {
	containerComputed := fl.element.Style

	var items []flexItem
	for i := 0; i < fl.element.NumChildren(); i++ {
		child := fl.element.Child(i)
		computed := child.Style

		if computed.Display == pr.DisplayNone {
			continue
		} else if computed.Position == pr.PositionAbsolute || computed.Position == pr.PositionFixed {
			// Absolutely positioned children do not take part in flex
			// layout.
			continue
		}

		item := flexItem{element: child}

		computedMainSize, computedCrossSize := computed.VerticalSize(), computed.HorizontalSize()
		if axes.mainHorizontal {
			computedMainSize, computedCrossSize = computedCrossSize, computedMainSize
		}

		item.main = computeItemSizing(computedMainSize, mainSizeBaseValue, axes.directionReverse)
		item.cross = computeItemSizing(computedCrossSize, crossSizeBaseValue, axes.wrapReverse)

		item.flexShrinkFactor = computed.FlexShrink
		item.flexGrowFactor = computed.FlexGrow

		// Use the container's align-items property if align-self is auto.
		item.alignSelf = computed.AlignSelf
		if item.alignSelf == kw.Auto {
			item.alignSelf = containerComputed.AlignItems
		}

		sumPaddingBorder := item.main.sumEdges - (item.main.marginA + item.main.marginB)

		// Find the flex base size (possibly negative when using border
		// box sizing).
		if !computed.FlexBasis.Auto {
			item.innerFlexBaseSize = computed.FlexBasis.Resolve(mainSizeBaseValue)
			if computed.BoxSizing == pr.BorderBox {
				item.innerFlexBaseSize -= sumPaddingBorder
			}
		} else if !item.main.autoSize {
			item.innerFlexBaseSize = computedMainSize.Size.Resolve(mainSizeBaseValue)
			if computed.BoxSizing == pr.BorderBox {
				item.innerFlexBaseSize -= sumPaddingBorder
			}
		} else if axes.mainHorizontal {
			item.innerFlexBaseSize = fl.ctx.ShrinkToFitWidth(child, fl.containingBlock)
		} else {
			var box Box
			fl.ctx.BuildBox(&box, fl.containingBlock, child, false)
			if box.Content.Y >= 0 {
				item.innerFlexBaseSize = box.Content.Y
			} else {
				fl.ctx.FormatElement(child, fl.containingBlock, &box)
				item.innerFlexBaseSize = box.Content.Y
			}
		}

		// The hypothetical main size is the clamped flex base size.
		item.hypotheticalMainSize = utils.Clamp(item.innerFlexBaseSize, item.main.minSize, item.main.maxSize) + item.main.sumEdges
		item.flexBaseSize = item.innerFlexBaseSize + item.main.sumEdges

		items = append(items, item)
	}
	return items
}

// collectLines groups the items into flex lines.
func collectLines(items []flexItem, singleLine bool, mainWrapSize Fl) flexContainer {
	var container flexContainer

	if singleLine {
		container.lines = []flexLine{{items: items}}
	} else {
		var cursor Fl
		var lineItems []flexItem

		for _, item := range items {
			cursor += item.hypotheticalMainSize

			if len(lineItems) != 0 && cursor > mainWrapSize {
				// Break into a new line.
				container.lines = append(container.lines, flexLine{items: lineItems})
				cursor = item.hypotheticalMainSize
				lineItems = []flexItem{item}
			} else {
				lineItems = append(lineItems, item)
			}
		}

		if len(lineItems) != 0 {
			container.lines = append(container.lines, flexLine{items: lineItems})
		}
	}

	for i := range container.lines {
		line := &container.lines[i]
		line.accumulatedHypotheticalMainSize = 0
		for _, item := range line.items {
			line.accumulatedHypotheticalMainSize += item.hypotheticalMainSize
		}
	}

	return container
}

// formatItems formats every item with its final size and writes the
// offsets, accumulating the visible overflow.
func (fl *flexLayouter) formatItems(container flexContainer, axes axisMapper) {
	for _, line := range container.lines {
		for i := range line.items {
			item := &line.items[i]

			var box Box
			fl.ctx.BuildBox(&box, fl.containingBlock, item.element, false)

			itemMainSize := item.usedMainSize - item.main.sumEdges
			itemCrossSize := item.usedCrossSize - item.cross.sumEdges
			itemCrossOffset := line.crossOffset + item.crossOffset

			box.SetContent(axes.point(itemMainSize, itemCrossSize))

			itemOffset := axes.point(item.mainOffset, itemCrossOffset)

			overflow := fl.ctx.FormatElement(item.element, fl.containingBlock, &box)

			// Set the position of the element within the flex container.
			item.element.SetOffset(pr.Point{
				X: fl.contentOffset.X + itemOffset.X,
				Y: fl.contentOffset.Y + itemOffset.Y,
			}, fl.element)

			// The item contents may overflow; propagate this to the flex
			// container.
			fl.overflowSize.X = utils.MaxF(fl.overflowSize.X, itemOffset.X+overflow.X)
			fl.overflowSize.Y = utils.MaxF(fl.overflowSize.Y, itemOffset.Y+overflow.Y)
		}
	}
}
