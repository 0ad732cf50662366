package layout

import "github.com/uilayout/flexbox/utils"

// See https://www.w3.org/TR/css-flexbox-1/#resolve-flexible-lengths

func (line *flexLine) allFrozen() bool {
	for i := range line.items {
		if !line.items[i].frozen {
			return false
		}
	}
	return true
}

// remainingFreeSpace is the used main size minus the outer sizes of the
// items, counting frozen items at their target size and the others at
// their flex base size.
func (line *flexLine) remainingFreeSpace(usedMainSize Fl) Fl {
	out := usedMainSize
	for i := range line.items {
		item := &line.items[i]
		if item.frozen {
			out -= item.targetMainSize
		} else {
			out -= item.flexBaseSize
		}
	}
	return out
}

// resolveFlexibleLengths grows or shrinks the items of one line to fill
// the used main size, iterating on min/max violations until every item
// is frozen. Each iteration freezes at least one item, so at most
// len(items)+1 iterations run.
func resolveFlexibleLengths(line *flexLine, usedMainSize Fl) {
	availableFlexSpace := usedMainSize - line.accumulatedHypotheticalMainSize // possibly negative

	flexModeGrow := availableFlexSpace > 0

	flexFactor := func(item *flexItem) Fl {
		if flexModeGrow {
			return item.flexGrowFactor
		}
		return item.flexShrinkFactor
	}

	// Initialize the items, freezing the inflexible ones.
	for i := range line.items {
		item := &line.items[i]
		item.targetMainSize = item.flexBaseSize

		if flexFactor(item) == 0 ||
			(flexModeGrow && item.flexBaseSize > item.hypotheticalMainSize) ||
			(!flexModeGrow && item.flexBaseSize < item.hypotheticalMainSize) {
			item.frozen = true
			item.targetMainSize = item.hypotheticalMainSize
		}
	}

	initialFreeSpace := line.remainingFreeSpace(usedMainSize)

	// Iteratively distribute the free space, until all items are frozen.
	for !line.allFrozen() {
		remainingFreeSpace := line.remainingFreeSpace(usedMainSize)

		var flexFactorSum Fl
		for i := range line.items {
			if item := &line.items[i]; !item.frozen {
				flexFactorSum += flexFactor(item)
			}
		}

		if flexFactorSum < 1 {
			if scaled := initialFreeSpace * flexFactorSum; utils.AbsF(scaled) < utils.AbsF(remainingFreeSpace) {
				remainingFreeSpace = scaled
			}
		}

		if remainingFreeSpace != 0 {
			// Distribute the free space proportionally to the flex
			// factors.
			if flexModeGrow {
				for i := range line.items {
					item := &line.items[i]
					if !item.frozen {
						distributeRatio := item.flexGrowFactor / flexFactorSum
						item.targetMainSize = item.flexBaseSize + distributeRatio*remainingFreeSpace
					}
				}
			} else {
				var scaledFlexShrinkFactorSum Fl
				for i := range line.items {
					item := &line.items[i]
					if !item.frozen {
						scaledFlexShrinkFactorSum += item.flexShrinkFactor * item.innerFlexBaseSize
					}
				}
				for i := range line.items {
					item := &line.items[i]
					if !item.frozen && scaledFlexShrinkFactorSum != 0 {
						scaledFlexShrinkFactor := item.flexShrinkFactor * item.innerFlexBaseSize
						distributeRatio := scaledFlexShrinkFactor / scaledFlexShrinkFactorSum
						item.targetMainSize = item.flexBaseSize - distributeRatio*utils.AbsF(remainingFreeSpace)
					}
				}
			}
		}

		// Clamp the min/max violations.
		var totalViolation Fl

		for i := range line.items {
			item := &line.items[i]
			if item.frozen {
				continue
			}

			innerTargetMainSize := utils.MaxF(0, item.targetMainSize-item.main.sumEdges)
			clampedTargetMainSize := utils.Clamp(innerTargetMainSize, item.main.minSize, item.main.maxSize) + item.main.sumEdges

			violationDiff := clampedTargetMainSize - item.targetMainSize
			switch {
			case violationDiff > 0:
				item.violation = minViolation
			case violationDiff < 0:
				item.violation = maxViolation
			default:
				item.violation = noViolation
			}
			item.targetMainSize = clampedTargetMainSize

			totalViolation += violationDiff
		}

		// Freeze the items according to the sign of the total violation.
		for i := range line.items {
			item := &line.items[i]
			switch {
			case totalViolation > 0:
				item.frozen = item.frozen || item.violation == minViolation
			case totalViolation < 0:
				item.frozen = item.frozen || item.violation == maxViolation
			default:
				item.frozen = true
			}
		}
	}

	// Now each item's used main size is found.
	for i := range line.items {
		item := &line.items[i]
		item.usedMainSize = item.targetMainSize
	}
}
