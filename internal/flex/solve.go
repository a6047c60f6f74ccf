package flex

// Solve computes a layout for the tree rooted at root within the available
// space. Every node in the tree has its Layout populated and its dirty flag
// cleared. Solving the same tree twice with unchanged inputs yields identical
// rectangles.
//
// The tree is an ownership tree (strict parent to child, no back edges), so
// the recursion always terminates; no cycle detection is needed.
func Solve(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// The root resolves its own constraints against the caller's available
	// space; auto dimensions fill it. Children instead receive their size
	// from the parent's flex pass.
	style := root.LayoutStyle()
	iw, ih := root.IntrinsicSize()
	width := max(style.Width.Resolve(availableWidth, availableWidth), iw)
	height := max(style.Height.Resolve(availableHeight, availableHeight), ih)

	solveNode(root, NewRect(0, 0, min(width, availableWidth), min(height, availableHeight)))
}

// solveNode computes the layout for one node within the border-box space the
// parent allocated to it (margin already applied by the parent).
func solveNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	borderBox := clampBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	children := node.LayoutChildren()
	if len(children) > 0 {
		solveChildren(style, children, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
}

// clampBox applies min/max constraints to the space the parent allocated.
// Width/Height were already consumed as the basis by the parent's flex pass.
func clampBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minW := style.MinWidth.Resolve(available.Width, 0)
	maxW := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minW, maxW)

	minH := style.MinHeight.Resolve(available.Height, 0)
	maxH := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minH, maxH)

	return Rect{X: available.X, Y: available.Y, Width: max(width, 0), Height: max(height, 0)}
}

// flexItem holds per-child intermediate state for one solve pass.
// Sizes are outer sizes: content plus the child's margin.
type flexItem struct {
	node      Layoutable
	style     Style
	basis     int
	floor     int // Minimum outer main size; shrink never cuts below this
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// solveChildren arranges children inside the parent's content rect: basis
// accumulation, grow/shrink distribution, cross-axis placement, then
// consecutive main-axis positioning in declaration order.
func solveChildren(parent Style, children []Layoutable, contentRect Rect) {
	isRow := parent.Direction == Row

	mainSpace := contentRect.Width
	crossSpace := contentRect.Height
	if !isRow {
		mainSpace, crossSpace = crossSpace, mainSpace
	}

	// Phase 1: basis accumulation. The basis on the main axis is
	// max(fixed basis, intrinsic content size) plus the child's margin.
	items := make([]flexItem, len(children))
	totalBasis := 0
	totalGrow := 0.0

	for i, child := range children {
		it := &items[i]
		it.node = child
		it.style = child.LayoutStyle()

		iw, ih := child.IntrinsicSize()
		intrinsicMain := iw
		mainMargin := it.style.Margin.Horizontal()
		mainValue := it.style.Width
		minValue := it.style.MinWidth
		if !isRow {
			intrinsicMain = ih
			mainMargin = it.style.Margin.Vertical()
			mainValue = it.style.Height
			minValue = it.style.MinHeight
		}

		it.basis = max(mainValue.Resolve(mainSpace, 0), intrinsicMain) + mainMargin
		it.floor = minValue.Resolve(mainSpace, 0) + mainMargin
		it.mainSize = it.basis

		totalBasis += it.basis
		totalGrow += it.style.Grow
	}

	// Gaps and margins reduce the distributable space before distribution.
	totalGap := parent.Gap * max(0, len(children)-1)
	remaining := mainSpace - totalBasis - totalGap

	// Phase 2: space distribution.
	switch {
	case remaining > 0 && totalGrow > 0:
		growItems(items, remaining, totalGrow)
	case remaining < 0:
		shrinkItems(items, -remaining)
	}

	// Max constraints cap individual children after distribution.
	for i := range items {
		maxValue := items[i].style.MaxWidth
		if !isRow {
			maxValue = items[i].style.MaxHeight
		}
		if !maxValue.IsAuto() {
			mainMargin := items[i].style.Margin.Horizontal()
			if !isRow {
				mainMargin = items[i].style.Margin.Vertical()
			}
			capped := maxValue.Resolve(mainSpace, mainSpace) + mainMargin
			if items[i].mainSize > capped {
				items[i].mainSize = capped
			}
		}
	}

	// Phase 3: cross-axis sizing and alignment.
	for i := range items {
		it := &items[i]

		align := parent.Align
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}

		crossValue := it.style.Height
		crossMargin := it.style.Margin.Vertical()
		intrinsicCross := 0
		if iw, ih := it.node.IntrinsicSize(); isRow {
			intrinsicCross = ih
		} else {
			crossValue = it.style.Width
			crossMargin = it.style.Margin.Horizontal()
			intrinsicCross = iw
		}

		if align == AlignStretch && crossValue.IsAuto() {
			it.crossSize = crossSpace
			it.crossPos = 0
			continue
		}

		cross := max(crossValue.Resolve(crossSpace-crossMargin, intrinsicCross), 0) + crossMargin
		if cross > crossSpace {
			cross = crossSpace
		}
		it.crossSize = cross
		// Integer division rounds toward the start edge.
		switch align {
		case AlignEnd:
			it.crossPos = crossSpace - cross
		case AlignCenter:
			it.crossPos = (crossSpace - cross) / 2
		default:
			it.crossPos = 0
		}
	}

	// Phase 4: consecutive placement along the main axis in declaration
	// order. When shrink capacity ran out the tail overflows the content
	// rect; painting clips it, so the last child absorbs the loss.
	offset := 0
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + parent.Gap
	}

	// Recurse: each child solves its own subtree within its slot minus its
	// margin.
	for i := range items {
		it := &items[i]
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + it.mainPos,
				Y:      contentRect.Y + it.crossPos,
				Width:  it.mainSize,
				Height: it.crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + it.crossPos,
				Y:      contentRect.Y + it.mainPos,
				Width:  it.crossSize,
				Height: it.mainSize,
			}
		}
		solveNode(it.node, slot.Inset(it.style.Margin))
	}
}

// growItems distributes free space proportionally to grow weights with exact
// integer conservation: truncation leftovers are handed out one cell at a
// time in declaration order, so the children sum to the full space.
func growItems(items []flexItem, free int, totalGrow float64) {
	distributed := 0
	for i := range items {
		if items[i].style.Grow <= 0 {
			continue
		}
		extra := int(float64(free) * items[i].style.Grow / totalGrow)
		items[i].mainSize += extra
		distributed += extra
	}
	for leftover := free - distributed; leftover > 0; {
		for i := range items {
			if leftover == 0 {
				break
			}
			if items[i].style.Grow > 0 {
				items[i].mainSize++
				leftover--
			}
		}
	}
}

// shrinkItems removes deficit proportionally to shrink weights, never cutting
// a child below its floor. Children that reach their floor freeze and the
// remainder is redistributed over the rest. Deficit beyond the total shrink
// capacity is left unabsorbed (the tail overflows and is clipped in paint).
func shrinkItems(items []flexItem, deficit int) {
	for deficit > 0 {
		totalShrink := 0.0
		for i := range items {
			if items[i].style.Shrink > 0 && items[i].mainSize > items[i].floor {
				totalShrink += items[i].style.Shrink
			}
		}
		if totalShrink == 0 {
			return
		}

		// Proportional cuts with the truncation leftover assigned in
		// declaration order, mirroring growItems.
		cuts := make([]int, len(items))
		assigned := 0
		for i := range items {
			if items[i].style.Shrink > 0 && items[i].mainSize > items[i].floor {
				cuts[i] = int(float64(deficit) * items[i].style.Shrink / totalShrink)
				assigned += cuts[i]
			}
		}
		for leftover := deficit - assigned; leftover > 0; {
			progress := false
			for i := range items {
				if leftover == 0 {
					break
				}
				if items[i].style.Shrink > 0 && items[i].mainSize-cuts[i] > items[i].floor {
					cuts[i]++
					leftover--
					progress = true
				}
			}
			if !progress {
				break
			}
		}

		removed := 0
		for i := range items {
			if cuts[i] == 0 {
				continue
			}
			room := items[i].mainSize - items[i].floor
			cut := min(cuts[i], room)
			items[i].mainSize -= cut
			removed += cut
		}
		if removed == 0 {
			return
		}
		deficit -= removed
	}
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
