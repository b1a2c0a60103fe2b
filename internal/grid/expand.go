package grid

import "github.com/mvikstrom/chromalife/internal/cell"

// Expand grows the grid toward the target dimensions, clamped to the
// configured maxima. The old contents are copied centered into the new grid;
// new cells start dead. Requests beyond the maxima are capped, never errors.
// It returns the centering offset and whether a resize occurred.
func (g *Grid) Expand(targetW, targetH int) (offsetX, offsetY int, grew bool) {
	newW := min(max(g.w, targetW), g.maxW)
	newH := min(max(g.h, targetH), g.maxH)
	if newW == g.w && newH == g.h {
		return 0, 0, false
	}

	offsetX = (newW - g.w) / 2
	offsetY = (newH - g.h) / 2

	next := make([]cell.State, newW*newH)
	for y := 0; y < g.h; y++ {
		src := g.cells[y*g.w : (y+1)*g.w]
		dst := next[(y+offsetY)*newW+offsetX:]
		copy(dst[:g.w], src)
	}

	g.cells = next
	g.w, g.h = newW, newH
	return offsetX, offsetY, true
}
