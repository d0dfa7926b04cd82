package main

import (
	"backdrop/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowPointer adapts GLFW cursor events to engine.PointerSource.
// Positions are reported in screen coordinates so deltas are measured
// against the whole viewport, not just the backdrop window. GLFW reports
// touchscreen drags as cursor movement with the left button held; those are
// delivered as single-touch moves.
type windowPointer struct {
	window *glfw.Window
	cursor []func(x, y float64)
	touch  []func([]input.Point)
}

func newWindowPointer(w *glfw.Window) *windowPointer {
	p := &windowPointer{window: w}
	w.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		wx, wy := w.GetPos()
		x, y := xpos+float64(wx), ypos+float64(wy)

		if w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
			touches := []input.Point{{X: x, Y: y}}
			for _, fn := range p.touch {
				fn(touches)
			}
			return
		}
		for _, fn := range p.cursor {
			fn(x, y)
		}
	})
	return p
}

func (p *windowPointer) OnCursorMove(fn func(x, y float64)) {
	p.cursor = append(p.cursor, fn)
}

func (p *windowPointer) OnTouchMove(fn func(touches []input.Point)) {
	p.touch = append(p.touch, fn)
}
