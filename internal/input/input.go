package input

import (
	"math"
)

// RotationState holds the latest pointer-derived rotation deltas.
// X is the horizontal delta, Y the vertical one.
type RotationState struct {
	X int
	Y int
}

// Set replaces both deltas
func (r *RotationState) Set(x, y int) {
	r.X = x
	r.Y = y
}

// Point is a pointer or touch position in window coordinates
type Point struct {
	X, Y float64
}

// Delta maps a coordinate to its offset from center, scaled so that the
// viewport edge is 100, floored to an integer. Positions outside the viewport
// are not clamped.
func Delta(pos, center float64) int {
	return int(math.Floor((pos - center) * 100 / center))
}

// Tracker feeds cursor and touch movement into a RotationState
type Tracker struct {
	state   *RotationState
	centerX float64
	centerY float64
}

// NewTracker binds a tracker to the given state and viewport size
func NewTracker(state *RotationState, viewportW, viewportH int) *Tracker {
	return &Tracker{
		state:   state,
		centerX: float64(viewportW) / 2,
		centerY: float64(viewportH) / 2,
	}
}

// HandleCursorMove processes a mouse move event
func (t *Tracker) HandleCursorMove(x, y float64) {
	t.state.Set(Delta(x, t.centerX), Delta(y, t.centerY))
}

// HandleTouchMove processes a touch move event; only the first touch counts
func (t *Tracker) HandleTouchMove(touches []Point) {
	if len(touches) == 0 {
		return
	}
	t.HandleCursorMove(touches[0].X, touches[0].Y)
}

// Center returns the viewport center the deltas are measured from
func (t *Tracker) Center() Point {
	return Point{X: t.centerX, Y: t.centerY}
}
