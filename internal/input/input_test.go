package input

import "testing"

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		pos      float64
		center   float64
		expected int
	}{
		{"center", 400, 400, 0},
		{"right edge", 800, 400, 100},
		{"left edge", 0, 400, -100},
		{"quarter right", 600, 400, 50},
		{"just left of center floors down", 399, 400, -1},
		{"just right of center floors down", 401, 400, 0},
		{"far outside is not clamped", 4000, 400, 900},
		{"far outside negative", -4000, 400, -1100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.pos, tt.center); got != tt.expected {
				t.Errorf("Delta(%v, %v) = %d, want %d", tt.pos, tt.center, got, tt.expected)
			}
		})
	}
}

func TestCursorAtCenterIsZero(t *testing.T) {
	var state RotationState
	state.Set(42, -17)
	tr := NewTracker(&state, 1280, 720)

	tr.HandleCursorMove(640, 360)
	if state.X != 0 || state.Y != 0 {
		t.Errorf("Expected zero deltas at center, got (%d, %d)", state.X, state.Y)
	}
}

func TestCursorAtEdgeIs100(t *testing.T) {
	var state RotationState
	tr := NewTracker(&state, 1280, 720)

	tr.HandleCursorMove(1280, 720)
	if state.X != 100 || state.Y != 100 {
		t.Errorf("Expected (100, 100) at bottom-right edge, got (%d, %d)", state.X, state.Y)
	}

	tr.HandleCursorMove(0, 0)
	if state.X != -100 || state.Y != -100 {
		t.Errorf("Expected (-100, -100) at top-left corner, got (%d, %d)", state.X, state.Y)
	}
}

func TestTouchUsesFirstTouch(t *testing.T) {
	var state RotationState
	tr := NewTracker(&state, 400, 800)

	tr.HandleTouchMove([]Point{{X: 400, Y: 400}, {X: 0, Y: 0}})
	if state.X != 100 || state.Y != 0 {
		t.Errorf("Expected (100, 0) from first touch, got (%d, %d)", state.X, state.Y)
	}
}

func TestTouchWithoutTouchesIgnored(t *testing.T) {
	state := RotationState{X: 5, Y: 6}
	tr := NewTracker(&state, 400, 800)

	tr.HandleTouchMove(nil)
	if state.X != 5 || state.Y != 6 {
		t.Errorf("Expected state untouched, got (%d, %d)", state.X, state.Y)
	}
}

func TestTrackerCenter(t *testing.T) {
	tr := NewTracker(&RotationState{}, 1001, 600)
	c := tr.Center()
	if c.X != 500.5 || c.Y != 300 {
		t.Errorf("Expected center (500.5, 300), got %+v", c)
	}
}
