package layout

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected Layout
	}{
		{"portrait phone", 390, 844, Layout{Mobile: true, Width: 390, Height: 200}},
		{"landscape desktop", 1920, 1080, Layout{Mobile: false, Width: 768, Height: 1080}},
		{"square is desktop", 1000, 1000, Layout{Mobile: false, Width: 400, Height: 1000}},
		{"fractional width floors", 1366, 768, Layout{Mobile: false, Width: 546, Height: 768}},
		{"one pixel taller", 799, 800, Layout{Mobile: true, Width: 799, Height: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.w, tt.h, 200, 0.4)
			if got != tt.expected {
				t.Errorf("Compute(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	for w := 1; w < 2000; w += 37 {
		for h := 1; h < 2000; h += 41 {
			a := Compute(w, h, 200, 0.4)
			b := Compute(w, h, 200, 0.4)
			if a != b {
				t.Fatalf("Compute(%d, %d) not deterministic: %+v vs %+v", w, h, a, b)
			}
			if a.Mobile && (a.Width != w || a.Height != 200) {
				t.Fatalf("mobile branch for %dx%d gave %+v", w, h, a)
			}
			if !a.Mobile && a.Height != h {
				t.Fatalf("desktop branch for %dx%d gave %+v", w, h, a)
			}
		}
	}
}
