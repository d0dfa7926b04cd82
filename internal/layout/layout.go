package layout

// Layout is the render surface decision taken once at startup
type Layout struct {
	Mobile bool
	Width  int
	Height int
}

// Compute picks the surface size for a viewport. Portrait viewports get a
// full-width strip of mobileHeight pixels; landscape viewports get a
// full-height panel desktopFraction of the width wide.
func Compute(viewportW, viewportH, mobileHeight int, desktopFraction float64) Layout {
	if viewportW < viewportH {
		return Layout{Mobile: true, Width: viewportW, Height: mobileHeight}
	}
	return Layout{
		Mobile: false,
		Width:  int(float64(viewportW) * desktopFraction),
		Height: viewportH,
	}
}
