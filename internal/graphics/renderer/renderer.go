package renderer

import (
	"backdrop/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer clears the surface and draws every renderable feature
type Renderer struct {
	renderables []Renderable
	width       int
	height      int
}

// NewRenderer configures GL state and initializes the renderables. A GL
// context must be current.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	r := &Renderer{renderables: rs}

	for _, rb := range rs {
		if err := rb.Init(); err != nil {
			r.Dispose()
			return nil, err
		}
	}
	r.UpdateViewport(width, height)

	return r, nil
}

// Render draws one frame of s as seen from cam
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene:  s,
		Camera: cam,
		View:   cam.View(),
		Proj:   cam.Projection(),
	}

	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport to the framebuffer size. The camera
// aspect is left alone.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
