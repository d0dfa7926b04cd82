package scene

// Scene owns everything drawn each frame
type Scene struct {
	Background Color
	Lights     []Light
	Objects    []*Object
}

// New creates an empty scene with the given clear color
func New(background Color) *Scene {
	return &Scene{Background: background}
}

// AddLight appends a light; order is kept
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Add attaches an object to the scene
func (s *Scene) Add(o *Object) {
	s.Objects = append(s.Objects, o)
}

// Ambient sums every ambient light's contribution
func (s *Scene) Ambient() Color {
	var c Color
	for _, l := range s.Lights {
		if l.Kind != LightAmbient {
			continue
		}
		c.R += l.Color.R * l.Intensity
		c.G += l.Color.G * l.Intensity
		c.B += l.Color.B * l.Intensity
	}
	return c
}

// PointLights returns the point lights in insertion order
func (s *Scene) PointLights() []Light {
	var out []Light
	for _, l := range s.Lights {
		if l.Kind == LightPoint {
			out = append(out, l)
		}
	}
	return out
}
